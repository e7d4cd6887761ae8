package zod

import (
	"strings"

	json "github.com/goccy/go-json"

	"github.com/HarveyLijh/zod-n-json/schema"
)

// Render writes a schema node back as schema-definition source text. The
// renderer is total: any kind outside the table becomes z.any(). Modifiers
// are appended in fixed order: nullable, optional, description.
func Render(n *schema.Node) string {
	var b strings.Builder
	renderNode(&b, n)
	return b.String()
}

func renderNode(b *strings.Builder, n *schema.Node) {
	if n == nil {
		b.WriteString("z.any()")
		return
	}
	switch n.Kind {
	case schema.KindString, schema.KindNumber, schema.KindBoolean,
		schema.KindNull, schema.KindUndefined, schema.KindBigInt,
		schema.KindDate:
		b.WriteString("z.")
		b.WriteString(string(n.Kind))
		b.WriteString("()")
	case schema.KindLiteral:
		b.WriteString("z.literal(")
		b.WriteString(renderScalar(n.Literal))
		b.WriteByte(')')
	case schema.KindEnum:
		b.WriteString("z.enum([")
		for i, v := range n.Enum {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(renderScalar(v))
		}
		b.WriteString("])")
	case schema.KindArray:
		b.WriteString("z.array(")
		renderNode(b, n.Items)
		b.WriteByte(')')
	case schema.KindObject:
		if len(n.Properties) == 0 {
			b.WriteString("z.object({})")
			break
		}
		b.WriteString("z.object({ ")
		for i, p := range n.Properties {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(renderKey(p.Name))
			b.WriteString(": ")
			renderNode(b, p.Node)
		}
		b.WriteString(" })")
	case schema.KindUnion:
		b.WriteString("z.union([")
		for i, m := range n.Members {
			if i > 0 {
				b.WriteString(", ")
			}
			renderNode(b, m)
		}
		b.WriteString("])")
	default:
		b.WriteString("z.any()")
	}

	if n.Nullable {
		b.WriteString(".nullable()")
	}
	if n.Optional {
		b.WriteString(".optional()")
	}
	if n.Description != "" {
		b.WriteString(".description(")
		b.WriteString(quoteString(n.Description))
		b.WriteByte(')')
	}
}

// renderKey leaves identifier-shaped names bare and quotes the rest.
func renderKey(name string) string {
	if name == "" {
		return `""`
	}
	if name[0] >= '0' && name[0] <= '9' {
		return quoteString(name)
	}
	for i := 0; i < len(name); i++ {
		if !isIdentByte(name[i]) {
			return quoteString(name)
		}
	}
	return name
}

func renderScalar(v any) string {
	switch t := v.(type) {
	case string:
		return quoteString(t)
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return "null"
	}
}

// quoteString renders s as a double-quoted literal.
func quoteString(s string) string {
	out, err := json.Marshal(s)
	if err != nil {
		return `"` + s + `"`
	}
	return string(out)
}
