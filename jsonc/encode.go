package jsonc

import (
	"strings"

	json "github.com/goccy/go-json"

	"github.com/HarveyLijh/zod-n-json/schema"
)

// EncodeSchema renders a schema node as document text: two-space indentation,
// double-quoted keys and strings, no trailing commas. When includeComments is
// set, a node with a description additionally gets a "// <description>" line
// right after its opening brace, before the first field; stripping those
// lines yields plain JSON. A nil node encodes as the accept-anything
// document, matching the renderer's treatment of nil.
func EncodeSchema(n *schema.Node, includeComments bool) string {
	var b strings.Builder
	writeNode(&b, n, 0, includeComments)
	return b.String()
}

func writeNode(b *strings.Builder, n *schema.Node, depth int, comments bool) {
	if n == nil {
		n = &schema.Node{Kind: schema.KindAny}
	}
	outer := strings.Repeat("  ", depth)
	inner := strings.Repeat("  ", depth+1)

	b.WriteString("{\n")
	if comments && n.Description != "" {
		// every line of the description must carry the marker or the
		// stripped document is no longer plain JSON
		for _, line := range strings.Split(n.Description, "\n") {
			b.WriteString(inner)
			b.WriteString("// ")
			b.WriteString(strings.TrimSuffix(line, "\r"))
			b.WriteByte('\n')
		}
	}

	var fields []string
	add := func(key, rendered string) {
		fields = append(fields, inner+quote(key)+": "+rendered)
	}

	add(fieldType, quote(string(n.Kind)))
	if n.Description != "" {
		add(fieldDescription, quote(n.Description))
	}
	if n.Nullable {
		add(fieldNullable, "true")
	}
	if n.Optional {
		add(fieldOptional, "true")
	}
	switch n.Kind {
	case schema.KindLiteral:
		if n.Literal != nil {
			add(fieldConst, scalar(n.Literal))
		}
	case schema.KindEnum:
		vals := make([]string, len(n.Enum))
		for i, v := range n.Enum {
			vals[i] = scalar(v)
		}
		add(fieldEnum, "["+strings.Join(vals, ", ")+"]")
	case schema.KindArray:
		items := n.Items
		if items == nil {
			items = &schema.Node{Kind: schema.KindAny}
		}
		var sub strings.Builder
		writeNode(&sub, items, depth+1, comments)
		add(fieldItems, sub.String())
	case schema.KindObject:
		if len(n.Properties) == 0 {
			add(fieldProperties, "{}")
			break
		}
		var sub strings.Builder
		sub.WriteString("{\n")
		for i, p := range n.Properties {
			sub.WriteString(inner)
			sub.WriteString("  ")
			sub.WriteString(quote(p.Name))
			sub.WriteString(": ")
			writeNode(&sub, p.Node, depth+2, comments)
			if i < len(n.Properties)-1 {
				sub.WriteByte(',')
			}
			sub.WriteByte('\n')
		}
		sub.WriteString(inner)
		sub.WriteByte('}')
		add(fieldProperties, sub.String())
	case schema.KindUnion:
		if len(n.Members) == 0 {
			add(fieldOneOf, "[]")
			break
		}
		var sub strings.Builder
		sub.WriteString("[\n")
		for i, m := range n.Members {
			sub.WriteString(inner)
			sub.WriteString("  ")
			writeNode(&sub, m, depth+2, comments)
			if i < len(n.Members)-1 {
				sub.WriteByte(',')
			}
			sub.WriteByte('\n')
		}
		sub.WriteString(inner)
		sub.WriteByte(']')
		add(fieldOneOf, sub.String())
	}

	b.WriteString(strings.Join(fields, ",\n"))
	b.WriteByte('\n')
	b.WriteString(outer)
	b.WriteByte('}')
}

// quote renders s as a JSON string.
func quote(s string) string {
	out, err := json.Marshal(s)
	if err != nil {
		return `"` + s + `"`
	}
	return string(out)
}

// scalar renders an enum or literal value.
func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return quote(t)
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
