package zod

import "strings"

// Indent reformats schema-definition source text: newline and depth-scaled
// indentation after every opening brace/bracket (unless it closes
// immediately), before every closing brace/bracket, and after commas at
// nesting depth > 0. The output depends only on the structural content, so
// re-indenting already-formatted text is a no-op. Double-quoted literals are
// copied through untouched.
func Indent(src string) string {
	return expand(compact(src))
}

// compact collapses whitespace outside strings: runs become a single space,
// and that space is dropped next to structural characters.
func compact(src string) string {
	structural := func(c byte) bool {
		switch c {
		case '{', '}', '[', ']', '(', ')', ',', ':':
			return true
		}
		return false
	}
	var b strings.Builder
	b.Grow(len(src))
	inString := false
	escaped := false
	pendingSpace := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		if inString {
			b.WriteByte(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			prev := b.String()[b.Len()-1]
			if !structural(prev) && !structural(c) {
				b.WriteByte(' ')
			}
			pendingSpace = false
		}
		b.WriteByte(c)
		if c == '"' {
			inString = true
		}
	}
	return b.String()
}

// expand re-emits compact text with canonical line breaks and indentation.
func expand(src string) string {
	var b strings.Builder
	b.Grow(len(src) * 2)
	depth := 0
	inString := false
	escaped := false
	indent := func() {
		b.WriteByte('\n')
		for i := 0; i < depth; i++ {
			b.WriteString("  ")
		}
	}
	for i := 0; i < len(src); i++ {
		c := src[i]
		if inString {
			b.WriteByte(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
			b.WriteByte(c)
		case '{', '[':
			closer := byte('}')
			if c == '[' {
				closer = ']'
			}
			if i+1 < len(src) && src[i+1] == closer {
				b.WriteByte(c)
				b.WriteByte(closer)
				i++
				continue
			}
			b.WriteByte(c)
			depth++
			indent()
		case '}', ']':
			if depth > 0 {
				depth--
			}
			indent()
			b.WriteByte(c)
		case ',':
			b.WriteByte(c)
			if depth == 0 {
				b.WriteByte(' ')
				continue
			}
			if i+1 < len(src) && (src[i+1] == '}' || src[i+1] == ']') {
				continue
			}
			indent()
		case ':':
			b.WriteString(": ")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
