// Package jsonc reads and writes the JSON-with-comments document form.
//
// The reader side is tolerant: it strips // and /* */ comments, repairs
// common authoring artifacts (single quotes, bare keys, dangling commas) and
// only then hands the text to the JSON decoder. The writer side renders a
// schema node as an annotated document, optionally with descriptions emitted
// as comment lines.
package jsonc

import "strings"

// scanner states for the comment-stripping pass.
const (
	stateDefault = iota
	stateString
	stateLineComment
	stateBlockComment
)

// StripComments removes // line comments and /* */ block comments from text.
// Characters inside double-quoted strings are passed through untouched, so a
// value like "//" stays data. Newlines that terminate a line comment are kept
// to preserve line numbering for diagnostics.
func StripComments(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	state := stateDefault
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch state {
		case stateString:
			b.WriteByte(c)
			if escaped {
				escaped = false
				break
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				state = stateDefault
			}
		case stateLineComment:
			if c == '\n' {
				b.WriteByte(c)
				state = stateDefault
			}
		case stateBlockComment:
			if c == '*' && i+1 < len(text) && text[i+1] == '/' {
				i++
				state = stateDefault
			}
		default:
			if c == '"' {
				state = stateString
				b.WriteByte(c)
				break
			}
			if c == '/' && i+1 < len(text) {
				switch text[i+1] {
				case '/':
					state = stateLineComment
					i++
					continue
				case '*':
					state = stateBlockComment
					i++
					continue
				}
			}
			b.WriteByte(c)
		}
	}
	return b.String()
}
