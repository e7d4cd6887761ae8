package jsonc

import (
	"regexp"
	"strings"
)

// Normalize repairs the common authoring artifacts the reader tolerates:
// single-quoted strings become double-quoted, bare property names gain
// quotes, and dangling commas before a closing delimiter are dropped. Each
// pass uses the same string-aware scan so text inside double-quoted values is
// never rewritten.
func Normalize(text string) string {
	text = singleToDoubleQuotes(text)
	text = quoteBareKeys(text)
	text = removeTrailingCommas(text)
	return text
}

// singleToDoubleQuotes converts 'abc' to "abc", escaping any double quote or
// backslash-escaped single quote found inside the literal.
func singleToDoubleQuotes(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	inDouble := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if inDouble {
			b.WriteByte(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inDouble = false
			}
			continue
		}
		switch c {
		case '"':
			inDouble = true
			b.WriteByte(c)
		case '\'':
			b.WriteByte('"')
			for i++; i < len(text); i++ {
				c = text[i]
				if c == '\\' && i+1 < len(text) {
					next := text[i+1]
					if next == '\'' {
						// \' needs no escape once double-quoted
						b.WriteByte('\'')
						i++
						continue
					}
					b.WriteByte(c)
					b.WriteByte(next)
					i++
					continue
				}
				if c == '\'' {
					break
				}
				if c == '"' {
					b.WriteString(`\"`)
					continue
				}
				b.WriteByte(c)
			}
			b.WriteByte('"')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isBareKeyByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// quoteBareKeys wraps unquoted property-name tokens in double quotes. A bare
// token counts as a key only when the next non-space character is a colon.
func quoteBareKeys(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
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
		if c == '"' {
			inString = true
			b.WriteByte(c)
			continue
		}
		if isBareKeyByte(c) && (c < '0' || c > '9') {
			j := i
			for j < len(text) && isBareKeyByte(text[j]) {
				j++
			}
			k := j
			for k < len(text) && (text[k] == ' ' || text[k] == '\t') {
				k++
			}
			if k < len(text) && text[k] == ':' {
				b.WriteByte('"')
				b.WriteString(text[i:j])
				b.WriteByte('"')
				i = j - 1
				continue
			}
			b.WriteString(text[i:j])
			i = j - 1
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// removeTrailingCommas drops a comma whose next non-whitespace character is a
// closing brace or bracket.
func removeTrailingCommas(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
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
		case ',':
			j := i + 1
			for j < len(text) && (text[j] == ' ' || text[j] == '\t' || text[j] == '\n' || text[j] == '\r') {
				j++
			}
			if j < len(text) && (text[j] == '}' || text[j] == ']') {
				continue // drop the comma, keep the whitespace run
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

var (
	aggressiveTrailingComma = regexp.MustCompile(`,\s*([}\]])`)
	aggressiveBareKey       = regexp.MustCompile(`(['"]?)([A-Za-z0-9_$]+)(['"]?)\s*:`)
)

// normalizeAggressive is the second-chance pass used when decoding the
// normalized text still fails. It trades string safety for reach: regexes run
// over the whole text, which untangles nested-quote cases the scan-based
// passes refuse to touch.
func normalizeAggressive(text string) string {
	text = aggressiveTrailingComma.ReplaceAllString(text, "$1")
	text = aggressiveBareKey.ReplaceAllString(text, `"$2":`)
	return text
}
