// Package zod converts between fluent schema-definition source text and the
// intermediate schema model.
//
// The extractor is deliberately heuristic: there is no tokenizer or AST for
// the call-chain notation. It locates one declaration, classifies constructor
// calls against a fixed ordered rule table, and recovers composite payloads
// with balanced-delimiter scans. Constructs outside the fixed vocabulary fall
// back to the accept-anything node rather than failing.
package zod

import (
	"regexp"
	"strings"

	"github.com/HarveyLijh/zod-n-json/schema"
)

// UnrecognizedError reports source text in which no schema declaration could
// be identified. It is surfaced verbatim, never retried.
type UnrecognizedError struct{}

func (e *UnrecognizedError) Error() string {
	return "zod: no recognizable schema declaration found"
}

var (
	importLine = regexp.MustCompile(`(?m)^\s*import\b[^\n]*$`)
	exportDecl = regexp.MustCompile(`export\s+(?:const|let|var)\s+[A-Za-z_$][A-Za-z0-9_$]*\s*=\s*z\.`)
	anyDecl    = regexp.MustCompile(`(?:const|let|var)\s+[A-Za-z_$][A-Za-z0-9_$]*\s*=\s*z\.`)
)

// Extract parses schema-definition source text into a schema node. Rules are
// tried in order: exported declaration, any declaration, bare constructor
// call, well-known reference schema by signature tokens. The first match in
// scan order wins; there is no backtracking across candidate declarations.
// Extraction is atomic: either a complete tree or an error.
func Extract(src string) (*schema.Node, error) {
	text := importLine.ReplaceAllString(src, "")

	if loc := exportDecl.FindStringIndex(text); loc != nil {
		if n := parseChain(chainAt(text, loc[1]-2)); n != nil {
			return n, nil
		}
	}
	if loc := anyDecl.FindStringIndex(text); loc != nil {
		if n := parseChain(chainAt(text, loc[1]-2)); n != nil {
			return n, nil
		}
	}
	if trimmed := strings.TrimSpace(text); strings.HasPrefix(trimmed, "z.") {
		if n := parseChain(chainAt(trimmed, 0)); n != nil {
			return n, nil
		}
	}
	if countSignatureTokens(text) >= userSignatureMin {
		return referenceUserSchema(), nil
	}
	return nil, &UnrecognizedError{}
}

// countSignatureTokens counts how many of the user-record property names
// occur in key position.
func countSignatureTokens(text string) int {
	n := 0
	for _, re := range userSignaturePatterns {
		if re.MatchString(text) {
			n++
		}
	}
	return n
}

// chainAt slices the full call chain beginning at start.
func chainAt(text string, start int) string {
	return text[start : start+chainExtent(text[start:])]
}

// chainExtent measures a call chain: identifier segments joined by dots, each
// optionally followed by a balanced argument list, ending when a call is not
// followed by another ".method".
func chainExtent(s string) int {
	i := 0
	for i < len(s) {
		for i < len(s) && (isIdentByte(s[i]) || s[i] == '.') {
			i++
		}
		if i >= len(s) || s[i] != '(' {
			return i
		}
		i, _ = skipBalanced(s, i)
		// a chain may continue on the next line: ".optional()" after a break
		j := i
		for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n' || s[j] == '\r') {
			j++
		}
		if j < len(s) && s[j] == '.' {
			i = j
			continue
		}
		return i
	}
	return i
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// skipBalanced returns the index just past the delimiter matching the opener
// at s[open], and whether that closer was actually found. Truncated input runs
// off the end without closing; callers must not slice a closer off in that
// case. Quoted text (single or double) never affects the depth.
func skipBalanced(s string, open int) (int, bool) {
	depth := 0
	var quote byte
	escaped := false
	for i := open; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return len(s), false
}

// parseChain classifies one call chain and builds its node. It returns nil
// only when the text is not a z.* chain at all; unknown constructors and
// modifiers degrade silently to the accept-anything node.
func parseChain(chain string) *schema.Node {
	chain = strings.TrimSpace(chain)
	if !strings.HasPrefix(chain, "z.") {
		return nil
	}

	var kind schema.Kind
	var token string
	for _, r := range classRules {
		if strings.HasPrefix(chain, r.token) {
			kind = r.kind
			token = r.token
			break
		}
	}
	if token == "" {
		// refinements, transforms, records, tuples etc. are out of the
		// fixed vocabulary
		n := &schema.Node{Kind: schema.KindAny}
		applyModifiers(n, chain[chainBaseEnd(chain):])
		return n
	}

	open := len(token) - 1
	end, closed := skipBalanced(chain, open)
	if !closed {
		return nil
	}
	args := chain[open+1 : end-1]
	n := &schema.Node{Kind: kind}

	switch kind {
	case schema.KindArray:
		if child := parseChain(args); child != nil {
			n.Items = child
		} else {
			n.Items = &schema.Node{Kind: schema.KindAny}
		}
	case schema.KindUnion:
		for _, part := range splitTopLevel(stripWrapper(args, '[', ']'), ',') {
			if member := parseChain(part); member != nil {
				n.Members = append(n.Members, member)
			} else {
				n.Members = append(n.Members, &schema.Node{Kind: schema.KindAny})
			}
		}
	case schema.KindEnum:
		for _, part := range splitTopLevel(stripWrapper(args, '[', ']'), ',') {
			if v, ok := parseEnumValue(part); ok {
				n.Enum = append(n.Enum, v)
			}
		}
	case schema.KindLiteral:
		n.Literal = parseLiteral(args)
	case schema.KindObject:
		body := stripWrapper(args, '{', '}')
		for _, entry := range splitTopLevel(body, ',') {
			name, value, ok := splitProperty(entry)
			if !ok || name == "" || n.Property(name) != nil {
				continue
			}
			child := parseChain(value)
			if child == nil {
				if canonical, known := knownProperties[name]; known {
					child = canonical()
				} else {
					child = &schema.Node{Kind: schema.KindAny}
				}
			}
			n.Properties = append(n.Properties, schema.Property{Name: name, Node: child})
		}
	}

	applyModifiers(n, chain[end:])
	return n
}

// chainBaseEnd finds where the first call of a chain ends, or the chain
// length when there is no argument list.
func chainBaseEnd(chain string) int {
	if i := strings.IndexByte(chain, '('); i >= 0 {
		end, _ := skipBalanced(chain, i)
		return end
	}
	return len(chain)
}

// applyModifiers consumes trailing .nullable()/.optional()/.description("...")
// calls. Unknown modifiers are skipped.
func applyModifiers(n *schema.Node, rest string) {
	rest = strings.TrimSpace(rest)
	for strings.HasPrefix(rest, ".") {
		i := 1
		for i < len(rest) && isIdentByte(rest[i]) {
			i++
		}
		name := rest[1:i]
		if i >= len(rest) || rest[i] != '(' {
			return
		}
		end, closed := skipBalanced(rest, i)
		if !closed {
			return
		}
		arg := strings.TrimSpace(rest[i+1 : end-1])
		switch name {
		case "nullable":
			n.Nullable = true
		case "optional":
			n.Optional = true
		case "description", "describe":
			n.Description = unquote(arg)
		}
		rest = strings.TrimSpace(rest[end:])
	}
}

// splitTopLevel splits s at sep occurrences outside strings and brackets.
// Empty parts are dropped.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	var quote byte
	escaped := false
	start := 0
	flush := func(end int) {
		if p := strings.TrimSpace(s[start:end]); p != "" {
			parts = append(parts, p)
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case sep:
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(s))
	return parts
}

// splitProperty breaks a "name: chain" entry at its first top-level colon.
// The name may be bare or quoted.
func splitProperty(entry string) (string, string, bool) {
	depth := 0
	var quote byte
	escaped := false
	for i := 0; i < len(entry); i++ {
		c := entry[i]
		if quote != 0 {
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ':':
			if depth == 0 {
				name := strings.TrimSpace(entry[:i])
				name = strings.Trim(name, `"'`)
				return name, strings.TrimSpace(entry[i+1:]), true
			}
		}
	}
	return "", "", false
}

// stripWrapper removes one optional pair of surrounding delimiters.
func stripWrapper(s string, open, close byte) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == open && s[len(s)-1] == close {
		return s[1 : len(s)-1]
	}
	return s
}

var numberPattern = regexp.MustCompile(`^-?\d+(\.\d+)?([eE][+-]?\d+)?$`)

// parseEnumValue accepts the string and number literals an enum may hold.
func parseEnumValue(tok string) (any, bool) {
	tok = strings.TrimSpace(tok)
	if isQuoted(tok) {
		return unquote(tok), true
	}
	if numberPattern.MatchString(tok) {
		return number(tok), true
	}
	return nil, false
}

// parseLiteral accepts string, number and boolean literal arguments.
func parseLiteral(arg string) any {
	arg = strings.TrimSpace(arg)
	switch {
	case isQuoted(arg):
		return unquote(arg)
	case arg == "true":
		return true
	case arg == "false":
		return false
	case numberPattern.MatchString(arg):
		return number(arg)
	}
	return nil
}

func isQuoted(s string) bool {
	return len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0]
}

// unquote strips surrounding quotes and resolves the common escapes.
func unquote(s string) string {
	if !isQuoted(s) {
		return s
	}
	inner := s[1 : len(s)-1]
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == '\\' && i+1 < len(inner) {
			i++
			switch inner[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(inner[i])
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
