package jsonc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
)

// Object is a decoded JSON object with key order preserved. Plain
// map[string]any would lose the authoring order, which the converters must
// keep for properties.
type Object struct {
	Keys   []string
	Values map[string]any
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{Values: map[string]any{}}
}

// Set stores v under key, appending the key on first sight.
func (o *Object) Set(key string, v any) {
	if _, ok := o.Values[key]; !ok {
		o.Keys = append(o.Keys, key)
	}
	o.Values[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.Values[key]
	return v, ok
}

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.Keys) }

// MalformedError reports a document the reader could not decode even after
// both normalization passes. It carries the underlying decoder message plus
// the position and a short excerpt of the text around the failure point.
type MalformedError struct {
	Msg     string
	Offset  int64
	Line    int // 1-based
	Col     int // 1-based
	Excerpt string
	Cause   error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("jsonc: %s at line %d, column %d near %q", e.Msg, e.Line, e.Col, e.Excerpt)
}

func (e *MalformedError) Unwrap() error { return e.Cause }

// Decode reads comment-bearing, possibly sloppy document text and returns a
// plain structured value: *Object, []any, string, json.Number, bool or nil.
// Decoding is attempted on normalized text first and once more after the
// aggressive normalization pass; the error of the first attempt is the one
// surfaced, always wrapped in a MalformedError with position context.
func Decode(text string) (any, error) {
	clean := Normalize(StripComments(text))
	v, off, err := decodeValue(clean)
	if err == nil {
		return v, nil
	}
	if v2, _, err2 := decodeValue(normalizeAggressive(clean)); err2 == nil {
		return v2, nil
	}
	return nil, malformed(clean, off, err)
}

func decodeValue(text string) (any, int64, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	v, err := readValue(dec)
	if err != nil {
		return nil, dec.InputOffset(), err
	}
	// anything but whitespace after the first value is an error
	if _, err := dec.Token(); err != io.EOF {
		return nil, dec.InputOffset(), fmt.Errorf("jsonc: trailing data after document")
	}
	return v, 0, nil
}

// readValue consumes one JSON value from the token stream, building ordered
// objects along the way.
func readValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("jsonc: object key is %T, want string", keyTok)
				}
				v, err := readValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, v)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil
		case '[':
			arr := []any{}
			for dec.More() {
				v, err := readValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("jsonc: unexpected delimiter %v", t)
	case string, bool, json.Number:
		return t, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("jsonc: unexpected token %v", tok)
	}
}

// malformed wraps a decoder error with line/column/excerpt context computed
// against the text that was handed to the decoder. The decoder's own syntax
// offset wins over the fallback read offset when present.
func malformed(text string, fallbackOffset int64, err error) error {
	offset := fallbackOffset
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		offset = syn.Offset
	}
	line, col := 1, 1
	if offset >= 0 {
		line, col = lineCol(text, offset)
	}
	return &MalformedError{
		Msg:     err.Error(),
		Offset:  offset,
		Line:    line,
		Col:     col,
		Excerpt: excerpt(text, offset),
		Cause:   err,
	}
}

// lineCol counts newlines up to offset. Both results are 1-based.
func lineCol(text string, offset int64) (int, int) {
	if offset > int64(len(text)) {
		offset = int64(len(text))
	}
	line, col := 1, 1
	for i := int64(0); i < offset; i++ {
		if text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// excerpt returns a short slice of text centered on offset.
func excerpt(text string, offset int64) string {
	const radius = 20
	if offset < 0 {
		offset = 0
	}
	lo := offset - radius
	if lo < 0 {
		lo = 0
	}
	hi := offset + radius
	if hi > int64(len(text)) {
		hi = int64(len(text))
	}
	return strings.TrimSpace(text[lo:hi])
}
