package zodnjson

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnrecognizedSchema = "unrecognized_schema"
	CodeMalformedInput     = "malformed_input"
	CodeParseError         = "parse_error"
)

// Issue represents a single conversion failure entry.
type Issue struct {
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: guidance text for the caller to surface.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the input text (-1 when unknown).
	Line    int    // 1-based line of the failure point (0 when unknown).
	Col     int    // 1-based column of the failure point (0 when unknown).
	// InputFragment is an optional snippet of the offending input centered
	// on the failure point.
	InputFragment string
}

// Issues is a collection of conversion errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s: %s", it.Code, it.Message)
		if it.Line > 0 {
			fmt.Fprintf(b, " (line %d, column %d)", it.Line, it.Col)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
