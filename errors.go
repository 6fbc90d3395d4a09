package recshape

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMissingField    = "missing_field"
	CodeTypeMismatch    = "type_mismatch"
	CodeKeyTypeMismatch = "key_type_mismatch"
	CodeUnionMismatch   = "union_mismatch"
	CodeUnknownField    = "unknown_field"
	CodeParseError      = "parse_error"
	CodeInvalidShape    = "invalid_shape"
)

// Issue represents a single validation entry.
type Issue struct {
	Path     string // JSON Pointer (for example: /holidays/1).
	Code     string // One of the codes listed above.
	Message  string
	Hint     string // Optional: remediation hints, attempted union alternatives, etc.
	Expected string // Declared type description (for example: "string|timestamp").
	Got      string // Received kind and value representation (for example: "number(12345)").
	Cause    error  // Optional: underlying error.
}

// Issues is a collection of validation errors that implements error.
// Validation is fail-fast, so a construction failure normally carries a
// single entry; the slice form keeps multi-issue reporting possible for
// build-time shape errors.
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
		// e.g. type_mismatch at /first_name: expected string, got number(123)
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Expected != "" {
			fmt.Fprintf(b, ": expected %s", it.Expected)
			if it.Got != "" {
				fmt.Fprintf(b, ", got %s", it.Got)
			}
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
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
