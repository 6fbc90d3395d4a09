package codec

import (
	"context"
	"strconv"
	"time"

	recshape "github.com/recshape/recshape"
)

// TimeRFC3339 returns a Codec that converts between timestamp strings and
// time.Time. Decode follows the library's fixed coercion table (see
// ParseString); Encode always emits the single canonical representation.
func TimeRFC3339() recshape.Codec[string, time.Time] {
	return rfc3339Codec{}
}

type rfc3339Codec struct{}

func (rfc3339Codec) Decode(ctx context.Context, a string) (time.Time, error) {
	t, err := ParseString(a)
	if err != nil {
		return time.Time{}, recshape.Issues{{
			Path:     "/",
			Code:     recshape.CodeTypeMismatch,
			Message:  "invalid timestamp string",
			Expected: "timestamp",
			Got:      recshape.Repr(a),
			Cause:    err,
		}}
	}
	return t, nil
}

func (rfc3339Codec) Encode(ctx context.Context, b time.Time) (string, error) {
	return FormatCanonical(b), nil
}

// ParseString applies the fixed, total timestamp coercion table, in order:
// RFC3339Nano, RFC3339, a bare date (2006-01-02, midnight UTC), and an
// all-digit string taken as Unix epoch seconds. Anything else fails.
func ParseString(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if isAllDigits(s) {
		sec, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return time.Unix(sec, 0).UTC(), nil
		}
	}
	_, err := time.Parse(time.RFC3339, s)
	return time.Time{}, err
}

// FormatCanonical normalizes to UTC and formats using RFC3339Nano (Go trims
// trailing zeros). This is the only representation Encode and Dump emit.
func FormatCanonical(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
