package dsl

import (
	"context"
	"time"

	recshape "github.com/recshape/recshape"
	"github.com/recshape/recshape/codec"
	"github.com/recshape/recshape/i18n"
)

// String returns the string type. Strings accept only strings; numbers and
// booleans are never stringified.
func String() recshape.Type { return stringType{} }

// Bool returns the bool type.
func Bool() recshape.Type { return boolType{} }

// Timestamp returns the timestamp type. It accepts time.Time values and
// strings matching the fixed coercion table (RFC3339, bare dates, all-digit
// epoch seconds); numeric input is rejected.
func Timestamp() recshape.Type { return timestampType{} }

type stringType struct{}

func (stringType) Describe() string { return "string" }

func (stringType) Coerce(ctx context.Context, path string, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, typeMismatch(path, "string", v)
	}
	return s, nil
}

func (stringType) Encode(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, typeMismatch("/", "string", v)
	}
	return s, nil
}

type boolType struct{}

func (boolType) Describe() string { return "bool" }

func (boolType) Coerce(ctx context.Context, path string, v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, typeMismatch(path, "bool", v)
	}
	return b, nil
}

func (boolType) Encode(v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, typeMismatch("/", "bool", v)
	}
	return b, nil
}

type timestampType struct{}

func (timestampType) Describe() string { return "timestamp" }

func (timestampType) Coerce(ctx context.Context, path string, v any) (any, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		tm, err := codec.ParseString(t)
		if err != nil {
			return nil, recshape.Issues{{
				Path:     path,
				Code:     recshape.CodeTypeMismatch,
				Message:  i18n.T(recshape.CodeTypeMismatch, nil),
				Expected: "timestamp",
				Got:      recshape.Repr(v),
				Cause:    err,
			}}
		}
		return tm, nil
	default:
		return nil, typeMismatch(path, "timestamp", v)
	}
}

func (timestampType) Encode(v any) (any, error) {
	t, ok := v.(time.Time)
	if !ok {
		return nil, typeMismatch("/", "timestamp", v)
	}
	return codec.FormatCanonical(t), nil
}

// typeMismatch builds the standard single-issue failure for a value that does
// not satisfy its declared type.
func typeMismatch(path, expected string, v any) recshape.Issues {
	return recshape.Issues{{
		Path:     path,
		Code:     recshape.CodeTypeMismatch,
		Message:  i18n.T(recshape.CodeTypeMismatch, nil),
		Expected: expected,
		Got:      recshape.Repr(v),
	}}
}
