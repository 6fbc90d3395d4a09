package dsl

import (
	"context"
	"strings"

	recshape "github.com/recshape/recshape"
	"github.com/recshape/recshape/i18n"
)

// OneOf returns a tagged union type. Alternatives are tried in declared
// order; the first one that accepts the value wins. A value satisfying no
// alternative fails with union_mismatch naming the attempted alternatives.
func OneOf(alts ...recshape.Type) recshape.Type {
	if len(alts) == 1 {
		return alts[0]
	}
	return unionType{alts: alts}
}

// Nullable wraps a type to also accept null. A null value binds as nil and
// encodes as null.
func Nullable(t recshape.Type) recshape.Type { return nullableType{inner: t} }

type unionType struct{ alts []recshape.Type }

func (u unionType) Describe() string {
	parts := make([]string, len(u.alts))
	for i, a := range u.alts {
		parts[i] = a.Describe()
	}
	return strings.Join(parts, "|")
}

func (u unionType) Coerce(ctx context.Context, path string, v any) (any, error) {
	for _, a := range u.alts {
		if out, err := a.Coerce(ctx, path, v); err == nil {
			return out, nil
		}
	}
	return nil, recshape.Issues{{
		Path:     path,
		Code:     recshape.CodeUnionMismatch,
		Message:  i18n.T(recshape.CodeUnionMismatch, nil),
		Expected: u.Describe(),
		Got:      recshape.Repr(v),
		Hint:     "tried alternatives in order: " + u.Describe(),
	}}
}

func (u unionType) Encode(v any) (any, error) {
	for _, a := range u.alts {
		if out, err := a.Encode(v); err == nil {
			return out, nil
		}
	}
	return nil, recshape.Issues{{
		Path:     "/",
		Code:     recshape.CodeUnionMismatch,
		Message:  i18n.T(recshape.CodeUnionMismatch, nil),
		Expected: u.Describe(),
		Got:      recshape.Repr(v),
	}}
}

type nullableType struct{ inner recshape.Type }

func (n nullableType) Describe() string { return n.inner.Describe() + "|null" }

func (n nullableType) Coerce(ctx context.Context, path string, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	out, err := n.inner.Coerce(ctx, path, v)
	if err != nil {
		if iss, ok := recshape.AsIssues(err); ok && len(iss) > 0 {
			// widen the expected description to include null
			iss[0].Expected = n.Describe()
			return nil, iss
		}
		return nil, err
	}
	return out, nil
}

func (n nullableType) Encode(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return n.inner.Encode(v)
}
