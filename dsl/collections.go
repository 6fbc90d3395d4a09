package dsl

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	recshape "github.com/recshape/recshape"
	"github.com/recshape/recshape/i18n"
)

// Map returns a mapping type with string keys and elem-typed values. Keys and
// values are checked independently: a non-string key fails with
// key_type_mismatch, a bad value with the value type's own issue. An empty
// mapping is always valid.
func Map(elem recshape.Type) recshape.Type { return mapType{elem: elem} }

// Seq returns a sequence type with elem-typed items, checked element-wise.
// An empty sequence is always valid.
func Seq(elem recshape.Type) recshape.Type { return seqType{elem: elem} }

type mapType struct{ elem recshape.Type }

func (m mapType) Describe() string { return "mapping<" + m.elem.Describe() + ">" }

func (m mapType) Coerce(ctx context.Context, path string, v any) (any, error) {
	switch src := v.(type) {
	case map[string]any:
		return m.coerceStringKeyed(ctx, path, src)
	case map[string]string:
		loose := make(map[string]any, len(src))
		for k, vv := range src {
			loose[k] = vv
		}
		return m.coerceStringKeyed(ctx, path, loose)
	case map[any]any:
		// YAML and hand-written literals may carry non-string keys; report the
		// first offending key deterministically.
		loose := make(map[string]any, len(src))
		var bad []string
		for k, vv := range src {
			ks, ok := k.(string)
			if !ok {
				bad = append(bad, recshape.Repr(k))
				continue
			}
			loose[ks] = vv
		}
		if len(bad) > 0 {
			sort.Strings(bad)
			return nil, recshape.Issues{{
				Path:     path,
				Code:     recshape.CodeKeyTypeMismatch,
				Message:  i18n.T(recshape.CodeKeyTypeMismatch, nil),
				Expected: "string",
				Got:      bad[0],
				Hint:     "mapping keys must be strings",
			}}
		}
		return m.coerceStringKeyed(ctx, path, loose)
	default:
		return nil, typeMismatch(path, m.Describe(), v)
	}
}

// coerceStringKeyed checks values in key-sorted order for deterministic
// error selection.
func (m mapType) coerceStringKeyed(ctx context.Context, path string, src map[string]any) (any, error) {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(map[string]any, len(src))
	for _, k := range keys {
		vv, err := m.elem.Coerce(ctx, path+"/"+k, src[k])
		if err != nil {
			return nil, err
		}
		out[k] = vv
	}
	return out, nil
}

func (m mapType) Encode(v any) (any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, typeMismatch("/", m.Describe(), v)
	}
	out := make(map[string]any, len(src))
	for k, vv := range src {
		ev, err := m.elem.Encode(vv)
		if err != nil {
			return nil, err
		}
		out[k] = ev
	}
	return out, nil
}

type seqType struct{ elem recshape.Type }

func (s seqType) Describe() string { return "sequence<" + s.elem.Describe() + ">" }

func (s seqType) Coerce(ctx context.Context, path string, v any) (any, error) {
	var src []any
	switch t := v.(type) {
	case []any:
		src = t
	case []string:
		src = make([]any, len(t))
		for i := range t {
			src[i] = t[i]
		}
	default:
		return nil, typeMismatch(path, s.Describe(), v)
	}
	out := make([]any, 0, len(src))
	for i := range src {
		ev, err := s.elem.Coerce(ctx, path+"/"+strconv.Itoa(i), src[i])
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

func (s seqType) Encode(v any) (any, error) {
	src, ok := v.([]any)
	if !ok {
		return nil, typeMismatch("/", s.Describe(), v)
	}
	out := make([]any, 0, len(src))
	for i := range src {
		ev, err := s.elem.Encode(src[i])
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, ev)
	}
	return out, nil
}
