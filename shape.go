package recshape

import (
	"context"
	"sort"

	"github.com/recshape/recshape/i18n"
)

// UnknownPolicy controls how keys absent from the shape are treated.
type UnknownPolicy int

const (
	// UnknownIgnore silently drops unknown keys (the default).
	UnknownIgnore UnknownPolicy = iota
	// UnknownStrict rejects unknown keys with unknown_field.
	UnknownStrict
)

// Field is one declaration in a shape: a unique name, a semantic type, a
// required flag, and an optional default.
type Field struct {
	Name        string
	Type        Type
	Required    bool
	DefaultKind DefaultKind
	Default     any        // bound verbatim when DefaultKind == DefaultValue
	Factory     func() any // invoked per construction when DefaultKind == DefaultFactory
}

// Shape is a compiled record shape: a named, ordered set of field
// declarations reused across many construction attempts.
type Shape struct {
	name    string
	fields  []Field
	index   map[string]int
	unknown UnknownPolicy
}

// NewShape compiles a shape from ordered field declarations. Field names must
// be unique and every field needs a type; violations return invalid_shape.
func NewShape(name string, fields []Field, unknown UnknownPolicy) (*Shape, error) {
	idx := make(map[string]int, len(fields))
	var iss Issues
	for i, f := range fields {
		if f.Name == "" {
			iss = AppendIssues(iss, Issue{Path: "/", Code: CodeInvalidShape, Message: i18n.T(CodeInvalidShape, nil), Hint: "field with empty name"})
			continue
		}
		if _, dup := idx[f.Name]; dup {
			iss = AppendIssues(iss, Issue{Path: "/" + f.Name, Code: CodeInvalidShape, Message: i18n.T(CodeInvalidShape, nil), Hint: "duplicate field name"})
			continue
		}
		if f.Type == nil {
			iss = AppendIssues(iss, Issue{Path: "/" + f.Name, Code: CodeInvalidShape, Message: i18n.T(CodeInvalidShape, nil), Hint: "field without type"})
			continue
		}
		idx[f.Name] = i
	}
	if len(iss) > 0 {
		return nil, iss
	}
	fs := make([]Field, len(fields))
	copy(fs, fields)
	return &Shape{name: name, fields: fs, index: idx, unknown: unknown}, nil
}

// Name returns the shape name.
func (s *Shape) Name() string { return s.name }

// Fields returns the field declarations in declaration order.
func (s *Shape) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Parse runs one fail-fast validation pass over in and returns a fully bound
// Instance or the first Issue encountered. No partial instance is produced.
func (s *Shape) Parse(ctx context.Context, in map[string]any) (*Instance, error) {
	vals := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		raw, ok := in[f.Name]
		if !ok {
			v, bound, err := s.applyDefault(ctx, f)
			if err != nil {
				return nil, err
			}
			if bound {
				vals[f.Name] = v
				continue
			}
			if f.Required {
				return nil, Issues{{
					Path:     "/" + f.Name,
					Code:     CodeMissingField,
					Message:  i18n.T(CodeMissingField, nil),
					Expected: f.Type.Describe(),
					Hint:     "required field missing and no default declared",
				}}
			}
			// optional without default: left unbound
			continue
		}
		v, err := f.Type.Coerce(ctx, "/"+f.Name, raw)
		if err != nil {
			return nil, err
		}
		vals[f.Name] = v
	}
	if s.unknown == UnknownStrict {
		// unknown keys in sorted order for deterministic error selection
		var unknown []string
		for k := range in {
			if _, known := s.index[k]; !known {
				unknown = append(unknown, k)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return nil, Issues{{Path: "/" + unknown[0], Code: CodeUnknownField, Message: i18n.T(CodeUnknownField, nil)}}
		}
	}
	return &Instance{shape: s, values: vals}, nil
}

// applyDefault resolves the default for a missing field. Fixed defaults are
// bound verbatim (the value is shared across instances); factory results are
// coerced so every construction gets an independent, validated value.
func (s *Shape) applyDefault(ctx context.Context, f Field) (any, bool, error) {
	switch f.DefaultKind {
	case DefaultValue:
		return f.Default, true, nil
	case DefaultFactory:
		if f.Factory == nil {
			return nil, true, Issues{{Path: "/" + f.Name, Code: CodeInvalidShape, Message: i18n.T(CodeInvalidShape, nil), Hint: "nil default factory"}}
		}
		v, err := f.Type.Coerce(ctx, "/"+f.Name, f.Factory())
		if err != nil {
			return nil, true, err
		}
		return v, true, nil
	default:
		return nil, false, nil
	}
}

// SafeParse parses in, returning (nil, false) on validation error.
func SafeParse(ctx context.Context, s *Shape, in map[string]any) (*Instance, bool) {
	inst, err := s.Parse(ctx, in)
	if err != nil {
		return nil, false
	}
	return inst, true
}

// Is reports whether in conforms to the shape.
func Is(ctx context.Context, s *Shape, in map[string]any) bool {
	_, err := s.Parse(ctx, in)
	return err == nil
}
