package dsl

import (
	"context"

	recshape "github.com/recshape/recshape"
	"github.com/recshape/recshape/i18n"
)

type shapeBuilder struct {
	name    string
	fields  []builderField
	unknown recshape.UnknownPolicy
}

type builderField struct {
	name        string
	typ         recshape.Type
	required    bool
	defaultKind recshape.DefaultKind
	rawDefault  any // coerced once at Build, then shared verbatim
	factory     func() any
}

type fieldStep struct {
	b   *shapeBuilder
	idx int
}

// Shape creates a new shape builder. Fields keep their declaration order.
func Shape(name string) *shapeBuilder {
	return &shapeBuilder{name: name, unknown: recshape.UnknownIgnore}
}

// Field registers a field with its type and returns a step for per-field
// chaining (Required/Optional/Default/DefaultFactory).
func (b *shapeBuilder) Field(name string, t recshape.Type) *fieldStep {
	b.fields = append(b.fields, builderField{name: name, typ: t})
	return &fieldStep{b: b, idx: len(b.fields) - 1}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *shapeBuilder {
	f.b.fields[f.idx].required = true
	return f.b
}

// Optional marks the field as optional (the default) and returns the builder.
func (f *fieldStep) Optional() *shapeBuilder {
	f.b.fields[f.idx].required = false
	return f.b
}

// Default declares a fixed default. The value is validated once at Build and
// the validated value is bound verbatim into every instance constructed
// without the field, so a mutable default is shared across instances. Use
// DefaultFactory when each instance must get its own value.
func (f *fieldStep) Default(v any) *shapeBuilder {
	bf := &f.b.fields[f.idx]
	bf.defaultKind = recshape.DefaultValue
	bf.rawDefault = v
	bf.factory = nil
	return f.b
}

// DefaultFactory declares a default produced fresh for each construction.
// The factory result is validated per call, so instances never alias one
// another's default value.
func (f *fieldStep) DefaultFactory(fn func() any) *shapeBuilder {
	bf := &f.b.fields[f.idx]
	bf.defaultKind = recshape.DefaultFactory
	bf.factory = fn
	bf.rawDefault = nil
	return f.b
}

// Chained forwarding so Field(...).Field(...) reads naturally, as does
// finishing a chain directly from a field step.
func (f *fieldStep) Field(name string, t recshape.Type) *fieldStep { return f.b.Field(name, t) }
func (f *fieldStep) UnknownStrict() *shapeBuilder                  { return f.b.UnknownStrict() }
func (f *fieldStep) Build() (*recshape.Shape, error)               { return f.b.Build() }
func (f *fieldStep) MustBuild() *recshape.Shape                    { return f.b.MustBuild() }

// UnknownStrict makes the shape reject keys it does not declare.
func (b *shapeBuilder) UnknownStrict() *shapeBuilder {
	b.unknown = recshape.UnknownStrict
	return b
}

// Build validates the declarations (including fixed defaults, which are
// coerced here exactly once) and compiles the shape.
func (b *shapeBuilder) Build() (*recshape.Shape, error) {
	ctx := context.Background()
	fields := make([]recshape.Field, 0, len(b.fields))
	var iss recshape.Issues
	for _, bf := range b.fields {
		f := recshape.Field{
			Name:        bf.name,
			Type:        bf.typ,
			Required:    bf.required,
			DefaultKind: bf.defaultKind,
			Factory:     bf.factory,
		}
		if bf.defaultKind == recshape.DefaultValue && bf.typ != nil {
			dv, err := bf.typ.Coerce(ctx, "/"+bf.name, bf.rawDefault)
			if err != nil {
				if more, ok := recshape.AsIssues(err); ok {
					iss = recshape.AppendIssues(iss, more...)
				} else {
					iss = recshape.AppendIssues(iss, recshape.Issue{
						Path:    "/" + bf.name,
						Code:    recshape.CodeInvalidShape,
						Message: i18n.T(recshape.CodeInvalidShape, nil),
						Cause:   err,
					})
				}
				continue
			}
			f.Default = dv
		}
		fields = append(fields, f)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return recshape.NewShape(b.name, fields, b.unknown)
}

// MustBuild is like Build but panics on error.
func (b *shapeBuilder) MustBuild() *recshape.Shape {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
