package recshape

import (
	"fmt"
	"strings"
)

// Instance is the result of one successful validation pass: every declared
// field bound to a checked value. Nothing mutates an instance after
// construction, with one deliberate exception: a mutable fixed default is the
// same value in every instance that received it, so mutating it through one
// instance is visible through the others. Default factories exist to avoid
// exactly that.
type Instance struct {
	shape  *Shape
	values map[string]any
}

// Shape returns the shape this instance was constructed from.
func (i *Instance) Shape() *Shape { return i.shape }

// Get returns the bound value for name and whether the field is bound.
// Optional fields omitted from input with no default are unbound.
func (i *Instance) Get(name string) (any, bool) {
	v, ok := i.values[name]
	return v, ok
}

// Field returns the bound value for name, or nil when unbound.
func (i *Instance) Field(name string) any { return i.values[name] }

// Len returns the number of bound fields.
func (i *Instance) Len() int { return len(i.values) }

// String renders bound fields in declaration order,
// e.g. Person(first_name="Jane", last_name="Smith").
func (i *Instance) String() string {
	b := &strings.Builder{}
	b.WriteString(i.shape.name)
	b.WriteByte('(')
	first := true
	for _, f := range i.shape.fields {
		v, ok := i.values[f.Name]
		if !ok {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		switch t := v.(type) {
		case string:
			fmt.Fprintf(b, "%s=%q", f.Name, t)
		default:
			fmt.Fprintf(b, "%s=%v", f.Name, t)
		}
	}
	b.WriteByte(')')
	return b.String()
}
