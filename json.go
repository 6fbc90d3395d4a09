package recshape

import (
	"bytes"
	"context"
	"reflect"

	json "github.com/goccy/go-json"

	"github.com/recshape/recshape/i18n"
)

// Dump converts the instance into its serialized map form. Values pass
// through each field's Type.Encode, so timestamps come out as canonical
// RFC3339 UTC strings and collections as plain maps and slices.
func (i *Instance) Dump() (map[string]any, error) {
	out := make(map[string]any, len(i.values))
	for _, f := range i.shape.fields {
		v, ok := i.values[f.Name]
		if !ok {
			continue
		}
		ev, err := f.Type.Encode(v)
		if err != nil {
			return nil, err
		}
		out[f.Name] = ev
	}
	return out, nil
}

// DumpJSON renders the instance as a JSON document.
func (i *Instance) DumpJSON() ([]byte, error) {
	m, err := i.Dump()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return data, nil
}

// ParseJSON decodes a JSON document and validates it against the shape.
// Numbers are decoded as json.Number so numeric input is reported by its
// literal representation rather than a float approximation.
func (s *Shape) ParseJSON(ctx context.Context, data []byte) (*Instance, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
	}
	return s.Parse(ctx, m)
}

// Equal reports whether two instances dump to the same serialized form.
// Timestamps compare by canonical representation, so instants equal across
// time zones compare equal.
func (i *Instance) Equal(other *Instance) bool {
	if other == nil {
		return false
	}
	a, err := i.Dump()
	if err != nil {
		return false
	}
	b, err := other.Dump()
	if err != nil {
		return false
	}
	return reflect.DeepEqual(a, b)
}
