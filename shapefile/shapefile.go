// Package shapefile loads record shapes from declarative YAML or JSON
// documents and compiles them through the dsl. A document names the shape and
// lists its fields:
//
//	name: Person
//	unknown: strict
//	fields:
//	  - name: first_name
//	    type: string
//	    required: true
//	  - name: holidays
//	    type: list
//	    of: string|timestamp
//	  - name: middle_name
//	    type: string
//	    nullable: true
//	    default: null
//
// Fixed defaults are expressible in documents; default factories are code and
// can only be declared through the dsl.
package shapefile

import (
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	recshape "github.com/recshape/recshape"
	"github.com/recshape/recshape/dsl"
	"github.com/recshape/recshape/i18n"
)

// LoadYAML compiles a shape from a YAML document.
func LoadYAML(data []byte) (*recshape.Shape, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, recshape.Issues{{Path: "/", Code: recshape.CodeParseError, Message: i18n.T(recshape.CodeParseError, nil), Cause: err}}
	}
	return compile(doc)
}

// LoadJSON compiles a shape from a JSON document.
func LoadJSON(data []byte) (*recshape.Shape, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, recshape.Issues{{Path: "/", Code: recshape.CodeParseError, Message: i18n.T(recshape.CodeParseError, nil), Cause: err}}
	}
	return compile(doc)
}

func compile(doc map[string]any) (*recshape.Shape, error) {
	name, _ := doc["name"].(string)
	if name == "" {
		return nil, invalidShape("/name", "shape name missing")
	}
	b := dsl.Shape(name)
	if pol, _ := doc["unknown"].(string); pol == "strict" {
		b.UnknownStrict()
	}
	rawFields, ok := doc["fields"].([]any)
	if !ok || len(rawFields) == 0 {
		return nil, invalidShape("/fields", "fields list missing or empty")
	}
	for _, rf := range rawFields {
		fm := stringKeyed(rf)
		if fm == nil {
			return nil, invalidShape("/fields", "field entry is not a mapping")
		}
		fname, _ := fm["name"].(string)
		if fname == "" {
			return nil, invalidShape("/fields", "field name missing")
		}
		spec, _ := fm["type"].(string)
		of, _ := fm["of"].(string)
		t, err := parseTypeSpec(spec, of, "/fields/"+fname)
		if err != nil {
			return nil, err
		}
		if nullable, _ := fm["nullable"].(bool); nullable {
			t = dsl.Nullable(t)
		}
		step := b.Field(fname, t)
		if req, _ := fm["required"].(bool); req {
			step.Required()
		}
		if dv, has := fm["default"]; has {
			step.Default(dv)
		}
	}
	return b.Build()
}

// parseTypeSpec interprets a type expression such as "string",
// "string|timestamp", or "list" with an accompanying "of" element expression.
func parseTypeSpec(spec, of, path string) (recshape.Type, error) {
	if spec == "" {
		return nil, invalidShape(path, "field type missing")
	}
	parts := strings.Split(spec, "|")
	alts := make([]recshape.Type, 0, len(parts))
	nullable := false
	for _, p := range parts {
		switch strings.TrimSpace(p) {
		case "string":
			alts = append(alts, dsl.String())
		case "bool":
			alts = append(alts, dsl.Bool())
		case "timestamp":
			alts = append(alts, dsl.Timestamp())
		case "null":
			nullable = true
		case "map", "mapping":
			elem, err := elemType(of, path)
			if err != nil {
				return nil, err
			}
			alts = append(alts, dsl.Map(elem))
		case "list", "sequence":
			elem, err := elemType(of, path)
			if err != nil {
				return nil, err
			}
			alts = append(alts, dsl.Seq(elem))
		default:
			return nil, invalidShape(path, "unknown type: "+p)
		}
	}
	if len(alts) == 0 {
		return nil, invalidShape(path, "type expression resolves to no alternatives")
	}
	t := dsl.OneOf(alts...)
	if nullable {
		t = dsl.Nullable(t)
	}
	return t, nil
}

// elemType resolves the "of" expression for a collection, defaulting to string.
func elemType(of, path string) (recshape.Type, error) {
	if of == "" {
		of = "string"
	}
	return parseTypeSpec(of, "", path)
}

// stringKeyed normalizes a decoded field entry; YAML may produce map[any]any.
func stringKeyed(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				return nil
			}
			out[ks] = vv
		}
		return out
	default:
		return nil
	}
}

func invalidShape(path, hint string) recshape.Issues {
	return recshape.Issues{{Path: path, Code: recshape.CodeInvalidShape, Message: i18n.T(recshape.CodeInvalidShape, nil), Hint: hint}}
}
