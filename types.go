package recshape

import "context"

// Type is one node of a shape's declared type tree. Implementations form a
// small interpreter: a recursive Coerce pass over raw input and an Encode pass
// back to the serialized form.
type Type interface {
	// Describe returns the type description used in issue messages,
	// for example "string", "mapping<string>", or "string|timestamp".
	Describe() string

	// Coerce checks v against the type and returns the value to bind. path is
	// the JSON Pointer of v within the enclosing construction and is used
	// verbatim in issues. Collections are checked element-wise; the first
	// failing key, value, or element aborts with its own path.
	Coerce(ctx context.Context, path string, v any) (any, error)

	// Encode renders a bound value into its serialized form: plain maps,
	// slices, and scalars, with timestamps as canonical RFC3339 strings.
	Encode(v any) (any, error)
}

// Codec performs bidirectional transformation between the wire representation
// A and the domain representation B.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error)
	Encode(ctx context.Context, b B) (A, error)
}

// DefaultKind distinguishes the two default semantics a field can declare.
// A fixed value is bound as-is into every instance constructed without the
// field, so a mutable fixed default is shared across instances. A factory is
// invoked once per construction and yields an independent value each time.
type DefaultKind int

const (
	DefaultNone DefaultKind = iota
	DefaultValue
	DefaultFactory
)
