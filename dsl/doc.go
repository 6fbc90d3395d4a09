// Package dsl provides the builder surface for recshape: type constructors
// (String, Bool, Timestamp, Map, Seq, OneOf, Nullable) and the chained Shape
// builder that compiles field declarations into a recshape.Shape.
package dsl
