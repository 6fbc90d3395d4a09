package recshape

// Package recshape provides:
//
// - Declarative record shapes (named fields, semantic types, defaults) checked
//   against string-keyed input by a single fail-fast validation pass
// - A stable error model via Issues (JSON Pointer path, code, expected/got)
// - Two default kinds: fixed shared values and per-construction factories
// - Canonical serialization of instances (Dump/DumpJSON and Shape.ParseJSON)
//
// Design policy:
// - Keep only public APIs in the root package; builders live under dsl/,
//   codecs under codec/, file-based shape loading under shapefile/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	person := dsl.Shape("Person").
//		Field("first_name", dsl.String()).Required().
//		Field("last_name", dsl.String()).Required().
//		MustBuild()
//
//	inst, err := person.Parse(ctx, map[string]any{"first_name": "Jane", "last_name": "Smith"})
//	data, err := inst.DumpJSON()
