// Package wgsl defines the records produced by scraping the WGSL reference.
// Invariants:
//   - Records are built once per extraction run and never mutated afterwards.
//   - Extractors always produce non-nil slices and maps, so encoded output shows
//     empty collections rather than null.
//   - FunctionCatalog and Parameterization encode transparently as their map.
//   - ParameterizationKind encodes externally tagged: {"types": [...]} or
//     {"description": "..."}.
//   - Every codec (JSON, msgpack, YAML) round-trips field for field.
package wgsl
