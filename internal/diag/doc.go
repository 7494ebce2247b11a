// Package diag defines the diagnostic model shared by the extractors.
//
// # Purpose
//
//   - Record findings that do not stop extraction: a missing optional section,
//     a table row without the expected cells, a parameterization clause too short
//     to classify.
//   - Carry the one failure that does stop it: StructuralError, raised when an
//     anchor the extractors depend on has an unexpected shape.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error (severity.go).
//   - Code – numeric identifier with a stable string form (codes.go).
//   - Message – short, human oriented text.
//   - Location – the anchor id and element the finding is about.
//
// # Emitting diagnostics
//
// Extractors receive a Reporter and never see storage. BagReporter collects into
// a Bag, which supports sorting, deduplication and a size limit; NopReporter
// discards everything.
//
// Package diag does no formatting beyond FormatLine; colouring and printing
// are done by the CLI.
package diag
