// Package extract turns a parsed WGSL reference document into the token
// and function catalogs.
//
// The document is only implicitly structured: sections are delimited by
// heading levels and recognized by anchor ids. Every extractor works on the
// flattened block sequence following its anchor (see htmldoc.Blocks) and
// degrades per section. Missing sections produce empty results and an info
// diagnostic; an anchor with the wrong shape aborts the run with a
// *diag.StructuralError.
//
// Builtin functions are described three different ways:
//
//   - standard functions: one `.data.builtin` table per overload
//   - texture functions: an h4 subsection per function with algorithm rows,
//     a parameter table and a trailing "Returns:" block
//   - atomic functions: pre blocks of concatenated signatures followed by prose
//
// Functions merges the three in that order, later sections replacing
// same-named entries from earlier ones.
package extract
