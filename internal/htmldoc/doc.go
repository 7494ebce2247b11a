// Package htmldoc wraps a parsed reference document and the primitives the
// extractors share: a compiled-query cache, text normalization, and a block
// cursor over the flat sibling sequences that make up a section.
//
// # Sections
//
// The reference has no explicit section elements. A section is the run of
// element siblings that follows a heading, up to the next heading of the same
// or a higher level. Blocks flattens such a run into []Block and Section cuts it
// at the boundary, so extractors are small loops over a Cursor instead of
// sibling-walk chains.
//
// # Queries
//
// QueryCache compiles each distinct selector text once. A cache is created per
// Document and is safe for concurrent use.
package htmldoc
