// Package fuzztests houses Go fuzz harnesses for the document side of the
// extractor: HTML parsing, structural walks and signature tokenizing. They
// guard against panics and hangs on arbitrary inputs.
package fuzztests
