// Package trace records what an extraction run did and how long each part took.
//
// # Usage
//
//	wgslspec extract --trace=- --trace-level=detail upstream/WGSL.html
//
// # Tracers
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: writes every event immediately (file or stderr)
//   - RingTracer: keeps the last N events; dumped when a run aborts
//   - MultiTracer: fans out to several tracers
//
// # Levels and scopes
//
// Events carry a scope; the level decides which scopes are kept:
//
//   - LevelPhase keeps ScopeDriver and ScopeStage (one span per extractor)
//   - LevelDetail adds ScopeSection (anchor sections, function subsections)
//   - LevelDebug adds ScopeNode (individual rows and clauses)
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "texture", 0)
//	defer span.End("")
package trace
