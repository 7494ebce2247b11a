package extract

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"wgslspec/internal/htmldoc"
	"wgslspec/internal/pipeline"
	"wgslspec/internal/trace"
	"wgslspec/internal/wgsl"
)

// Result holds both catalogs of one run.
type Result struct {
	Tokens    wgsl.TokenCatalog
	Functions wgsl.FunctionCatalog
	Timings   pipeline.Timings
}

// Run extracts both catalogs from doc. Progress events go to
// opts.Progress, spans to the tracer in ctx. Cancellation is checked
// between stages. On failure no result is returned.
func Run(ctx context.Context, doc *htmldoc.Document, opts Options) (*Result, error) {
	tracer := trace.FromContext(ctx)
	root := trace.Begin(tracer, trace.ScopeStage, "extract", trace.CurrentSpan(ctx))
	res := &Result{}

	stage := func(st pipeline.Stage, fn func(*extractor) (string, error)) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		pipeline.Emit(opts.Progress, pipeline.Event{Stage: st, Status: pipeline.StatusWorking})
		span := trace.Begin(tracer, trace.ScopeStage, string(st), root.ID())
		start := time.Now()
		note, err := fn(newExtractor(doc, opts, tracer, span.ID()))
		elapsed := time.Since(start)
		res.Timings.Set(st, elapsed)
		if err != nil {
			span.End("error: " + err.Error())
			pipeline.Emit(opts.Progress, pipeline.Event{Stage: st, Status: pipeline.StatusError, Err: err, Elapsed: elapsed})
			return fmt.Errorf("%s: %w", st, err)
		}
		span.End(note)
		pipeline.Emit(opts.Progress, pipeline.Event{Stage: st, Status: pipeline.StatusDone, Item: note, Elapsed: elapsed})
		return nil
	}

	err := stage(pipeline.StageTokens, func(x *extractor) (string, error) {
		res.Tokens = x.tokens()
		return strconv.Itoa(len(res.Tokens.Keywords)) + " keywords", nil
	})

	functions := map[string]wgsl.Function{}
	for _, st := range functionStages {
		if err != nil {
			break
		}
		err = stage(st.stage, func(x *extractor) (string, error) {
			before := len(functions)
			if err := st.run(x, functions); err != nil {
				return "", err
			}
			return strconv.Itoa(len(functions)-before) + " new functions", nil
		})
	}
	if err == nil {
		err = stage(pipeline.StageMerge, func(x *extractor) (string, error) {
			x.finish(functions)
			return strconv.Itoa(len(functions)) + " functions", nil
		})
	}
	if err != nil {
		root.End("failed")
		return nil, err
	}
	res.Functions = wgsl.FunctionCatalog{Functions: functions}
	root.WithExtra("functions", strconv.Itoa(len(functions))).End("")
	return res, nil
}
