package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"wgslspec/internal/catcache"
	"wgslspec/internal/config"
	"wgslspec/internal/diag"
	"wgslspec/internal/extract"
	"wgslspec/internal/htmldoc"
	"wgslspec/internal/observ"
	"wgslspec/internal/pipeline"
	"wgslspec/internal/trace"
	"wgslspec/internal/wgsl"
)

// session carries what every subcommand resolves before touching the document.
type session struct {
	cfg      config.Config
	document string
	opts     extract.Options
	bag      *diag.Bag
	timer    *observ.Timer
}

var errNoDocument = errors.New("no document given and [input].document is not set")

func newSession(cmd *cobra.Command, docArg string) (*session, error) {
	pf := cmd.Root().PersistentFlags()
	configPath, err := pf.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	maxDiagnostics, err := pf.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.Discover(configPath, wd)
	if err != nil {
		return nil, err
	}
	document := docArg
	if document == "" {
		document = cfg.Input.Document
	}
	if document == "" {
		return nil, errNoDocument
	}
	bag := diag.NewBag(maxDiagnostics)
	opts := extract.FromConfig(cfg)
	opts.Reporter = diag.BagReporter{Bag: bag}
	return &session{
		cfg:      cfg,
		document: document,
		opts:     opts,
		bag:      bag,
		timer:    observ.NewTimer(),
	}, nil
}

// catalogs is the outcome of extractCatalogs.
type catalogs struct {
	Tokens    wgsl.TokenCatalog
	Functions wgsl.FunctionCatalog
	Cached    bool
}

// extractCatalogs loads the document and runs the extractor, consulting the
// catalog cache first when useCache is set.
func extractCatalogs(ctx context.Context, s *session, useCache bool, sink pipeline.ProgressSink) (*catalogs, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "session", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, span)
	defer span.End("")

	pipeline.Emit(sink, pipeline.Event{Stage: pipeline.StageLoad, Status: pipeline.StatusWorking, Item: s.document})
	idx := s.timer.Begin(string(pipeline.StageLoad))
	start := time.Now()
	doc, data, err := htmldoc.Load(s.document)
	s.timer.End(idx, s.document)
	if err != nil {
		s.bag.Add(diag.New(diag.SevError, diag.IOReadFail, diag.Location{}, err.Error()))
		pipeline.Emit(sink, pipeline.Event{Stage: pipeline.StageLoad, Status: pipeline.StatusError, Err: err})
		return nil, err
	}
	pipeline.Emit(sink, pipeline.Event{Stage: pipeline.StageLoad, Status: pipeline.StatusDone, Elapsed: time.Since(start)})

	var (
		cache *catcache.Cache
		key   catcache.Digest
	)
	if useCache && s.cfg.Cache.Enabled {
		cache, key = openCache(s, data, sink)
		if cache != nil {
			payload, ok, getErr := cache.Get(key)
			switch {
			case getErr != nil:
				diag.Warnf(s.opts.Reporter, diag.IOCacheFail, diag.Location{}, "cache read failed: %v", getErr)
			case ok:
				pipeline.Emit(sink, pipeline.Event{Stage: pipeline.StageCache, Status: pipeline.StatusDone, Item: "hit"})
				skipExtractStages(sink)
				span.WithExtra("cache", "hit")
				return &catalogs{Tokens: payload.Tokens, Functions: payload.Functions, Cached: true}, nil
			}
		}
		pipeline.Emit(sink, pipeline.Event{Stage: pipeline.StageCache, Status: pipeline.StatusDone, Item: "miss"})
	} else {
		pipeline.Emit(sink, pipeline.Event{Stage: pipeline.StageCache, Status: pipeline.StatusSkipped})
	}

	opts := s.opts
	opts.Progress = sink
	res, err := extract.Run(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	for _, st := range pipeline.Stages() {
		if res.Timings.Has(st) {
			s.timer.Record(string(st), res.Timings.Duration(st), "")
		}
	}

	if cache != nil {
		err := cache.Put(key, &catcache.Payload{
			Schema:    catcache.SchemaVersion,
			Source:    s.document,
			CreatedAt: time.Now().UTC(),
			Tokens:    res.Tokens,
			Functions: res.Functions,
		})
		if err != nil {
			diag.Warnf(s.opts.Reporter, diag.IOCacheFail, diag.Location{}, "cache write failed: %v", err)
		}
	}
	return &catalogs{Tokens: res.Tokens, Functions: res.Functions}, nil
}

func openCache(s *session, data []byte, sink pipeline.ProgressSink) (*catcache.Cache, catcache.Digest) {
	pipeline.Emit(sink, pipeline.Event{Stage: pipeline.StageCache, Status: pipeline.StatusWorking})
	key := catcache.Key(data, s.opts.Fingerprint())
	dir, err := s.cfg.CacheDir()
	if err != nil {
		diag.Warnf(s.opts.Reporter, diag.IOCacheFail, diag.Location{}, "no cache directory: %v", err)
		return nil, key
	}
	cache, err := catcache.Open(dir)
	if err != nil {
		diag.Warnf(s.opts.Reporter, diag.IOCacheFail, diag.Location{}, "cache unavailable: %v", err)
		return nil, key
	}
	return cache, key
}

// clearCache drops every stored catalog for the session's cache directory.
func clearCache(s *session) error {
	dir, err := s.cfg.CacheDir()
	if err != nil {
		return fmt.Errorf("failed to resolve cache directory: %w", err)
	}
	cache, err := catcache.Open(dir)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

func skipExtractStages(sink pipeline.ProgressSink) {
	for _, st := range []pipeline.Stage{
		pipeline.StageTokens, pipeline.StageStandard, pipeline.StageTexture,
		pipeline.StageAtomic, pipeline.StageMerge,
	} {
		pipeline.Emit(sink, pipeline.Event{Stage: st, Status: pipeline.StatusSkipped, Item: "cached"})
	}
}

// documentArg returns args[i] when present.
func documentArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
