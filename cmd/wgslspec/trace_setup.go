package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"wgslspec/internal/diag"
	"wgslspec/internal/trace"
)

// setupTracing reads the trace flags and attaches a tracer to the command
// context. The returned cleanup flushes and closes it.
func setupTracing(cmd *cobra.Command) (func(), error) {
	pf := cmd.Root().PersistentFlags()
	output, err := pf.GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := pf.GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := pf.GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	formatStr, err := pf.GetString("trace-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	ringSize, err := pf.GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	// --trace alone means phase-level tracing
	if level == trace.LevelOff && output != "" {
		level = trace.LevelPhase
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(ctx, trace.Nop))
		return func() {}, nil
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}
	cfg := trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: output,
		RingSize:   ringSize,
	}
	if output == "" || output == "-" {
		cfg.Output = nopWriteCloser{cmd.ErrOrStderr()}
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(ctx, tracer))

	return func() {
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}

// nopWriteCloser keeps the tracer from closing the command's stderr.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// dumpTraceOnFailure writes the ring buffer to w when err is a structural
// violation and a ring tracer is active.
func dumpTraceOnFailure(ctx context.Context, w io.Writer, err error) {
	if _, ok := diag.AsStructural(err); !ok {
		return
	}
	ring, ok := trace.Ring(trace.FromContext(ctx))
	if !ok {
		return
	}
	fmt.Fprintln(w, "trace: recent events before the failure:")
	if dumpErr := ring.Dump(w, trace.FormatText); dumpErr != nil {
		fmt.Fprintf(w, "trace: dump error: %v\n", dumpErr)
	}
}
