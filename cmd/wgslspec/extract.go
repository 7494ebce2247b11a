package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wgslspec/internal/config"
	"wgslspec/internal/diag"
	"wgslspec/internal/output"
	"wgslspec/internal/pipeline"
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [document.html]",
		Short: "Write the token and function catalogs",
		Long: `Extract reads the WGSL reference document and writes tokens.<ext> and
functions.<ext> into the output directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExtract,
	}
	cmd.Flags().StringP("out", "o", "", "output directory (default: [output].dir)")
	cmd.Flags().StringP("format", "f", "", "output format (json|msgpack|yaml)")
	cmd.Flags().Bool("no-cache", false, "ignore the catalog cache")
	cmd.Flags().Bool("clear-cache", false, "drop every cached catalog before extracting")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, documentArg(args, 0))
	if err != nil {
		return err
	}
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	if outDir == "" {
		outDir = s.cfg.Output.Dir
	}
	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format := s.cfg.Output.Format
	if formatFlag != "" {
		if format, err = config.ParseFormat(formatFlag); err != nil {
			return err
		}
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	clearFirst, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	if clearFirst {
		if err := clearCache(s); err != nil {
			return err
		}
	}

	useTUI := !quiet && shouldUseTUI(mode, cmd.OutOrStdout())
	var stageLog pipeline.ProgressSink
	if verbose && !quiet && !useTUI {
		stageLog = stageLogger(cmd.ErrOrStderr())
	}

	job := func(ctx context.Context, sink pipeline.ProgressSink) runOutcome {
		sink = pipeline.Multi(sink, stageLog)
		cats, err := extractCatalogs(ctx, s, !noCache, sink)
		if err != nil {
			return runOutcome{err: err}
		}
		pipeline.Emit(sink, pipeline.Event{Stage: pipeline.StageWrite, Status: pipeline.StatusWorking, Item: outDir})
		start := time.Now()
		var written []string
		err = s.timer.Measure(string(pipeline.StageWrite), func() error {
			var werr error
			written, werr = output.Write(ctx, outDir, format, cats.Tokens, cats.Functions)
			return werr
		})
		if err != nil {
			s.bag.Add(diag.New(diag.SevError, diag.IOWriteFail, diag.Location{}, err.Error()))
			pipeline.Emit(sink, pipeline.Event{Stage: pipeline.StageWrite, Status: pipeline.StatusError, Err: err})
			return runOutcome{cats: cats, err: fmt.Errorf("failed to write catalogs: %w", err)}
		}
		pipeline.Emit(sink, pipeline.Event{
			Stage:   pipeline.StageWrite,
			Status:  pipeline.StatusDone,
			Item:    fmt.Sprintf("%d files", len(written)),
			Elapsed: time.Since(start),
		})
		return runOutcome{written: written, cats: cats}
	}

	ctx := cmd.Context()
	var outcome runOutcome
	if useTUI {
		outcome = runWithUI(ctx, cmd.OutOrStdout(), "extracting "+s.document, job)
	} else {
		outcome = job(ctx, nil)
	}

	printDiagnostics(cmd, s.bag, s.document)
	if outcome.err != nil {
		dumpTraceOnFailure(ctx, cmd.ErrOrStderr(), outcome.err)
		return outcome.err
	}
	if !quiet {
		out := cmd.OutOrStdout()
		suffix := ""
		if outcome.cats.Cached {
			suffix = color.New(color.Faint).Sprint(" (cached)")
		}
		fmt.Fprintf(out, "%s %d functions, %d keywords%s\n",
			color.New(color.FgGreen, color.Bold).Sprint("extracted"),
			len(outcome.cats.Functions.Functions), len(outcome.cats.Tokens.Keywords), suffix)
		for _, path := range outcome.written {
			fmt.Fprintf(out, "  wrote %s\n", path)
		}
	}
	printTimings(cmd, s)
	return nil
}

// stageLogger prints one line per finished stage.
func stageLogger(w io.Writer) pipeline.ProgressSink {
	return pipeline.FuncSink(func(evt pipeline.Event) {
		if !evt.Status.Terminal() {
			return
		}
		line := fmt.Sprintf("  %-8s %s", evt.Stage, evt.Status)
		switch {
		case evt.Err != nil:
			line += ": " + evt.Err.Error()
		case evt.Item != "":
			line += " (" + evt.Item + ")"
		}
		if evt.Elapsed > 0 {
			line += fmt.Sprintf(" %.2f ms", float64(evt.Elapsed.Microseconds())/1000)
		}
		fmt.Fprintln(w, line)
	})
}
