package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wgslspec/internal/version"
)

// newRootCmd builds the command tree. The returned finish func stops tracing
// and profiling; it must run after Execute, also when Execute fails.
func newRootCmd() (*cobra.Command, func()) {
	var cleanups []func()
	root := &cobra.Command{
		Use:           "wgslspec",
		Short:         "Extract machine-readable catalogs from the WGSL reference",
		Long:          `wgslspec reads the WGSL specification HTML and writes a token catalog and a builtin function catalog.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyColorFlag(cmd); err != nil {
				return err
			}
			stopProf, err := setupProfiling(cmd)
			if err != nil {
				return err
			}
			cleanups = append(cleanups, stopProf)
			stopTrace, err := setupTracing(cmd)
			if err != nil {
				return err
			}
			cleanups = append(cleanups, stopTrace)
			return nil
		},
	}

	root.AddCommand(newExtractCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newTokensCmd())
	root.AddCommand(newVersionCmd())

	pf := root.PersistentFlags()
	pf.String("config", "", "path to wgslspec.toml (default: nearest one above the working directory)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.BoolP("verbose", "v", false, "also print info diagnostics")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to keep")
	pf.String("diagnostics-format", "pretty", "diagnostics output format (pretty|json|sarif)")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 1024, "events kept in the trace ring buffer")

	pf.String("cpu-profile", "", "write CPU profile to file")
	pf.String("mem-profile", "", "write heap profile to file on exit")
	pf.String("runtime-trace", "", "write Go runtime trace to file")

	finish := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
		cleanups = nil
	}
	return root, finish
}

func main() {
	root, finish := newRootCmd()
	err := root.Execute()
	finish()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
		os.Exit(1)
	}
}

func applyColorFlag(cmd *cobra.Command) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	return nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
