package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wgslspec/internal/diag"
	"wgslspec/internal/diagfmt"
	"wgslspec/internal/version"
)

// printDiagnostics writes the collected diagnostics to stderr. Pretty output
// is suppressed by --quiet; json and sarif are always written.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, document string) {
	if bag == nil {
		return
	}
	pf := cmd.Root().PersistentFlags()
	quiet, _ := pf.GetBool("quiet")
	verbose, _ := pf.GetBool("verbose")
	formatStr, _ := pf.GetString("diagnostics-format")
	format, err := diagfmt.ParseFormat(formatStr)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
		return
	}

	bag.Dedup()
	bag.Sort()
	out := cmd.ErrOrStderr()
	switch format {
	case diagfmt.FormatJSON:
		err = diagfmt.JSON(out, bag, diagfmt.JSONOpts{Document: document})
	case diagfmt.FormatSARIF:
		err = diagfmt.Sarif(out, bag, diagfmt.SarifRunMeta{
			ToolName:       "wgslspec",
			ToolVersion:    version.Version,
			Document:       document,
			InvocationArgs: os.Args[1:],
		})
	default:
		if quiet {
			return
		}
		err = diagfmt.Pretty(out, bag, diagfmt.PrettyOpts{Color: !color.NoColor, Verbose: verbose})
	}
	if err != nil {
		fmt.Fprintf(out, "failed to print diagnostics: %v\n", err)
	}
}
