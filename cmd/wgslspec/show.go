package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/hbollon/go-edlib"
	"github.com/spf13/cobra"

	"wgslspec/internal/output"
	"wgslspec/internal/wgsl"
)

const (
	suggestionLimit     = 3
	suggestionThreshold = 0.6
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <function> [document.html]",
		Short: "Print one builtin function",
		Long: `Show prints the overloads, type parameterization, parameters and description
of one builtin function. Near names are suggested when the function is unknown.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runShow,
	}
	cmd.Flags().String("catalog", "", "read a functions catalog written by extract instead of a document")
	cmd.Flags().Bool("no-cache", false, "ignore the catalog cache")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	catalogPath, err := cmd.Flags().GetString("catalog")
	if err != nil {
		return fmt.Errorf("failed to get catalog flag: %w", err)
	}

	var functions wgsl.FunctionCatalog
	if catalogPath != "" {
		functions, err = output.ReadFunctions(catalogPath)
		if err != nil {
			return fmt.Errorf("failed to read catalog: %w", err)
		}
	} else {
		noCache, err := cmd.Flags().GetBool("no-cache")
		if err != nil {
			return fmt.Errorf("failed to get no-cache flag: %w", err)
		}
		s, err := newSession(cmd, documentArg(args, 1))
		if err != nil {
			return err
		}
		cats, err := extractCatalogs(cmd.Context(), s, !noCache, nil)
		printDiagnostics(cmd, s.bag, s.document)
		if err != nil {
			dumpTraceOnFailure(cmd.Context(), cmd.ErrOrStderr(), err)
			return err
		}
		functions = cats.Functions
		defer printTimings(cmd, s)
	}

	fn, ok := functions.Functions[name]
	if !ok {
		msg := fmt.Sprintf("unknown function %q", name)
		if near := suggestNames(name, functions.Names()); len(near) > 0 {
			msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(near, ", "))
		}
		return errors.New(msg)
	}
	printFunction(cmd.OutOrStdout(), name, fn)
	return nil
}

func printFunction(out io.Writer, name string, fn wgsl.Function) {
	heading := color.New(color.Bold)
	label := color.New(color.FgCyan)
	faint := color.New(color.Faint)

	fmt.Fprintln(out, heading.Sprint(name))
	if fn.Description != nil && *fn.Description != "" {
		fmt.Fprintf(out, "\n%s\n", *fn.Description)
	}
	for i, ov := range fn.Overloads {
		fmt.Fprintf(out, "\n%s %s\n", label.Sprintf("overload %d:", i+1), ov.Signature)
		vars := make([]string, 0, len(ov.Parameterization.Typevars))
		for v := range ov.Parameterization.Typevars {
			vars = append(vars, v)
		}
		sort.Strings(vars)
		for _, v := range vars {
			kind := ov.Parameterization.Typevars[v]
			switch kind.Tag {
			case wgsl.KindTypes:
				fmt.Fprintf(out, "  %s is one of %s\n", v, strings.Join(kind.Types, ", "))
			default:
				fmt.Fprintf(out, "  %s %s\n", v, kind.Description)
			}
		}
		if ov.Description != nil && *ov.Description != "" {
			fmt.Fprintf(out, "  %s\n", faint.Sprint(*ov.Description))
		}
	}
	if len(fn.Parameters) > 0 {
		fmt.Fprintf(out, "\n%s\n", label.Sprint("parameters:"))
		for _, p := range fn.Parameters {
			fmt.Fprintf(out, "  %s: %s\n", p.Name, p.Description)
		}
	}
}

// suggestNames returns up to suggestionLimit names similar to name, best first.
func suggestNames(name string, names []string) []string {
	type scored struct {
		name  string
		score float32
	}
	var hits []scored
	lower := strings.ToLower(name)
	for _, candidate := range names {
		score, err := edlib.StringsSimilarity(lower, strings.ToLower(candidate), edlib.Levenshtein)
		if err != nil || score < suggestionThreshold {
			continue
		}
		hits = append(hits, scored{candidate, score})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].name < hits[j].name
	})
	if len(hits) > suggestionLimit {
		hits = hits[:suggestionLimit]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}
