package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"wgslspec/internal/wgsl"
)

// tokenCategory names one list of the token catalog.
type tokenCategory struct {
	name  string
	items func(wgsl.TokenCatalog) []string
}

var tokenCategories = []tokenCategory{
	{"keywords", func(c wgsl.TokenCatalog) []string { return c.Keywords }},
	{"attributes", func(c wgsl.TokenCatalog) []string { return sortedKeys(c.Attributes) }},
	{"builtin_values", func(c wgsl.TokenCatalog) []string { return sortedKeys(c.BuiltinValues) }},
	{"interpolation_type_names", func(c wgsl.TokenCatalog) []string { return c.InterpolationTypeNames }},
	{"interpolation_sampling_names", func(c wgsl.TokenCatalog) []string { return c.InterpolationSamplingNames }},
	{"primitive_types", func(c wgsl.TokenCatalog) []string { return c.PrimitiveTypes }},
	{"type_generators", func(c wgsl.TokenCatalog) []string { return c.TypeGenerators }},
	{"type_aliases", func(c wgsl.TokenCatalog) []string {
		keys := sortedKeys(c.TypeAliases)
		for i, k := range keys {
			keys[i] = k + " = " + c.TypeAliases[k]
		}
		return keys
	}},
}

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [document.html]",
		Short: "Summarize the token catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTokens,
	}
	cmd.Flags().String("list", "", "print every entry of one category instead of the counts")
	cmd.Flags().Bool("no-cache", false, "ignore the catalog cache")
	return cmd
}

func runTokens(cmd *cobra.Command, args []string) error {
	list, err := cmd.Flags().GetString("list")
	if err != nil {
		return fmt.Errorf("failed to get list flag: %w", err)
	}
	var category *tokenCategory
	if list != "" {
		if category = findCategory(list); category == nil {
			return fmt.Errorf("unknown category %q (expected one of %s)", list, strings.Join(categoryNames(), ", "))
		}
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	s, err := newSession(cmd, documentArg(args, 0))
	if err != nil {
		return err
	}
	cats, err := extractCatalogs(cmd.Context(), s, !noCache, nil)
	printDiagnostics(cmd, s.bag, s.document)
	if err != nil {
		dumpTraceOnFailure(cmd.Context(), cmd.ErrOrStderr(), err)
		return err
	}

	out := cmd.OutOrStdout()
	if category != nil {
		for _, item := range category.items(cats.Tokens) {
			fmt.Fprintln(out, item)
		}
	} else {
		printTokenCounts(out, cats.Tokens)
	}
	printTimings(cmd, s)
	return nil
}

func printTokenCounts(out io.Writer, tokens wgsl.TokenCatalog) {
	header := lipgloss.NewStyle().Bold(true)
	count := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	if color.NoColor {
		header, count = lipgloss.NewStyle(), lipgloss.NewStyle()
	}

	width := runewidth.StringWidth("category")
	for _, c := range tokenCategories {
		width = max(width, runewidth.StringWidth(c.name))
	}
	fmt.Fprintf(out, "%s  %s\n", header.Render(runewidth.FillRight("category", width)), header.Render("count"))
	total := 0
	for _, c := range tokenCategories {
		n := len(c.items(tokens))
		total += n
		fmt.Fprintf(out, "%s  %s\n", runewidth.FillRight(c.name, width), count.Render(fmt.Sprint(n)))
	}
	fmt.Fprintf(out, "%s  %d\n", runewidth.FillRight("total", width), total)
}

func findCategory(name string) *tokenCategory {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i := range tokenCategories {
		if tokenCategories[i].name == name {
			return &tokenCategories[i]
		}
	}
	return nil
}

func categoryNames() []string {
	names := make([]string, len(tokenCategories))
	for i, c := range tokenCategories {
		names[i] = c.name
	}
	return names
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
