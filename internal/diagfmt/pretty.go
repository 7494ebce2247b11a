package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"wgslspec/internal/diag"
)

// Pretty writes one line per diagnostic followed by the hidden and dropped
// counts. The bag is not reordered; callers sort it first.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	hidden := 0
	for _, d := range bag.Items() {
		if d.Severity < diag.SevWarning && !opts.Verbose {
			hidden++
			continue
		}
		line := diag.FormatLine(d)
		if opts.Color {
			line = fmt.Sprintf("%s %s %s %s",
				paint(severityColor(d.Severity), d.Severity.String()),
				paint(color.New(color.Faint), d.Code.ID()),
				d.Location,
				strings.Join(strings.Fields(d.Message), " "))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if hidden > 0 {
		if _, err := fmt.Fprintf(w, "%d info diagnostics hidden (use --verbose)\n", hidden); err != nil {
			return err
		}
	}
	if n := bag.Dropped(); n > 0 {
		if _, err := fmt.Fprintf(w, "%d diagnostics dropped (raise --max-diagnostics)\n", n); err != nil {
			return err
		}
	}
	return nil
}

func paint(c *color.Color, s string) string {
	c.EnableColor()
	return c.Sprint(s)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
