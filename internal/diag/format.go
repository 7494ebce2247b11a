package diag

import (
	"fmt"
	"strings"
)

// FormatLine renders a single diagnostic without a trailing newline:
//
//	info EXT1002 #texture-builtin-functions > tr 3 row has 1 cell, want 2
//
// The message is flattened to a single line.
func FormatLine(d Diagnostic) string {
	msg := strings.Join(strings.Fields(d.Message), " ")
	return fmt.Sprintf("%s %s %s %s", d.Severity, d.Code.ID(), d.Location, msg)
}
