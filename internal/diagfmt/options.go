// Package diagfmt renders diagnostic bags for people and for tools.
package diagfmt

import (
	"fmt"
	"strings"
)

// Format selects a renderer.
type Format uint8

const (
	// FormatPretty is one colored line per diagnostic.
	FormatPretty Format = iota
	// FormatJSON is a single JSON document.
	FormatJSON
	// FormatSARIF is a SARIF v2.1.0 log.
	FormatSARIF
)

func (f Format) String() string {
	switch f {
	case FormatPretty:
		return "pretty"
	case FormatJSON:
		return "json"
	case FormatSARIF:
		return "sarif"
	}
	return "unknown"
}

// ParseFormat accepts pretty, json and sarif.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	case "sarif":
		return FormatSARIF, nil
	default:
		return FormatPretty, fmt.Errorf("invalid diagnostics format %q (expected pretty|json|sarif)", s)
	}
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// Verbose includes info diagnostics; otherwise they are only counted.
	Verbose bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	// Document is the input path reported with every location.
	Document string
	Max      int // trims the output, not the bag
}

// SarifRunMeta provides metadata for SARIF output.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	Document       string
	InvocationArgs []string
}
