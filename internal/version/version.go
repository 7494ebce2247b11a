// Package version carries build metadata for the wgslspec CLI.
package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"
	// GitCommit is an optional git commit hash.
	GitCommit = ""
	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Info is the serializable build metadata.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// Current returns the build metadata.
func Current() Info {
	return Info{Version: Version, GitCommit: GitCommit, BuildDate: BuildDate}
}

// Colored renders the version with each numeric part in its own color.
// Versions that are not major.minor.patch are returned unchanged.
func (i Info) Colored() string {
	core, suffix, _ := strings.Cut(i.Version, "-")
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return i.Version
	}
	out := majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// String renders "wgslspec <version> (<commit>, <date>)".
func (i Info) String() string {
	var extra []string
	if i.GitCommit != "" {
		extra = append(extra, i.GitCommit)
	}
	if i.BuildDate != "" {
		extra = append(extra, i.BuildDate)
	}
	if len(extra) == 0 {
		return fmt.Sprintf("wgslspec %s", i.Colored())
	}
	return fmt.Sprintf("wgslspec %s (%s)", i.Colored(), strings.Join(extra, ", "))
}
