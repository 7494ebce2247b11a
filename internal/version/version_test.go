package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestColoredPlain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	if got := (Info{Version: "1.2.3-dev"}).Colored(); got != "1.2.3-dev" {
		t.Fatalf("Colored() = %q", got)
	}
	if got := (Info{Version: "nightly"}).Colored(); got != "nightly" {
		t.Fatalf("Colored() = %q", got)
	}
}

func TestString(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	info := Info{Version: "0.1.0", GitCommit: "abc123", BuildDate: "2024-01-15"}
	if got, want := info.String(), "wgslspec 0.1.0 (abc123, 2024-01-15)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if got, want := (Info{Version: "0.1.0"}).String(), "wgslspec 0.1.0"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestCurrentCanBeOverridden(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()
	Version = "9.9.9"
	if Current().Version != "9.9.9" {
		t.Fatal("Current must reflect ldflags overrides")
	}
}
