package diag

import "fmt"

// Reporter is the minimal contract extractors use to emit diagnostics.
type Reporter interface {
	Report(code Code, sev Severity, loc Location, msg string)
}

// BagReporter writes into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, loc Location, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(New(sev, code, loc, msg))
}

type nopReporter struct{}

func (nopReporter) Report(Code, Severity, Location, string) {}

// NopReporter discards every diagnostic.
var NopReporter Reporter = nopReporter{}

// Infof reports an info diagnostic with a formatted message.
func Infof(r Reporter, code Code, loc Location, format string, args ...any) {
	if r == nil {
		return
	}
	r.Report(code, SevInfo, loc, fmt.Sprintf(format, args...))
}

// Warnf reports a warning diagnostic with a formatted message.
func Warnf(r Reporter, code Code, loc Location, format string, args ...any) {
	if r == nil {
		return
	}
	r.Report(code, SevWarning, loc, fmt.Sprintf(format, args...))
}
