package extract

import (
	"slices"
	"strconv"

	"golang.org/x/net/html"

	"wgslspec/internal/diag"
	"wgslspec/internal/htmldoc"
	"wgslspec/internal/trace"
)

// extractor carries the per-run state shared by the section walkers.
type extractor struct {
	doc    *htmldoc.Document
	opts   Options
	rep    diag.Reporter
	tracer trace.Tracer
	parent uint64
}

func newExtractor(doc *htmldoc.Document, opts Options, tracer trace.Tracer, parent uint64) *extractor {
	if tracer == nil {
		tracer = trace.Nop
	}
	return &extractor{doc: doc, opts: opts, rep: opts.reporter(), tracer: tracer, parent: parent}
}

// section opens a section-scoped span under the current stage span.
func (x *extractor) section(name string) *trace.Span {
	return trace.Begin(x.tracer, trace.ScopeSection, name, x.parent)
}

func (x *extractor) node(parent *trace.Span, name, detail string) {
	trace.Point(x.tracer, trace.ScopeNode, name, detail, parent.ID())
}

func (x *extractor) missing(anchor, what string) {
	diag.Infof(x.rep, diag.ExtMissingSection, diag.Location{Anchor: anchor}, "no %s found; field left empty", what)
}

// sectionOf returns the blocks owned by anchor: everything up to the next
// heading of the same or a higher level. Non-heading anchors own every
// following sibling.
func sectionOf(anchor *html.Node) []htmldoc.Block {
	blocks := htmldoc.Blocks(anchor)
	if lvl := htmldoc.HeadingLevel(anchor); lvl > 0 {
		return htmldoc.Section(blocks, lvl)
	}
	return blocks
}

// hasClasses reports whether n carries every class in classes.
func hasClasses(n *html.Node, classes []string) bool {
	return len(classes) > 0 && !slices.ContainsFunc(classes, func(c string) bool {
		return !htmldoc.HasClass(n, c)
	})
}

// cells returns the td descendants of row.
func (x *extractor) cells(row *html.Node) []*html.Node {
	return x.doc.All(row, "td")
}

// rowLabel renders "tr N" for diagnostics.
func rowLabel(i int) string {
	return "tr " + strconv.Itoa(i+1)
}
