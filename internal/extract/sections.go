package extract

import (
	"wgslspec/internal/diag"
	"wgslspec/internal/htmldoc"
)

const (
	functionSectionLevel    = 3
	functionSubsectionLevel = 4
)

// functionSubsections returns the h4 subsections of the h3 anchor id.
// A missing anchor yields nil; an anchor that is not an h3 is fatal.
func (x *extractor) functionSubsections(id string) ([]htmldoc.Subsection, error) {
	anchor := x.doc.ByID(id)
	if anchor == nil {
		x.missing(id, "function section")
		return nil, nil
	}
	if htmldoc.HeadingLevel(anchor) != functionSectionLevel {
		return nil, diag.Structuralf(diag.StructUnexpectedElement,
			diag.Location{Anchor: id, Element: htmldoc.Describe(anchor)},
			"expected an h%d heading, found <%s>", functionSectionLevel, anchor.Data)
	}
	section := htmldoc.Section(htmldoc.Blocks(anchor), functionSectionLevel)
	subs := htmldoc.Subsections(section, functionSubsectionLevel)
	if subs == nil {
		subs = []htmldoc.Subsection{}
	}
	return subs, nil
}

// subsectionName is the text of the first code element of the heading.
func (x *extractor) subsectionName(anchor string, sub htmldoc.Subsection) (string, error) {
	code := x.doc.First(sub.Heading.Node, "code")
	if code == nil {
		return "", diag.Structuralf(diag.StructMissingName,
			diag.Location{Anchor: anchor, Element: htmldoc.Describe(sub.Heading.Node)},
			"heading %q has no <code> function name", htmldoc.Text(sub.Heading.Node))
	}
	return htmldoc.Text(code), nil
}
