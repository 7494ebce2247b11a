package extract

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"wgslspec/internal/diag"
	"wgslspec/internal/htmldoc"
	"wgslspec/internal/wgsl"
)

// ParseParameterization reads the type-variable clauses of a table cell.
// Clauses are separated by <br>; a <p> child ends the current clause and
// forms a clause of its own. Later clauses replace earlier ones with the
// same variable name.
func ParseParameterization(cell *html.Node, r diag.Reporter, loc diag.Location) wgsl.Parameterization {
	p := wgsl.NewParameterization()
	if r == nil {
		r = diag.NopReporter
	}
	for _, clause := range clauses(cell) {
		words := strings.Fields(clause)
		if len(words) == 0 {
			continue
		}
		name, kind, ok := ClassifyClause(words)
		if !ok {
			diag.Infof(r, diag.ExtMalformedClause, loc, "clause %q has no constraint", clause)
			continue
		}
		p.Typevars[name] = kind
	}
	return p
}

// ClassifyClause classifies the words of one clause. word 0 is the type
// variable. "T is f32, i32, or u32" enumerates types; anything else, such as
// "T is a concrete scalar type", is kept as a description. Clauses with
// fewer than two words are rejected.
func ClassifyClause(words []string) (string, wgsl.ParameterizationKind, bool) {
	if len(words) < 2 {
		return "", wgsl.ParameterizationKind{}, false
	}
	name := words[0]
	if words[1] == "is" && (len(words) < 3 || !isDescriptiveArticle(words[2])) {
		types := make([]string, 0, len(words)-2)
		for _, w := range words[2:] {
			if w == "," || w == "or" {
				continue
			}
			types = append(types, strings.TrimRight(w, ","))
		}
		return name, wgsl.TypesKind(types...), true
	}
	return name, wgsl.DescriptionKind(htmldoc.JoinWords(words[1:])), true
}

func isDescriptiveArticle(word string) bool {
	switch word {
	case "a", "an", "concrete", "constructible":
		return true
	}
	return false
}

// clauses splits the children of cell into normalized clause texts.
func clauses(cell *html.Node) []string {
	var (
		out     []string
		pending []string
	)
	flush := func() {
		out = append(out, htmldoc.JoinWords(pending))
		pending = pending[:0]
	}
	if cell == nil {
		return nil
	}
	for c := cell.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			pending = append(pending, c.Data)
		case c.Type != html.ElementNode:
		case c.DataAtom == atom.Br:
			flush()
		case c.DataAtom == atom.P:
			flush()
			out = append(out, htmldoc.Text(c))
		default:
			pending = append(pending, htmldoc.Text(c))
		}
	}
	flush()
	return out
}
