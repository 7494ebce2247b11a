package extract

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"wgslspec/internal/diag"
	"wgslspec/internal/htmldoc"
	"wgslspec/internal/wgsl"
)

// Tokens builds the token catalog. It never fails; missing sections leave
// their fields empty.
func Tokens(doc *htmldoc.Document, opts Options) wgsl.TokenCatalog {
	return newExtractor(doc, opts, nil, 0).tokens()
}

func (x *extractor) tokens() wgsl.TokenCatalog {
	a := x.opts.Anchors
	cat := wgsl.NewTokenCatalog()
	cat.Keywords = x.keywords(a.KeywordSummary)
	cat.InterpolationTypeNames = x.names(a.InterpolationTypeNames)
	cat.InterpolationSamplingNames = x.names(a.InterpolationSamplingNames)
	cat.PrimitiveTypes = x.names(a.PredeclaredTypes)
	cat.TypeGenerators = x.typeGenerators(a.PredeclaredTypes)
	cat.TypeAliases = x.typeAliases()

	for _, name := range x.names(a.AttributeNames) {
		cat.Attributes[name] = x.attribute(name)
	}
	for _, name := range x.names(a.BuiltinValueNames) {
		cat.BuiltinValues[name] = wgsl.BuiltinValue{Stages: map[string]wgsl.BuiltinValueStage{}}
	}
	x.builtinValues(cat.BuiltinValues)
	return cat
}

// keywords reads the code items of the list right after the anchor.
func (x *extractor) keywords(id string) []string {
	span := x.section("keywords")
	out := []string{}
	defer func() { span.End(strconv.Itoa(len(out)) + " keywords") }()

	anchor := x.doc.ByID(id)
	if anchor == nil {
		x.missing(id, "keyword summary")
		return out
	}
	blocks := htmldoc.Blocks(anchor)
	if len(blocks) == 0 || blocks[0].Tag() != "ul" {
		x.missing(id, "keyword list directly after the anchor")
		return out
	}
	for _, code := range x.doc.All(blocks[0].Node, "code") {
		text, ok := htmldoc.FirstText(code)
		if !ok {
			diag.Infof(x.rep, diag.ExtMissingKeyword, diag.Location{Anchor: id, Element: "code"}, "keyword item has no text")
			continue
		}
		out = append(out, text)
	}
	sort.Strings(out)
	return out
}

// names reads the items of the first list following the anchor.
func (x *extractor) names(id string) []string {
	span := x.section("names:" + id)
	out := []string{}
	defer func() { span.End(strconv.Itoa(len(out)) + " names") }()

	list, ok := htmldoc.NextOf(x.doc.ByID(id), func(b htmldoc.Block) bool { return b.Tag() == "ul" })
	if !ok {
		x.missing(id, "name list")
		return out
	}
	for _, li := range x.doc.All(list.Node, "li") {
		out = append(out, strings.ReplaceAll(htmldoc.Text(li), "'", ""))
	}
	sort.Strings(out)
	return out
}

// typeGenerators reads the first cell of every row of the table following
// the predeclared types anchor.
func (x *extractor) typeGenerators(id string) []string {
	span := x.section("type-generators")
	out := []string{}
	defer func() { span.End(strconv.Itoa(len(out)) + " generators") }()

	table, ok := htmldoc.NextOf(x.doc.ByID(id), func(b htmldoc.Block) bool { return b.Kind == htmldoc.BlockTable })
	if !ok {
		x.missing(id, "type generator table")
		return out
	}
	for _, td := range x.doc.All(table.Node, "tr td:first-child") {
		out = append(out, htmldoc.Text(td))
	}
	sort.Strings(out)
	return out
}

// typeAliases scans every table whose first two header cells read
// "Predeclared alias" and "Original type".
func (x *extractor) typeAliases() map[string]string {
	span := x.section("type-aliases")
	out := map[string]string{}
	defer func() { span.End(strconv.Itoa(len(out)) + " aliases") }()

	for _, table := range x.doc.All(x.doc.Root(), "table") {
		headers := x.doc.All(table, "th")
		if len(headers) < 2 ||
			!htmldoc.TextContains(headers[0], "Predeclared alias") ||
			!htmldoc.TextContains(headers[1], "Original type") {
			continue
		}
		for i, row := range x.doc.All(table, "tbody tr") {
			tds := x.cells(row)
			if len(tds) < 2 {
				diag.Infof(x.rep, diag.ExtMalformedRow, diag.Location{Element: htmldoc.Describe(table) + " " + rowLabel(i)}, "alias row has %d cells", len(tds))
				continue
			}
			out[strings.TrimSpace(htmldoc.Text(tds[0]))] = strings.TrimSpace(htmldoc.Text(tds[1]))
		}
	}
	return out
}

// attribute reads the Description and Parameters rows of the first builtin
// table in the attribute's own section.
func (x *extractor) attribute(name string) wgsl.Attribute {
	id := name + x.opts.Anchors.AttributeSuffix
	attr := wgsl.Attribute{}
	anchor := x.doc.ByID(id)
	if anchor == nil {
		x.missing(id, "attribute section")
		return attr
	}
	var table *html.Node
	for _, b := range sectionOf(anchor) {
		if b.Kind == htmldoc.BlockTable && hasClasses(b.Node, x.opts.Anchors.BuiltinTableClasses) {
			table = b.Node
			break
		}
	}
	if table == nil {
		x.missing(id, "attribute table")
		return attr
	}
	for _, row := range x.doc.All(table, "tr") {
		tds := x.cells(row)
		if len(tds) < 2 {
			continue
		}
		switch {
		case htmldoc.TextContains(tds[0], "Description"):
			attr.Description = htmldoc.Text(tds[1])
		case htmldoc.TextContains(tds[0], "Parameters"):
			attr.DescriptionParameters = wgsl.StringPtr(htmldoc.Text(tds[1]))
		}
	}
	return attr
}

// builtinColumns locates the columns of the builtin inputs/outputs table.
type builtinColumns struct {
	name, stage, direction, typ, description int
}

func (c builtinColumns) width() int {
	return max(c.name, c.stage, c.direction, c.typ, c.description) + 1
}

func findBuiltinColumns(headers []*html.Node) (builtinColumns, bool) {
	cols := builtinColumns{name: -1, stage: -1, direction: -1, typ: -1, description: -1}
	for i, th := range headers {
		text := htmldoc.Text(th)
		switch {
		case cols.name < 0 && strings.Contains(text, "Name"):
			cols.name = i
		case cols.stage < 0 && strings.Contains(text, "Stage"):
			cols.stage = i
		case cols.direction < 0 && (strings.Contains(text, "Input") || strings.Contains(text, "Direction")):
			cols.direction = i
		case cols.typ < 0 && strings.Contains(text, "Type"):
			cols.typ = i
		case cols.description < 0 && strings.Contains(text, "Description"):
			cols.description = i
		}
	}
	return cols, cols.name >= 0 && cols.stage >= 0 && cols.direction >= 0
}

// builtinValues fills stages and types from the builtin inputs/outputs table.
func (x *extractor) builtinValues(values map[string]wgsl.BuiltinValue) {
	id := x.opts.Anchors.BuiltinInputsOutputs
	span := x.section("builtin-values")
	rows := 0
	defer func() { span.End(strconv.Itoa(rows) + " rows") }()

	var (
		table *html.Node
		cols  builtinColumns
	)
	_, found := htmldoc.NextOf(x.doc.ByID(id), func(b htmldoc.Block) bool {
		if b.Kind != htmldoc.BlockTable {
			return false
		}
		c, ok := findBuiltinColumns(x.doc.All(b.Node, "th"))
		if ok {
			table, cols = b.Node, c
		}
		return ok
	})
	if !found {
		x.missing(id, "builtin inputs/outputs table")
		return
	}

	for i, row := range x.doc.All(table, "tr") {
		tds := x.cells(row)
		if len(tds) == 0 {
			continue
		}
		loc := diag.Location{Anchor: id, Element: rowLabel(i)}
		if len(tds) < cols.width() {
			diag.Infof(x.rep, diag.ExtMalformedRow, loc, "row has %d cells, want %d", len(tds), cols.width())
			continue
		}
		name := strings.ReplaceAll(htmldoc.Text(tds[cols.name]), "'", "")
		dir, err := wgsl.ParseDirection(htmldoc.Text(tds[cols.direction]))
		if err != nil {
			diag.Warnf(x.rep, diag.ExtUnknownDirection, loc, "%s: %v", name, err)
			continue
		}
		value, ok := values[name]
		if !ok {
			value = wgsl.BuiltinValue{Stages: map[string]wgsl.BuiltinValueStage{}}
		}
		stage := wgsl.BuiltinValueStage{Direction: dir}
		if cols.description >= 0 {
			stage.Description = htmldoc.Text(tds[cols.description])
		}
		if cols.typ >= 0 {
			value.TypeName = htmldoc.Text(tds[cols.typ])
		}
		value.Stages[htmldoc.Text(tds[cols.stage])] = stage
		values[name] = value
		rows++
		x.node(span, "builtin", name)
	}
}
