package extract

import (
	"strconv"

	"wgslspec/internal/diag"
	"wgslspec/internal/htmldoc"
	"wgslspec/internal/trace"
	"wgslspec/internal/wgsl"
)

// textureFunctions reads the h4 subsections of the texture functions
// section. Each subsection starts with a description block, followed by
// tables of algorithm rows (one overload each), a "Parameters:" label and
// its table, and a "Returns:" label whose remaining blocks extend the
// description.
func (x *extractor) textureFunctions(into map[string]wgsl.Function) error {
	id := x.opts.Anchors.TextureFunctions
	subs, err := x.functionSubsections(id)
	if err != nil || subs == nil {
		return err
	}
	for _, sub := range subs {
		name, err := x.subsectionName(id, sub)
		if err != nil {
			return err
		}
		span := x.section("texture:" + name)
		fn, ok := x.textureFunction(id, name, sub, span.ID())
		if !ok {
			span.End("skipped")
			continue
		}
		into[name] = fn
		span.End(strconv.Itoa(len(fn.Overloads)) + " overloads")
	}
	return nil
}

func (x *extractor) textureFunction(anchor, name string, sub htmldoc.Subsection, spanID uint64) (wgsl.Function, bool) {
	loc := diag.Location{Anchor: anchor, Element: htmldoc.Describe(sub.Heading.Node)}
	cur := htmldoc.NewCursor(sub.Body)
	first, ok := cur.Next()
	if !ok {
		diag.Infof(x.rep, diag.ExtEmptySubsection, loc, "%s has no description", name)
		return wgsl.Function{}, false
	}
	description := htmldoc.Text(first.Node)
	fn := wgsl.Function{
		Overloads:  []wgsl.FunctionOverload{},
		Parameters: []wgsl.FunctionParameter{},
	}

	for !cur.Done() {
		block, _ := cur.Next()
		for i, row := range x.doc.All(block.Node, "tr.algorithm") {
			tds := x.cells(row)
			if len(tds) < 2 {
				diag.Infof(x.rep, diag.ExtMalformedRow, diag.Location{Anchor: anchor, Element: "tr.algorithm " + strconv.Itoa(i+1)}, "%s: algorithm row has %d cells", name, len(tds))
				continue
			}
			fn.Overloads = append(fn.Overloads, wgsl.FunctionOverload{
				Signature:        htmldoc.Text(tds[1]),
				Parameterization: ParseParameterization(tds[0], x.rep, loc),
			})
			trace.Point(x.tracer, trace.ScopeNode, "overload", name, spanID)
		}

		label := x.doc.First(block.Node, "p strong")
		if label == nil {
			continue
		}
		if htmldoc.TextContains(label, "Parameters:") {
			table, ok := cur.Next()
			if !ok {
				continue
			}
			for _, row := range x.doc.All(table.Node, "tr") {
				tds := x.cells(row)
				if len(tds) < 2 {
					continue
				}
				fn.Parameters = append(fn.Parameters, wgsl.FunctionParameter{
					Name:        htmldoc.Text(tds[0]),
					Description: htmldoc.Text(tds[1]),
				})
			}
		}
		if htmldoc.TextContains(label, "Returns:") {
			description += "\n\nReturns:"
			for _, rest := range cur.Rest() {
				description += "\n\n" + htmldoc.Text(rest.Node)
			}
		}
	}
	fn.Description = &description
	return fn, true
}
