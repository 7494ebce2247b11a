package extract

import (
	"strconv"

	"wgslspec/internal/diag"
	"wgslspec/internal/htmldoc"
	"wgslspec/internal/sig"
	"wgslspec/internal/wgsl"
)

// standardFunctions reads one overload from every builtin data table and
// groups the overloads by function name.
func (x *extractor) standardFunctions(into map[string]wgsl.Function) error {
	query := x.opts.Anchors.builtinTableQuery()
	if _, err := x.doc.Queries().Compile(query); err != nil {
		return diag.Structuralf(diag.StructUnexpectedElement, diag.Location{Element: query}, "invalid builtin table classes: %v", err)
	}
	span := x.section("standard-tables")
	overloads := 0
	defer func() { span.End(strconv.Itoa(overloads) + " overloads") }()

	for ti, table := range x.doc.All(x.doc.Root(), query) {
		var (
			signature   string
			hasSig      bool
			description string
		)
		tableLoc := diag.Location{Element: htmldoc.Describe(table) + " " + strconv.Itoa(ti+1)}
		param := wgsl.NewParameterization()
		for _, row := range x.doc.All(table, "tr") {
			tds := x.cells(row)
			if len(tds) < 2 {
				continue
			}
			switch {
			case htmldoc.TextContains(tds[0], "Overload"):
				signature, hasSig = htmldoc.Text(tds[1]), true
			case htmldoc.TextContains(tds[0], "Description"):
				description = htmldoc.Text(tds[1])
			case htmldoc.TextContains(tds[0], "Parameterization"):
				param = ParseParameterization(tds[1], x.rep, tableLoc)
			}
		}
		if !hasSig {
			continue
		}
		name, ok := sig.FunctionName(signature)
		if !ok {
			return diag.Structuralf(diag.StructUnnamedOverload, tableLoc, "overload %q has no function name", signature)
		}
		fn, seen := into[name]
		if !seen {
			fn = wgsl.Function{Overloads: []wgsl.FunctionOverload{}, Parameters: []wgsl.FunctionParameter{}}
		}
		fn.Overloads = append(fn.Overloads, wgsl.FunctionOverload{
			Signature:        signature,
			Parameterization: param,
			Description:      wgsl.StringPtr(description),
		})
		into[name] = fn
		overloads++
		x.node(span, "overload", name)
	}
	return nil
}
