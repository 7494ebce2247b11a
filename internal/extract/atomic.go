package extract

import (
	"strconv"
	"strings"
	"unicode"

	"wgslspec/internal/diag"
	"wgslspec/internal/htmldoc"
	"wgslspec/internal/sig"
	"wgslspec/internal/wgsl"
)

// atomicFunctions reads the h4 subsections of the atomic functions section.
// Each pre block holds one or more concatenated signatures; the prose
// blocks after it, up to the next pre, describe all of them.
func (x *extractor) atomicFunctions(into map[string]wgsl.Function) error {
	id := x.opts.Anchors.AtomicFunctions
	subs, err := x.functionSubsections(id)
	if err != nil || subs == nil {
		return err
	}
	for _, sub := range subs {
		span := x.section("atomic:" + htmldoc.Text(sub.Heading.Node))
		n, err := x.atomicSubsection(id, sub, into)
		if err != nil {
			span.End("failed")
			return err
		}
		span.End(strconv.Itoa(n) + " functions")
	}
	return nil
}

func (x *extractor) atomicSubsection(anchor string, sub htmldoc.Subsection, into map[string]wgsl.Function) (int, error) {
	added := 0
	cur := htmldoc.NewCursor(sub.Body)
	for !cur.Done() {
		block, _ := cur.Next()
		loc := diag.Location{Anchor: anchor, Element: htmldoc.Describe(block.Node)}
		if block.Kind != htmldoc.BlockPre {
			return added, diag.Structuralf(diag.StructUnexpectedElement, loc,
				"expected a <pre> signature block in %q, found <%s>", htmldoc.Text(sub.Heading.Node), block.Tag())
		}

		var prose []string
		for {
			next, ok := cur.Peek()
			if !ok || next.Kind == htmldoc.BlockPre {
				break
			}
			prose = append(prose, htmldoc.Text(next.Node))
			cur.Next()
		}
		description := strings.TrimRightFunc(strings.Join(prose, " "), unicode.IsSpace)

		for _, signature := range sig.Split(htmldoc.Text(block.Node)) {
			name, ok := sig.FunctionName(signature)
			if !ok {
				diag.Infof(x.rep, diag.ExtUnnamedSignature, loc, "dropped %q", signature)
				continue
			}
			into[name] = wgsl.Function{
				Overloads: []wgsl.FunctionOverload{{
					Signature:        signature,
					Parameterization: wgsl.NewParameterization(),
				}},
				Parameters:  []wgsl.FunctionParameter{},
				Description: wgsl.StringPtr(description),
			}
			added++
		}
	}
	return added, nil
}
