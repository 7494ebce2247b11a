package extract

import (
	"wgslspec/internal/htmldoc"
	"wgslspec/internal/pipeline"
	"wgslspec/internal/sig"
	"wgslspec/internal/wgsl"
)

// functionStages lists the function extractors in merge order. Later
// stages overwrite same-named entries of earlier ones.
var functionStages = []struct {
	stage pipeline.Stage
	run   func(*extractor, map[string]wgsl.Function) error
}{
	{pipeline.StageStandard, (*extractor).standardFunctions},
	{pipeline.StageTexture, (*extractor).textureFunctions},
	{pipeline.StageAtomic, (*extractor).atomicFunctions},
}

// Functions builds the function catalog. A *diag.StructuralError aborts
// extraction and no catalog is returned.
func Functions(doc *htmldoc.Document, opts Options) (wgsl.FunctionCatalog, error) {
	x := newExtractor(doc, opts, nil, 0)
	cat := wgsl.NewFunctionCatalog()
	for _, st := range functionStages {
		if err := st.run(x, cat.Functions); err != nil {
			return wgsl.FunctionCatalog{}, err
		}
	}
	x.finish(cat.Functions)
	return cat, nil
}

// finish drops placeholder names and tightens generic brackets in every
// signature.
func (x *extractor) finish(functions map[string]wgsl.Function) {
	for _, name := range x.opts.Placeholders {
		delete(functions, name)
	}
	for _, fn := range functions {
		for i := range fn.Overloads {
			fn.Overloads[i].Signature = sig.TightenGenerics(fn.Overloads[i].Signature)
		}
	}
}
