package extract

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"wgslspec/internal/config"
	"wgslspec/internal/diag"
	"wgslspec/internal/pipeline"
)

// Anchors names the document locations the extractors start from.
// Ids are given without the leading '#'.
type Anchors struct {
	KeywordSummary             string
	AttributeNames             string
	BuiltinValueNames          string
	InterpolationTypeNames     string
	InterpolationSamplingNames string
	PredeclaredTypes           string
	// BuiltinTableClasses must all be present on a standard function table.
	BuiltinTableClasses  []string
	TextureFunctions     string
	AtomicFunctions      string
	BuiltinInputsOutputs string
	// AttributeSuffix is appended to an attribute name to find its section id.
	AttributeSuffix string
}

// DefaultAnchors matches the published WGSL reference.
func DefaultAnchors() Anchors {
	return Anchors{
		KeywordSummary:             "keyword-summary",
		AttributeNames:             "attribute-names",
		BuiltinValueNames:          "builtin-value-names",
		InterpolationTypeNames:     "interpolation-type-names",
		InterpolationSamplingNames: "interpolation-sampling-names",
		PredeclaredTypes:           "predeclared-types",
		BuiltinTableClasses:        []string{"data", "builtin"},
		TextureFunctions:           "texture-builtin-functions",
		AtomicFunctions:            "atomic-builtin-functions",
		BuiltinInputsOutputs:       "builtin-inputs-outputs",
		AttributeSuffix:            "-attr",
	}
}

// WithOverrides replaces every anchor that o sets.
func (a Anchors) WithOverrides(o config.Anchors) Anchors {
	set := func(dst *string, v string) {
		if v = strings.TrimPrefix(strings.TrimSpace(v), "#"); v != "" {
			*dst = v
		}
	}
	set(&a.KeywordSummary, o.KeywordSummary)
	set(&a.AttributeNames, o.AttributeNames)
	set(&a.BuiltinValueNames, o.BuiltinValueNames)
	set(&a.InterpolationTypeNames, o.InterpolationTypeNames)
	set(&a.InterpolationSamplingNames, o.InterpolationSamplingNames)
	set(&a.PredeclaredTypes, o.PredeclaredTypes)
	set(&a.TextureFunctions, o.TextureFunctions)
	set(&a.AtomicFunctions, o.AtomicFunctions)
	set(&a.BuiltinInputsOutputs, o.BuiltinInputsOutputs)
	if s := strings.TrimSpace(o.AttributeSuffix); s != "" {
		a.AttributeSuffix = s
	}
	if len(o.BuiltinTableClasses) > 0 {
		a.BuiltinTableClasses = append([]string(nil), o.BuiltinTableClasses...)
	}
	return a
}

// builtinTableQuery renders the classes as a compound class selector.
func (a Anchors) builtinTableQuery() string {
	var sb strings.Builder
	for _, c := range a.BuiltinTableClasses {
		sb.WriteByte('.')
		sb.WriteString(c)
	}
	return sb.String()
}

// Options configures an extraction run.
type Options struct {
	Anchors Anchors
	// Placeholders are names removed from the function catalog.
	Placeholders []string
	// Reporter receives degradations; nil discards them.
	Reporter diag.Reporter
	// Progress receives stage events; nil discards them.
	Progress pipeline.ProgressSink
}

// DefaultOptions returns the anchors and placeholders of the published reference.
func DefaultOptions() Options {
	return Options{
		Anchors:      DefaultAnchors(),
		Placeholders: []string{"S", "T"},
	}
}

// FromConfig builds options from a loaded configuration.
func FromConfig(cfg config.Config) Options {
	opts := DefaultOptions()
	opts.Anchors = opts.Anchors.WithOverrides(cfg.Anchors)
	if cfg.Extract.Placeholders != nil {
		opts.Placeholders = append([]string(nil), cfg.Extract.Placeholders...)
	}
	return opts
}

// Fingerprint identifies the settings that influence the extracted
// catalogs. Reporter and Progress do not take part.
func (o Options) Fingerprint() string {
	a := o.Anchors
	parts := []string{
		a.KeywordSummary, a.AttributeNames, a.BuiltinValueNames,
		a.InterpolationTypeNames, a.InterpolationSamplingNames, a.PredeclaredTypes,
		strings.Join(a.BuiltinTableClasses, "."), a.TextureFunctions, a.AtomicFunctions,
		a.BuiltinInputsOutputs, a.AttributeSuffix,
		strings.Join(o.Placeholders, ","),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:])
}

func (o Options) reporter() diag.Reporter {
	if o.Reporter == nil {
		return diag.NopReporter
	}
	return o.Reporter
}
