package diagfmt

import (
	"encoding/json"
	"io"
	"sort"

	"wgslspec/internal/diag"
)

const (
	sarifVersion = "2.1.0"
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
)

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool        sarifTool         `json:"tool"`
	Invocations []sarifInvocation `json:"invocations,omitempty"`
	Results     []sarifResult     `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version,omitempty"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifInvocation struct {
	Arguments           []string `json:"arguments,omitempty"`
	ExecutionSuccessful bool     `json:"executionSuccessful"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifLocation struct {
	PhysicalLocation *sarifPhysical `json:"physicalLocation,omitempty"`
	LogicalLocations []sarifLogical `json:"logicalLocations,omitempty"`
}

type sarifPhysical struct {
	ArtifactLocation sarifArtifact `json:"artifactLocation"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

type sarifLogical struct {
	Name               string `json:"name"`
	FullyQualifiedName string `json:"fullyQualifiedName,omitempty"`
	Kind               string `json:"kind"`
}

// Sarif writes the bag as a SARIF v2.1.0 log with one run.
func Sarif(w io.Writer, bag *diag.Bag, meta SarifRunMeta) error {
	run := sarifRun{
		Tool:    sarifTool{Driver: sarifDriver{Name: meta.ToolName, Version: meta.ToolVersion, Rules: []sarifRule{}}},
		Results: []sarifResult{},
	}
	if bag != nil {
		rules := map[diag.Code]bool{}
		for _, d := range bag.Items() {
			rules[d.Code] = true
			run.Results = append(run.Results, sarifResult{
				RuleID:    d.Code.ID(),
				Level:     sarifLevel(d.Severity),
				Message:   sarifMessage{Text: d.Message},
				Locations: sarifLocations(meta.Document, d.Location),
			})
		}
		codes := make([]diag.Code, 0, len(rules))
		for c := range rules {
			codes = append(codes, c)
		}
		sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
		for _, c := range codes {
			run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, sarifRule{
				ID:               c.ID(),
				ShortDescription: sarifMessage{Text: c.Title()},
			})
		}
	}
	if len(meta.InvocationArgs) > 0 {
		run.Invocations = []sarifInvocation{{
			Arguments:           meta.InvocationArgs,
			ExecutionSuccessful: bag == nil || !bag.HasErrors(),
		}}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sarifLog{Version: sarifVersion, Schema: sarifSchema, Runs: []sarifRun{run}})
}

func sarifLevel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "note"
	}
}

func sarifLocations(document string, loc diag.Location) []sarifLocation {
	if document == "" && loc.Anchor == "" && loc.Element == "" {
		return nil
	}
	out := sarifLocation{}
	if document != "" {
		out.PhysicalLocation = &sarifPhysical{ArtifactLocation: sarifArtifact{URI: document}}
	}
	if loc.Anchor != "" || loc.Element != "" {
		name := loc.Element
		if name == "" {
			name = "#" + loc.Anchor
		}
		out.LogicalLocations = []sarifLogical{{Name: name, FullyQualifiedName: loc.String(), Kind: "element"}}
	}
	return []sarifLocation{out}
}
