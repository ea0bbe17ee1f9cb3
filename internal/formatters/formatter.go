// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters renders analysis results for people and machines.
// Concrete formatters live in subpackages and register themselves with a
// Registry at startup.
package formatters

import (
	"sort"

	"tarja-scan/internal/ensemble"
	"tarja-scan/internal/pipeline"
	"tarja-scan/internal/preprocessors"
)

// Options control what a formatter includes in its output.
type Options struct {
	// ConfidenceLevels selects which score bands to display.
	ConfidenceLevels map[string]bool

	// Verbose adds thresholds, sources, and dismissal details.
	Verbose bool

	// NoColor disables terminal colors in formatters that use them.
	NoColor bool

	// ShowMatch includes the matched text itself. Off by default: reports
	// about personal data should not repeat it.
	ShowMatch bool

	// ShowDismissed includes candidates dropped by the pipeline.
	ShowDismissed bool
}

// Formatter renders one analyzed document.
type Formatter interface {
	Format(doc *preprocessors.Document, result *pipeline.Result, options Options) (string, error)
	Name() string
	Description() string
	FileExtension() string
}

// Registry holds the available formatters by name.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// Register adds a formatter, replacing any previous one with the same name.
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns registered formatter names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Report is the format-independent view of a result that the concrete
// formatters render.
type Report struct {
	Document     string      `json:"document,omitempty" yaml:"document,omitempty"`
	Format       string      `json:"format,omitempty" yaml:"format,omitempty"`
	IsPII        bool        `json:"is_pii" yaml:"is_pii"`
	Reason       string      `json:"reason" yaml:"reason"`
	Findings     []Finding   `json:"findings" yaml:"findings"`
	Dismissed    []Dismissal `json:"dismissed,omitempty" yaml:"dismissed,omitempty"`
	RedactedText string      `json:"redacted_text,omitempty" yaml:"redacted_text,omitempty"`
	SourceErrors map[string]string `json:"source_errors,omitempty" yaml:"source_errors,omitempty"`
}

// Finding is one accepted entity in a report.
type Finding struct {
	Category   string   `json:"category" yaml:"category"`
	Start      int      `json:"start" yaml:"start"`
	End        int      `json:"end" yaml:"end"`
	Text       string   `json:"text,omitempty" yaml:"text,omitempty"`
	Score      float64  `json:"score" yaml:"score"`
	Confidence string   `json:"confidence" yaml:"confidence"`
	Threshold  float64  `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	Boosted    bool     `json:"boosted,omitempty" yaml:"boosted,omitempty"`
	Sources    []string `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// Dismissal is one dropped candidate in a report.
type Dismissal struct {
	Category string `json:"category" yaml:"category"`
	Start    int    `json:"start" yaml:"start"`
	End      int    `json:"end" yaml:"end"`
	Stage    string `json:"stage" yaml:"stage"`
	Reason   string `json:"reason" yaml:"reason"`
}

// BuildReport applies the display options to a pipeline result.
func BuildReport(doc *preprocessors.Document, result *pipeline.Result, options Options) Report {
	report := Report{
		IsPII:        result.Classification.IsPII,
		Reason:       result.Classification.Reason,
		RedactedText: result.RedactedText,
		SourceErrors: result.SourceErrors,
	}
	if doc != nil {
		report.Document = doc.Path
		report.Format = doc.Format
	}

	for _, f := range result.Findings {
		band := ensemble.Band(f.Score)
		if options.ConfidenceLevels != nil && !options.ConfidenceLevels[band] {
			continue
		}
		finding := Finding{
			Category:   f.Candidate.Category,
			Start:      f.Candidate.Start,
			End:        f.Candidate.End,
			Score:      f.Score,
			Confidence: band,
		}
		if options.ShowMatch {
			finding.Text = f.Candidate.Text
		}
		if options.Verbose {
			finding.Threshold = f.Threshold
			finding.Boosted = f.Boosted
			finding.Sources = f.Sources
		}
		report.Findings = append(report.Findings, finding)
	}

	if options.ShowDismissed {
		for _, d := range result.Dismissed {
			report.Dismissed = append(report.Dismissed, Dismissal{
				Category: d.Candidate.Category,
				Start:    d.Candidate.Start,
				End:      d.Candidate.End,
				Stage:    d.Stage,
				Reason:   d.Reason,
			})
		}
	}
	return report
}
