// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package redactor rewrites a document with accepted findings replaced by
// per-category masks.
package redactor

import (
	"sort"
	"strings"

	"tarja-scan/internal/catalog"
	"tarja-scan/internal/ensemble"
	"tarja-scan/internal/observability"
)

// Replacement records one applied substitution, for audit output.
type Replacement struct {
	Category string `json:"category"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Original string `json:"original"`
	Mask     string `json:"mask"`
}

// Redactor splices masks over finding spans.
type Redactor struct {
	defaultMask string
	observer    *observability.StandardObserver
}

// New builds a redactor. defaultMask applies to categories without a
// catalog template; empty means the catalog's generic mask.
func New(defaultMask string) *Redactor {
	if defaultMask == "" {
		defaultMask = catalog.UnknownTemplate
	}
	return &Redactor{
		defaultMask: defaultMask,
		observer:    observability.NewStandardObserver(observability.ObservabilityMetrics, nil),
	}
}

// maskFor picks the replacement text for a category.
func (r *Redactor) maskFor(category string) string {
	if catalog.Known(category) {
		return catalog.Template(category)
	}
	return r.defaultMask
}

// Redact replaces each finding span in text with its category mask and
// returns the rewritten text plus the applied replacements in document
// order. Findings must not overlap; spans out of bounds are skipped.
func (r *Redactor) Redact(text string, findings []ensemble.Decision) (string, []Replacement) {
	if len(findings) == 0 {
		return text, nil
	}

	ordered := make([]ensemble.Decision, len(findings))
	copy(ordered, findings)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Candidate.Start < ordered[j].Candidate.Start
	})

	var replacements []Replacement
	var b strings.Builder
	b.Grow(len(text))
	cursor := 0

	for _, f := range ordered {
		start, end := f.Candidate.Start, f.Candidate.End
		if start < cursor || end > len(text) || start >= end {
			continue
		}
		mask := r.maskFor(f.Candidate.Category)

		b.WriteString(text[cursor:start])
		b.WriteString(mask)
		cursor = end

		replacements = append(replacements, Replacement{
			Category: f.Candidate.Category,
			Start:    start,
			End:      end,
			Original: text[start:end],
			Mask:     mask,
		})
	}
	b.WriteString(text[cursor:])

	return b.String(), replacements
}
