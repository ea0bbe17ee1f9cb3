// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ensemble fuses per-source confidence scores into one score per
// candidate and applies category thresholds, lowered when supporting
// keywords appear near the span.
package ensemble

import (
	"strings"

	"tarja-scan/internal/catalog"
	"tarja-scan/internal/config"
	"tarja-scan/internal/detector"
)

// containsWord matches a keyword inside an already lowercased window.
// Substring matching keeps short labels like "tel" effective against
// "tel.:" and "tel:" prefixes.
func containsWord(window, keyword string) bool {
	return strings.Contains(window, keyword)
}

// Decision is the fused outcome for one (span, category) group.
type Decision struct {
	Candidate detector.Candidate `json:"candidate"`
	Score     float64            `json:"score"`
	Threshold float64            `json:"threshold"`
	Boosted   bool               `json:"boosted"`
	Accepted  bool               `json:"accepted"`
	Sources   []string           `json:"sources"`
}

// Voter combines candidates that multiple sources reported for the same
// span and category.
type Voter struct {
	weights     map[string]float64
	overrides   map[string]float64
	boostWindow int
	boostFactor float64
	floor       float64
	extractor   *detector.ContextExtractor
}

// NewVoter builds a voter from pipeline settings.
func NewVoter(pc config.PipelineConfig) *Voter {
	weights := pc.SourceWeights
	if len(weights) == 0 {
		weights = config.DefaultSourceWeights()
	}
	boostFactor := pc.BoostFactor
	if boostFactor <= 0 || boostFactor > 1 {
		boostFactor = 0.9
	}
	boostWindow := pc.BoostWindow
	if boostWindow <= 0 {
		boostWindow = 30
	}
	return &Voter{
		weights:     weights,
		overrides:   pc.ThresholdOverrides,
		boostWindow: boostWindow,
		boostFactor: boostFactor,
		floor:       pc.ThresholdFloor,
		extractor:   detector.NewContextExtractor(boostWindow),
	}
}

// weightOf returns the fusion weight for a source. Sources without a
// configured weight get the smallest configured weight so they can
// contribute but never dominate.
func (v *Voter) weightOf(source string) float64 {
	if w, ok := v.weights[source]; ok {
		return w
	}
	min := 0.0
	for _, w := range v.weights {
		if min == 0 || w < min {
			min = w
		}
	}
	if min == 0 {
		min = 1
	}
	return min
}

// Fuse combines the scores of one group into a single score: a weighted
// average over the sources that actually reported the span. Renormalizing
// over reporting sources keeps a single confident source from being diluted
// by sources that stayed silent.
func (v *Voter) Fuse(group []detector.Candidate) (float64, []string) {
	if len(group) == 0 {
		return 0, nil
	}
	var sum, totalWeight float64
	sources := make([]string, 0, len(group))
	for _, c := range group {
		w := v.weightOf(c.Source)
		sum += c.Score * w
		totalWeight += w
		sources = append(sources, c.Source)
	}
	if totalWeight == 0 {
		return 0, sources
	}
	return sum / totalWeight, sources
}

// ThresholdFor returns the acceptance threshold for category, boosted
// downward when one of the category's keywords appears within the boost
// window around [start,end) in text. The boosted threshold never goes below
// the configured floor.
func (v *Voter) ThresholdFor(category, text string, start, end int) (float64, bool) {
	entry := catalog.Lookup(category)
	threshold := entry.Threshold
	if override, ok := v.overrides[category]; ok {
		threshold = override
	}

	if len(entry.Keywords) == 0 || text == "" {
		return threshold, false
	}
	window := v.extractor.Window(text, start, end, v.boostWindow)
	if window == "" {
		return threshold, false
	}
	for _, kw := range entry.Keywords {
		if containsWord(window, kw) {
			boosted := threshold * v.boostFactor
			if boosted < v.floor {
				boosted = v.floor
			}
			return boosted, true
		}
	}
	return threshold, false
}

// Decide fuses one (span, category) group and applies its threshold. All
// candidates in group must share the same span and category; the first
// candidate provides the span metadata for the fused result.
func (v *Voter) Decide(text string, group []detector.Candidate) Decision {
	if len(group) == 0 {
		return Decision{}
	}
	score, sources := v.Fuse(group)
	threshold, boosted := v.ThresholdFor(group[0].Category, text, group[0].Start, group[0].End)

	fused := group[0]
	fused.Score = score
	fused.Source = "ensemble"

	return Decision{
		Candidate: fused,
		Score:     score,
		Threshold: threshold,
		Boosted:   boosted,
		Accepted:  score >= threshold,
		Sources:   sources,
	}
}

// Band labels a fused score for confidence filtering.
func Band(score float64) string {
	switch {
	case score >= 0.85:
		return "high"
	case score >= 0.60:
		return "medium"
	default:
		return "low"
	}
}
