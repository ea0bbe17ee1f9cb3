// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package placename decides whether a span proposed as a location is a real
// place. Known states and cities accept directly; otherwise the span needs
// an address indicator in its surrounding context and a plausible place
// shape. Everything else is rejected.
package placename

import (
	"strings"
	"sync"
	"unicode"

	"tarja-scan/internal/detector"
	"tarja-scan/internal/gazetteer"
	"tarja-scan/internal/observability"
)

// Result carries the verdict plus the layer and reason that produced it.
type Result struct {
	Verdict detector.Verdict
	Layer   string
	Reason  string
}

// Validator validates location candidates. Safe for concurrent use.
type Validator struct {
	observer *observability.StandardObserver

	mu    sync.Mutex
	cache map[cacheKey]Result
}

type cacheKey struct {
	text    string
	context string
}

// NewValidator creates and returns a new Validator instance.
func NewValidator() *Validator {
	return &Validator{
		observer: observability.NewStandardObserver(observability.ObservabilityMetrics, nil),
		cache:    make(map[cacheKey]Result),
	}
}

// Validate decides whether text names a place. context is the text
// surrounding the candidate, searched for address indicators. Results are
// memoized.
func (v *Validator) Validate(text, context string) Result {
	normalized := gazetteer.Normalize(text)
	key := cacheKey{text: normalized, context: gazetteer.Normalize(context)}

	v.mu.Lock()
	if r, ok := v.cache[key]; ok {
		v.mu.Unlock()
		return r
	}
	v.mu.Unlock()

	r := v.validate(text, normalized, key.context)

	v.mu.Lock()
	v.cache[key] = r
	v.mu.Unlock()
	return r
}

func (v *Validator) validate(raw, normalized, context string) Result {
	if normalized == "" {
		return Result{Verdict: detector.VerdictReject, Layer: "empty", Reason: "empty span"}
	}
	words := strings.Fields(normalized)

	if _, ok := neverLocations[normalized]; ok {
		return Result{Verdict: detector.VerdictReject, Layer: "denylist", Reason: "deny-listed term"}
	}
	for _, w := range words {
		if _, ok := neverLocations[w]; ok {
			return Result{Verdict: detector.VerdictReject, Layer: "denylist", Reason: "contains deny-listed word " + w}
		}
	}

	// Long spans are concepts or titles, not place names.
	if len(words) > 5 {
		return Result{Verdict: detector.VerdictReject, Layer: "length", Reason: "too many words for a place"}
	}

	abstract := 0
	for _, w := range words {
		if _, ok := abstractWords[w]; ok {
			abstract++
		}
	}
	if abstract == len(words) {
		return Result{Verdict: detector.VerdictReject, Layer: "abstract", Reason: "only abstract words"}
	}

	if gazetteer.IsState(normalized) || gazetteer.IsCity(normalized) {
		return Result{Verdict: detector.VerdictAccept, Layer: "gazetteer", Reason: "known state or city"}
	}

	// Unknown place names need address context nearby and a place shape.
	if hasLocationIndicator(context) && looksLikePlace(raw, words) {
		return Result{Verdict: detector.VerdictAccept, Layer: "context", Reason: "address indicator in context"}
	}

	return Result{Verdict: detector.VerdictReject, Layer: "exhausted", Reason: "not a known place and no address context"}
}

func hasLocationIndicator(context string) bool {
	for _, w := range strings.Fields(context) {
		if gazetteer.IsLocationIndicator(strings.Trim(w, ".,;:()")) {
			return true
		}
	}
	return false
}

// looksLikePlace checks the shape of an unknown candidate: leading
// uppercase and not dominated by deny-listed vocabulary.
func looksLikePlace(raw string, words []string) bool {
	first := []rune(strings.TrimSpace(raw))
	if len(first) == 0 || !unicode.IsUpper(first[0]) {
		return false
	}
	denied := 0
	for _, w := range words {
		if _, ok := neverLocations[w]; ok {
			denied++
		}
	}
	return float64(denied) <= float64(len(words))*0.5
}
