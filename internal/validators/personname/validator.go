// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package personname decides whether a span proposed as a person name is
// actually one. Validation runs as ordered layers: deny lists, structural
// rules, then gazetteer resolution. The first layer returning a non-defer
// verdict wins; a candidate no layer decides is rejected.
package personname

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

type layer struct {
	name string
	fn   func(raw string, words []string) (detector.Verdict, string)
}

// Validator validates person-name candidates. Safe for concurrent use.
type Validator struct {
	layers   []layer
	observer *observability.StandardObserver

	mu    sync.Mutex
	cache map[string]Result
}

// NewValidator creates and returns a new Validator instance.
func NewValidator() *Validator {
	v := &Validator{
		observer: observability.NewStandardObserver(observability.ObservabilityMetrics, nil),
		cache:    make(map[string]Result),
	}
	v.layers = []layer{
		{"denylist", v.checkDenyList},
		{"institutional", v.checkInstitutional},
		{"special_chars", v.checkSpecialChars},
		{"acronym", v.checkAcronym},
		{"length", v.checkLength},
		{"grammatical", v.checkGrammatical},
		{"action_words", v.checkActionWords},
		{"leading_word", v.checkLeadingWord},
		{"lowercase_phrase", v.checkLowercasePhrase},
		{"capitalization", v.checkCapitalization},
		{"gazetteer", v.checkGazetteer},
	}
	return v
}

// Validate decides whether text is a person name. Results are memoized per
// normalized input.
func (v *Validator) Validate(text string) Result {
	normalized := strings.Join(strings.Fields(text), " ")
	if normalized == "" {
		return Result{Verdict: detector.VerdictReject, Layer: "empty", Reason: "empty span"}
	}

	v.mu.Lock()
	if r, ok := v.cache[normalized]; ok {
		v.mu.Unlock()
		return r
	}
	v.mu.Unlock()

	r := v.validate(normalized)

	v.mu.Lock()
	v.cache[normalized] = r
	v.mu.Unlock()
	return r
}

func (v *Validator) validate(normalized string) Result {
	words := strings.Fields(gazetteer.Normalize(normalized))

	for _, l := range v.layers {
		verdict, reason := l.fn(normalized, words)
		if verdict != detector.VerdictDefer {
			return Result{Verdict: verdict, Layer: l.name, Reason: reason}
		}
	}
	// Nothing vouched for the name.
	return Result{Verdict: detector.VerdictReject, Layer: "exhausted", Reason: "no layer accepted"}
}

func (v *Validator) checkDenyList(raw string, words []string) (detector.Verdict, string) {
	full := gazetteer.Normalize(raw)
	if _, ok := neverNames[full]; ok {
		return detector.VerdictReject, "deny-listed term"
	}
	if len(words) == 1 {
		if _, ok := singleWordDeny[words[0]]; ok {
			return detector.VerdictReject, "deny-listed single word"
		}
	}
	for _, w := range words {
		if _, ok := neverNames[w]; ok {
			return detector.VerdictReject, "contains deny-listed word " + w
		}
	}
	return detector.VerdictDefer, ""
}

func (v *Validator) checkInstitutional(raw string, words []string) (detector.Verdict, string) {
	full := gazetteer.Normalize(raw)
	for _, kw := range institutionalKeywords {
		if strings.Contains(full, kw) {
			return detector.VerdictReject, "institutional phrase " + kw
		}
	}
	return detector.VerdictDefer, ""
}

func (v *Validator) checkSpecialChars(raw string, words []string) (detector.Verdict, string) {
	if strings.ContainsAny(raw, `@#$%&*()[]{}/\`) {
		return detector.VerdictReject, "special characters"
	}
	return detector.VerdictDefer, ""
}

// All-uppercase short tokens are acronyms, not names, with the handful of
// names conventionally written in caps excepted.
func (v *Validator) checkAcronym(raw string, words []string) (detector.Verdict, string) {
	if len(words) != 1 {
		return detector.VerdictDefer, ""
	}
	n := len([]rune(raw))
	if raw == strings.ToUpper(raw) && raw != strings.ToLower(raw) && n >= 2 && n <= 8 {
		if _, ok := uppercaseNameExceptions[gazetteer.Normalize(raw)]; !ok {
			return detector.VerdictReject, "acronym"
		}
	}
	return detector.VerdictDefer, ""
}

func (v *Validator) checkLength(raw string, words []string) (detector.Verdict, string) {
	if len(words) > 6 {
		return detector.VerdictReject, "too many words for a name"
	}
	return detector.VerdictDefer, ""
}

func (v *Validator) checkGrammatical(raw string, words []string) (detector.Verdict, string) {
	count := 0
	for _, w := range words {
		if _, ok := grammaticalWords[w]; ok {
			count++
		}
	}
	if float64(count) > float64(len(words))*0.4 {
		return detector.VerdictReject, "mostly grammatical words"
	}
	return detector.VerdictDefer, ""
}

func (v *Validator) checkActionWords(raw string, words []string) (detector.Verdict, string) {
	for _, w := range words {
		if _, ok := actionWords[w]; ok {
			return detector.VerdictReject, "contains verb " + w
		}
	}
	return detector.VerdictDefer, ""
}

func (v *Validator) checkLeadingWord(raw string, words []string) (detector.Verdict, string) {
	if len(words) > 0 {
		if _, ok := leadingWordDeny[words[0]]; ok {
			return detector.VerdictReject, "starts with function word"
		}
	}
	return detector.VerdictDefer, ""
}

// Phrases like "em que contenha meu nome" slip through taggers as names.
// Three or more words that are mostly lowercase are prose, not a name.
func (v *Validator) checkLowercasePhrase(raw string, words []string) (detector.Verdict, string) {
	original := strings.Fields(raw)
	if len(original) < 3 {
		return detector.VerdictDefer, ""
	}
	lower := 0
	for _, w := range original {
		if w == strings.ToLower(w) && !gazetteer.IsConnective(w) {
			lower++
		}
	}
	if float64(lower) > float64(len(original))*0.5 {
		return detector.VerdictReject, "lowercase phrase"
	}
	return detector.VerdictDefer, ""
}

func (v *Validator) checkCapitalization(raw string, words []string) (detector.Verdict, string) {
	for _, r := range raw {
		if unicode.IsUpper(r) {
			return detector.VerdictDefer, ""
		}
	}
	return detector.VerdictReject, "no uppercase letter"
}

// checkGazetteer resolves the surviving candidate against the name lists.
// This is the only accepting layer.
func (v *Validator) checkGazetteer(raw string, words []string) (detector.Verdict, string) {
	switch len(words) {
	case 0:
		return detector.VerdictReject, "empty after normalization"
	case 1:
		w := words[0]
		if gazetteer.IsFirstName(w) {
			return detector.VerdictAccept, "known given name"
		}
		// A bare common surname ("Santos", "Silva") is too ambiguous alone.
		if gazetteer.IsSurname(w) {
			return detector.VerdictReject, "bare surname"
		}
		return detector.VerdictReject, "unknown single word"
	case 2:
		first, second := words[0], words[1]
		if gazetteer.IsFirstName(first) && len(second) >= 3 {
			return detector.VerdictAccept, "given name + component"
		}
		if gazetteer.IsSurname(second) && len(first) >= 3 {
			return detector.VerdictAccept, "component + surname"
		}
		return detector.VerdictReject, "neither component resolves"
	default:
		hasFirst := false
		hasLast := false
		valid := 0
		for _, w := range words {
			if gazetteer.IsConnective(w) {
				continue
			}
			if gazetteer.IsFirstName(w) {
				hasFirst = true
				valid++
			}
			if gazetteer.IsSurname(w) {
				hasLast = true
				valid++
			}
		}
		if (hasFirst && hasLast) || valid >= 2 {
			return detector.VerdictAccept, "compound name resolves"
		}
		return detector.VerdictReject, "too few resolving components"
	}
}
