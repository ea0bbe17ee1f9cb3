// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package lexicon is the dictionary detection source: capitalized name
// sequences, gazetteer place lookups, and sensitive-attribute phrases.
// It proposes liberally and leaves acceptance to validation downstream.
package lexicon

import (
	"context"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"tarja-scan/internal/catalog"
	"tarja-scan/internal/detector"
	"tarja-scan/internal/gazetteer"
	"tarja-scan/internal/observability"
)

// SourceName identifies this source in fusion weights and reports.
const SourceName = "lexicon"

// placeWindow is the longest gazetteer lookup in tokens. City names like
// "sao bernardo do campo" need four.
const placeWindow = 4

// Source implements detector.Source over name, place, and attribute lexicons.
type Source struct {
	observer *observability.StandardObserver
}

// New returns the lexicon source.
func New(observer *observability.StandardObserver) *Source {
	if observer == nil {
		observer = observability.NewStandardObserver(observability.ObservabilityOff, nil)
	}
	return &Source{observer: observer}
}

// Name returns the source identifier used in fusion weights.
func (s *Source) Name() string { return SourceName }

// Detect proposes PERSON, LOCATION, and sensitive-attribute candidates.
// Results are in document order.
func (s *Source) Detect(ctx context.Context, text string, enabled map[string]bool) ([]detector.Candidate, error) {
	done := s.observer.StartTiming("lexicon_source", "detect", "")
	if err := ctx.Err(); err != nil {
		done(false, map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	allows := func(category string) bool {
		return enabled == nil || enabled[category]
	}

	type key struct {
		start, end int
		category   string
	}
	seen := make(map[key]bool)
	var candidates []detector.Candidate
	emit := func(category string, start, end int, score float64) {
		k := key{start, end, category}
		if seen[k] {
			return
		}
		seen[k] = true
		candidates = append(candidates, detector.Candidate{
			Category: category,
			Start:    start,
			End:      end,
			Text:     text[start:end],
			Score:    score,
			Source:   SourceName,
		})
	}

	runs := tokenRuns(text)
	if allows(catalog.CategoryPerson) {
		for _, run := range runs {
			detectPersons(run, emit)
		}
	}
	if allows(catalog.CategoryLocation) {
		for _, run := range runs {
			detectPlaces(text, run, emit)
		}
	}
	for category, phrases := range attributePhrases {
		if err := ctx.Err(); err != nil {
			done(false, map[string]interface{}{"error": err.Error()})
			return nil, err
		}
		if !allows(category) {
			continue
		}
		detectPhrases(text, category, phrases, emit)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Start != candidates[j].Start {
			return candidates[i].Start < candidates[j].Start
		}
		return candidates[i].End < candidates[j].End
	})

	done(true, map[string]interface{}{"candidates": len(candidates)})
	return candidates, nil
}

// token is a word of the document with its byte span.
type token struct {
	text        string
	start, end  int
	capitalized bool
	connective  bool
	upper       bool
}

// tokenRuns splits the document into words and groups consecutive
// name-shaped words: capitalized words, all-uppercase words, and the
// connectives between them. A run breaks on anything else and on
// non-whitespace separators such as punctuation.
func tokenRuns(text string) [][]token {
	var runs [][]token
	var run []token
	flush := func() {
		// Trailing connectives never join the next name.
		for len(run) > 0 && run[len(run)-1].connective {
			run = run[:len(run)-1]
		}
		if len(run) > 0 {
			runs = append(runs, run)
			run = nil
		}
	}

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsLetter(r) {
			if !unicode.IsSpace(r) {
				flush()
			}
			i += size
			continue
		}
		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if !unicode.IsLetter(r) {
				break
			}
			i += size
		}
		tok := classify(text[start:i], start, i)
		switch {
		case tok.capitalized || tok.upper:
			run = append(run, tok)
		case tok.connective && len(run) > 0:
			run = append(run, tok)
		default:
			flush()
		}
	}
	flush()
	return runs
}

func classify(word string, start, end int) token {
	tok := token{text: word, start: start, end: end}
	first, size := utf8.DecodeRuneInString(word)
	rest := word[size:]
	if unicode.IsUpper(first) {
		lower, upper := true, true
		for _, r := range rest {
			if !unicode.IsLower(r) {
				lower = false
			}
			if !unicode.IsUpper(r) {
				upper = false
			}
		}
		tok.capitalized = rest != "" && lower
		tok.upper = rest != "" && upper
	}
	tok.connective = gazetteer.IsConnective(gazetteer.Normalize(word))
	return tok
}

// detectPersons scores a run of name-shaped words the way capitalized
// sequences are graded: a lone common first name is weak evidence, pairs
// and triples are stronger, and connectives mark full Brazilian names.
func detectPersons(run []token, emit func(category string, start, end int, score float64)) {
	caps, conns := 0, 0
	for _, tok := range run {
		if tok.connective {
			conns++
		} else if tok.capitalized {
			caps++
		} else {
			// All-uppercase words belong to place and acronym handling.
			return
		}
	}
	if caps == 0 || caps > 6 {
		return
	}

	var score float64
	switch {
	case caps == 1 && conns == 0:
		if !gazetteer.IsFirstName(gazetteer.Normalize(run[0].text)) {
			return
		}
		score = 0.50
	case conns > 0:
		score = 0.70
	case caps == 2:
		score = 0.55
	case caps == 3:
		score = 0.60
	default:
		score = 0.65
	}
	emit(catalog.CategoryPerson, run[0].start, run[len(run)-1].end, score)
}

// detectPlaces finds gazetteer cities and states inside a run, longest
// phrase first, plus address phrases led by an indicator word such as
// "Rua" or "Bairro".
func detectPlaces(text string, run []token, emit func(category string, start, end int, score float64)) {
	i := 0
	for i < len(run) {
		tok := run[i]

		if gazetteer.IsLocationIndicator(gazetteer.Normalize(tok.text)) {
			if end, ok := addressEnd(run, i); ok {
				emit(catalog.CategoryLocation, tok.start, run[end].end, 0.70)
				i = end + 1
				continue
			}
		}

		if tok.capitalized || tok.upper {
			if w := matchGazetteer(run, i); w > 0 {
				emit(catalog.CategoryLocation, tok.start, run[i+w-1].end, 0.85)
				i += w
				continue
			}
		}
		i++
	}
}

// matchGazetteer returns the width in tokens of the longest city or state
// name starting at run[i], or zero.
func matchGazetteer(run []token, i int) int {
	for w := placeWindow; w >= 1; w-- {
		if i+w > len(run) || run[i+w-1].connective {
			continue
		}
		phrase := normalizeSpan(run[i : i+w])
		if gazetteer.IsCity(phrase) || gazetteer.IsState(phrase) {
			return w
		}
	}
	return 0
}

// addressEnd extends an address from the indicator at run[i] across up to
// four following name words. Returns the index of the last word taken.
func addressEnd(run []token, i int) (int, bool) {
	end := i
	taken := 0
	for j := i + 1; j < len(run) && taken < 4; j++ {
		if run[j].connective {
			continue
		}
		if !run[j].capitalized && !run[j].upper {
			break
		}
		end = j
		taken++
	}
	return end, end > i
}

func normalizeSpan(toks []token) string {
	parts := make([]string, len(toks))
	for i, tok := range toks {
		parts[i] = gazetteer.Normalize(tok.text)
	}
	return strings.Join(parts, " ")
}

// detectPhrases searches the lowercased document for literal attribute
// phrases, requiring word boundaries on both sides.
func detectPhrases(text, category string, phrases []attributePhrase, emit func(category string, start, end int, score float64)) {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		from := 0
		for {
			idx := strings.Index(lower[from:], p.phrase)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(p.phrase)
			if boundedWord(lower, start, end) {
				emit(category, start, end, p.score)
			}
			from = end
		}
	}
}

func boundedWord(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if unicode.IsLetter(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
