// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tarja-scan/internal/catalog"
	"tarja-scan/internal/detector"
	"tarja-scan/internal/ensemble"
)

func decision(category string, start, end int, score float64, sources ...string) ensemble.Decision {
	return ensemble.Decision{
		Candidate: detector.Candidate{Category: category, Start: start, End: end, Score: score, Source: "ensemble"},
		Score:     score,
		Accepted:  true,
		Sources:   sources,
	}
}

func TestResolveCategoryPriorityWins(t *testing.T) {
	r := New([]string{"pattern", "ner", "lexicon"})

	// Two detectors fire on the exact same digits: the national-id
	// interpretation outranks the generic phone one despite a lower score.
	winners, dismissed := r.Resolve([]ensemble.Decision{
		decision(catalog.CategoryGenericPhone, 10, 18, 0.5, "pattern"),
		decision(catalog.CategoryRG, 10, 18, 0.6, "pattern"),
	})

	assert.Len(t, winners, 1)
	assert.Equal(t, catalog.CategoryRG, winners[0].Candidate.Category)
	assert.Len(t, dismissed, 1)
	assert.Equal(t, catalog.CategoryGenericPhone, dismissed[0].Candidate.Category)
	assert.Equal(t, "resolver", dismissed[0].Stage)
	assert.Contains(t, dismissed[0].Reason, catalog.CategoryRG)
}

func TestResolveScoreBreaksEqualPriority(t *testing.T) {
	r := New([]string{"pattern", "ner"})

	winners, dismissed := r.Resolve([]ensemble.Decision{
		decision(catalog.CategoryHealthData, 5, 20, 0.70, "ner"),
		decision(catalog.CategoryReligion, 10, 25, 0.90, "ner"),
	})

	assert.Len(t, winners, 1)
	assert.Equal(t, catalog.CategoryReligion, winners[0].Candidate.Category)
	assert.Len(t, dismissed, 1)
}

func TestResolveSourceRankBreaksScoreTie(t *testing.T) {
	r := New([]string{"pattern", "ner"})

	winners, _ := r.Resolve([]ensemble.Decision{
		decision(catalog.CategoryUnion, 5, 20, 0.80, "ner"),
		decision(catalog.CategoryPolitical, 10, 25, 0.80, "pattern"),
	})

	assert.Len(t, winners, 1)
	assert.Equal(t, catalog.CategoryPolitical, winners[0].Candidate.Category)
}

func TestResolveNonOverlappingAllSurvive(t *testing.T) {
	r := New(nil)

	winners, dismissed := r.Resolve([]ensemble.Decision{
		decision(catalog.CategoryPerson, 30, 40, 0.8, "ner"),
		decision(catalog.CategoryCPF, 0, 14, 0.95, "pattern"),
		decision(catalog.CategoryLocation, 50, 60, 0.7, "ner"),
	})

	assert.Len(t, winners, 3)
	assert.Empty(t, dismissed)
	// Document order in the output.
	assert.Equal(t, catalog.CategoryCPF, winners[0].Candidate.Category)
	assert.Equal(t, catalog.CategoryPerson, winners[1].Candidate.Category)
	assert.Equal(t, catalog.CategoryLocation, winners[2].Candidate.Category)
}

func TestResolveAdjacentSpansDoNotConflict(t *testing.T) {
	r := New(nil)

	// [0,10) and [10,20) share a boundary but no characters.
	winners, dismissed := r.Resolve([]ensemble.Decision{
		decision(catalog.CategoryCPF, 0, 10, 0.9, "pattern"),
		decision(catalog.CategoryPhone, 10, 20, 0.9, "pattern"),
	})
	assert.Len(t, winners, 2)
	assert.Empty(t, dismissed)
}

func TestResolveChainOverlap(t *testing.T) {
	r := New(nil)

	// A overlaps B, B overlaps C, A does not overlap C: the winner is
	// picked first, then each remaining candidate is checked against all
	// winners, so A and C can both survive while B is dismissed.
	winners, dismissed := r.Resolve([]ensemble.Decision{
		decision(catalog.CategoryCPF, 0, 10, 0.9, "pattern"),     // A
		decision(catalog.CategoryPhone, 8, 18, 0.9, "pattern"),   // B
		decision(catalog.CategoryEmail, 16, 26, 0.9, "pattern"),  // C
	})

	assert.Len(t, winners, 2)
	assert.Len(t, dismissed, 1)
	assert.Equal(t, catalog.CategoryPhone, dismissed[0].Candidate.Category)
}

func TestResolveEmpty(t *testing.T) {
	r := New(nil)
	winners, dismissed := r.Resolve(nil)
	assert.Empty(t, winners)
	assert.Empty(t, dismissed)
}
