// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resolver removes overlaps between accepted candidates so no two
// findings ever cover intersecting spans.
package resolver

import (
	"fmt"
	"sort"

	"tarja-scan/internal/catalog"
	"tarja-scan/internal/detector"
	"tarja-scan/internal/ensemble"
	"tarja-scan/internal/spanindex"
)

// Resolver picks one winner among candidates claiming overlapping spans.
// Ties break by category priority, then fused score, then source rank in
// the order sources were registered, then insertion order.
type Resolver struct {
	sourceRank map[string]int
}

// New builds a resolver. sourceOrder lists source names in registration
// order; earlier sources win ties.
func New(sourceOrder []string) *Resolver {
	rank := make(map[string]int, len(sourceOrder))
	for i, s := range sourceOrder {
		rank[s] = i
	}
	return &Resolver{sourceRank: rank}
}

func (r *Resolver) rankOf(sources []string) int {
	best := len(r.sourceRank)
	for _, s := range sources {
		if i, ok := r.sourceRank[s]; ok && i < best {
			best = i
		}
	}
	return best
}

// Resolve partitions accepted decisions into winners and dismissed losers.
// Winners never overlap each other; every loser records which winner
// displaced it.
func (r *Resolver) Resolve(decisions []ensemble.Decision) ([]ensemble.Decision, []detector.Dismissed) {
	type ranked struct {
		ensemble.Decision
		order int
	}
	pool := make([]ranked, len(decisions))
	for i, d := range decisions {
		pool[i] = ranked{Decision: d, order: i}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		pi, pj := catalog.Priority(pool[i].Candidate.Category), catalog.Priority(pool[j].Candidate.Category)
		if pi != pj {
			return pi > pj
		}
		if pool[i].Score != pool[j].Score {
			return pool[i].Score > pool[j].Score
		}
		ri, rj := r.rankOf(pool[i].Sources), r.rankOf(pool[j].Sources)
		if ri != rj {
			return ri < rj
		}
		return pool[i].order < pool[j].order
	})

	var winners []ensemble.Decision
	var dismissed []detector.Dismissed
	claimed := spanindex.New(nil)

	for _, d := range pool {
		if hits := claimed.Intersecting(d.Candidate.Start, d.Candidate.End); len(hits) > 0 {
			dismissed = append(dismissed, detector.Dismissed{
				Candidate: d.Candidate,
				Stage:     "resolver",
				Reason:    fmt.Sprintf("overlaps higher-priority %s finding", hits[0].Category),
			})
			continue
		}
		claimed.Add(d.Candidate)
		winners = append(winners, d.Decision)
	}

	// Report winners in document order.
	sort.SliceStable(winners, func(i, j int) bool {
		if winners[i].Candidate.Start != winners[j].Candidate.Start {
			return winners[i].Candidate.Start < winners[j].Candidate.Start
		}
		return winners[i].Candidate.End < winners[j].Candidate.End
	})

	return winners, dismissed
}
