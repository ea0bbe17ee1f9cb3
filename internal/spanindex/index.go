// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package spanindex maps spans to the candidates that cover them: exact-span
// buckets for score fusion and intersection queries for overlap resolution.
package spanindex

import (
	"sort"

	"tarja-scan/internal/detector"
)

// Span is a half-open [Start,End) offset range.
type Span struct {
	Start int
	End   int
}

// Index groups candidates by exact span and answers intersection queries.
type Index struct {
	bySpan map[Span][]detector.Candidate
	all    []detector.Candidate
}

// New builds an index over candidates. The input order is preserved within
// each span bucket.
func New(candidates []detector.Candidate) *Index {
	idx := &Index{
		bySpan: make(map[Span][]detector.Candidate, len(candidates)),
		all:    make([]detector.Candidate, 0, len(candidates)),
	}
	for _, c := range candidates {
		idx.Add(c)
	}
	return idx
}

// Add inserts one candidate.
func (idx *Index) Add(c detector.Candidate) {
	s := Span{Start: c.Start, End: c.End}
	idx.bySpan[s] = append(idx.bySpan[s], c)
	idx.all = append(idx.all, c)
}

// At returns the candidates sharing exactly the span [start,end).
func (idx *Index) At(start, end int) []detector.Candidate {
	return idx.bySpan[Span{Start: start, End: end}]
}

// Len returns the number of indexed candidates.
func (idx *Index) Len() int {
	return len(idx.all)
}

// Spans returns the distinct spans in the index, ordered by start then end.
func (idx *Index) Spans() []Span {
	spans := make([]Span, 0, len(idx.bySpan))
	for s := range idx.bySpan {
		spans = append(spans, s)
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})
	return spans
}

// Intersecting returns all candidates whose span overlaps [start,end), in
// insertion order.
func (idx *Index) Intersecting(start, end int) []detector.Candidate {
	var out []detector.Candidate
	for _, c := range idx.all {
		if c.Intersects(start, end) {
			out = append(out, c)
		}
	}
	return out
}
