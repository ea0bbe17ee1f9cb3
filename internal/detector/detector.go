// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"context"
	"fmt"
)

// Candidate represents a single detection proposed by a source: a category
// tag, a half-open [Start,End) offset span into the analyzed text, the exact
// covered substring, and the source's own confidence in [0,1].
type Candidate struct {
	Category string
	Start    int
	End      int
	Text     string
	Score    float64
	Source   string
}

// Intersects reports whether the candidate's span overlaps [start,end).
func (c Candidate) Intersects(start, end int) bool {
	return c.Start < end && start < c.End
}

// Validate checks the structural invariants every candidate must satisfy
// before entering the pipeline. docLen is the length of the analyzed text.
func (c Candidate) Validate(docLen int) error {
	if c.Start < 0 || c.End > docLen {
		return fmt.Errorf("span [%d,%d) out of document bounds (0-%d)", c.Start, c.End, docLen)
	}
	if c.Start >= c.End {
		return fmt.Errorf("empty or inverted span [%d,%d)", c.Start, c.End)
	}
	if c.Score < 0 || c.Score > 1 {
		return fmt.Errorf("score %.3f outside [0,1]", c.Score)
	}
	return nil
}

// Dismissed is a candidate that was considered and rejected, kept for
// auditing and white-box test assertions.
type Dismissed struct {
	Candidate Candidate `json:"candidate"`
	Stage     string    `json:"stage"`
	Reason    string    `json:"reason"`
}

// Source is a detection source adapter. Implementations wrap a pattern
// matcher or an external tagger and normalize its native output into
// candidates. Detect must not fail on benign input: an empty document or a
// document with no matches yields an empty slice and a nil error. enabled,
// when non-nil, restricts the categories the source should report.
type Source interface {
	Name() string
	Detect(ctx context.Context, text string, enabled map[string]bool) ([]Candidate, error)
}

// SourceFunc adapts a plain function to the Source interface, for external
// taggers plugged in by the caller and for test stubs.
type SourceFunc struct {
	SourceName string
	Fn         func(ctx context.Context, text string, enabled map[string]bool) ([]Candidate, error)
}

// Name returns the configured source name.
func (s SourceFunc) Name() string { return s.SourceName }

// Detect invokes the wrapped function.
func (s SourceFunc) Detect(ctx context.Context, text string, enabled map[string]bool) ([]Candidate, error) {
	return s.Fn(ctx, text, enabled)
}

// Verdict is the outcome of one layer of a category validator. Layers run in
// order; the first non-defer verdict wins, and a candidate that defers
// through every layer is rejected.
type Verdict int

const (
	VerdictDefer Verdict = iota
	VerdictAccept
	VerdictReject
)

// String returns the verdict name for logs and test failure messages.
func (v Verdict) String() string {
	switch v {
	case VerdictAccept:
		return "accept"
	case VerdictReject:
		return "reject"
	default:
		return "defer"
	}
}
