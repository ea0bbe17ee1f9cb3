// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package classifier decides whether a document's accepted findings add up
// to identifiable personal data. Combination and proximity rules run in
// order; the pipeline fails closed, so a document no rule claims is not PII.
package classifier

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"tarja-scan/internal/catalog"
	"tarja-scan/internal/config"
	"tarja-scan/internal/detector"
	"tarja-scan/internal/ensemble"
)

// Classification is the document-level verdict.
type Classification struct {
	IsPII     bool                 `json:"is_pii"`
	Reason    string               `json:"reason"`
	Relevant  []ensemble.Decision  `json:"relevant_entities"`
	Dismissed []detector.Dismissed `json:"dismissed_entities"`
}

// Classifier applies the combination rules. Windows are configurable
// policy; the defaults come from empirical tuning.
type Classifier struct {
	proximityWindow int
	strictWindow    int
	keywordWindow   int
}

// Labels that mark real personal data near a person anchor.
var piiContextKeywords = []string{
	"cpf", "rg", "telefone", "tel", "email", "e-mail",
	"contato", "solicitante", "requerente", "interessado",
	"cidadão", "cidadã", "contribuinte", "endereço",
	"telefone:", "cpf:", "email:", "nome:", "rg:",
}

// Case-record numbers share the shape of identity documents and must not
// count as personal documents.
var processNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{5}-\d{8,}/\d{4}-\d{2}$`),
}

// New builds a classifier from pipeline settings.
func New(pc config.PipelineConfig) *Classifier {
	c := &Classifier{
		proximityWindow: pc.ProximityWindow,
		strictWindow:    pc.StrictWindow,
		keywordWindow:   pc.KeywordWindow,
	}
	if c.proximityWindow <= 0 {
		c.proximityWindow = 100
	}
	if c.strictWindow <= 0 {
		c.strictWindow = 50
	}
	if c.keywordWindow <= 0 {
		c.keywordWindow = 50
	}
	return c
}

// Classify runs the rules over accepted findings. text is the analyzed
// document, used for keyword proximity.
func (c *Classifier) Classify(text string, accepted []ensemble.Decision) Classification {
	valid, dismissed := c.filterInvalid(accepted)

	if len(valid) == 0 {
		return Classification{
			IsPII:     false,
			Reason:    "no entities detected",
			Dismissed: dismissed,
		}
	}

	byTier := make(map[catalog.Tier][]ensemble.Decision)
	for _, d := range valid {
		tier := catalog.TierOf(d.Candidate.Category)
		byTier[tier] = append(byTier[tier], d)
	}
	anchors := byTier[catalog.TierAnchor]
	strong := byTier[catalog.TierStrong]
	medium := byTier[catalog.TierMedium]

	// Rule 1: a strong identifier alone already identifies someone.
	if len(strong) > 0 {
		return Classification{
			IsPII:     true,
			Reason:    "strong identifier detected: " + categoryList(strong),
			Relevant:  strong,
			Dismissed: append(dismissed, dismissAll(exclude(valid, strong), "not part of identification")...),
		}
	}

	// Rule 2: person anchor plus a medium identifier inside the strict
	// window. The tighter window avoids combining across unrelated
	// sentences.
	if len(anchors) > 0 && len(medium) > 0 {
		if pairs := closePairs(anchors, medium, c.strictWindow); pairs > 0 {
			relevant := append(append([]ensemble.Decision{}, anchors...), medium...)
			return Classification{
				IsPII:     true,
				Reason:    fmt.Sprintf("person anchor + medium identifier within %d chars (%d combinations)", c.strictWindow, pairs),
				Relevant:  relevant,
				Dismissed: append(dismissed, dismissAll(exclude(valid, relevant), "not part of identification")...),
			}
		}
	}

	// Rule 3: person anchor plus several nearby attributes. Needs either
	// two attributes beyond bare locations and job titles, or an explicit
	// PII label near the anchor.
	if len(anchors) > 0 {
		var near []ensemble.Decision
		for _, d := range valid {
			tier := catalog.TierOf(d.Candidate.Category)
			if tier != catalog.TierWeak && tier != catalog.TierMedium {
				continue
			}
			if isNear(anchors, d, c.proximityWindow) {
				near = append(near, d)
			}
		}
		if len(near) >= 3 {
			var specific []ensemble.Decision
			for _, d := range near {
				if d.Candidate.Category != catalog.CategoryLocation && d.Candidate.Category != catalog.CategoryProfession {
					specific = append(specific, d)
				}
			}
			hasKeyword := c.hasPIIKeywordsNear(anchors, text)
			if len(specific) >= 2 || hasKeyword {
				context := specific
				if len(context) == 0 {
					context = near
				}
				relevant := append(append([]ensemble.Decision{}, anchors...), context...)
				return Classification{
					IsPII:     true,
					Reason:    fmt.Sprintf("person anchor + %d contextual attributes", len(context)),
					Relevant:  relevant,
					Dismissed: append(dismissed, dismissAll(exclude(valid, relevant), "not part of identification")...),
				}
			}
		}
	}

	// Rule 4: only weak attributes never identify anyone.
	if len(anchors) == 0 && len(medium) == 0 {
		return Classification{
			IsPII:     false,
			Reason:    "only weak attributes detected: " + categoryList(valid),
			Dismissed: append(dismissed, dismissAll(valid, "weak attribute without anchor")...),
		}
	}

	// Rule 5: no rule claimed the document. Fail closed.
	return Classification{
		IsPII:     false,
		Reason:    "entities without identifiable combination: " + categoryList(valid),
		Dismissed: append(dismissed, dismissAll(valid, "no identifiable combination")...),
	}
}

// filterInvalid drops obvious detection errors: empty spans and case-record
// numbers tagged as identity documents.
func (c *Classifier) filterInvalid(accepted []ensemble.Decision) ([]ensemble.Decision, []detector.Dismissed) {
	var valid []ensemble.Decision
	var dismissed []detector.Dismissed
	for _, d := range accepted {
		if strings.TrimSpace(d.Candidate.Text) == "" {
			dismissed = append(dismissed, detector.Dismissed{
				Candidate: d.Candidate,
				Stage:     "classifier",
				Reason:    "empty span",
			})
			continue
		}
		if d.Candidate.Category == catalog.CategoryRG && isProcessNumber(d.Candidate.Text) {
			dismissed = append(dismissed, detector.Dismissed{
				Candidate: d.Candidate,
				Stage:     "classifier",
				Reason:    "case-record number, not an identity document",
			})
			continue
		}
		valid = append(valid, d)
	}
	return valid, dismissed
}

func isProcessNumber(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, p := range processNumberPatterns {
		if p.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// closePairs counts (a,b) pairs whose span starts differ by at most
// maxDistance.
func closePairs(groupA, groupB []ensemble.Decision, maxDistance int) int {
	pairs := 0
	for _, a := range groupA {
		for _, b := range groupB {
			if abs(a.Candidate.Start-b.Candidate.Start) <= maxDistance {
				pairs++
			}
		}
	}
	return pairs
}

func isNear(anchors []ensemble.Decision, d ensemble.Decision, maxDistance int) bool {
	for _, a := range anchors {
		if abs(a.Candidate.Start-d.Candidate.Start) <= maxDistance {
			return true
		}
	}
	return false
}

// hasPIIKeywordsNear reports whether an explicit PII label appears within
// the keyword window around any anchor span.
func (c *Classifier) hasPIIKeywordsNear(anchors []ensemble.Decision, text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, a := range anchors {
		start := a.Candidate.Start - c.keywordWindow
		if start < 0 {
			start = 0
		}
		end := a.Candidate.End + c.keywordWindow
		if end > len(lower) {
			end = len(lower)
		}
		if start >= end {
			continue
		}
		window := lower[start:end]
		for _, kw := range piiContextKeywords {
			if strings.Contains(window, kw) {
				return true
			}
		}
	}
	return false
}

func categoryList(decisions []ensemble.Decision) string {
	seen := make(map[string]struct{})
	var categories []string
	for _, d := range decisions {
		if _, ok := seen[d.Candidate.Category]; ok {
			continue
		}
		seen[d.Candidate.Category] = struct{}{}
		categories = append(categories, d.Candidate.Category)
	}
	sort.Strings(categories)
	return strings.Join(categories, ", ")
}

func exclude(all, relevant []ensemble.Decision) []ensemble.Decision {
	inRelevant := make(map[detector.Candidate]struct{}, len(relevant))
	for _, d := range relevant {
		inRelevant[d.Candidate] = struct{}{}
	}
	var rest []ensemble.Decision
	for _, d := range all {
		if _, ok := inRelevant[d.Candidate]; !ok {
			rest = append(rest, d)
		}
	}
	return rest
}

func dismissAll(decisions []ensemble.Decision, reason string) []detector.Dismissed {
	out := make([]detector.Dismissed, 0, len(decisions))
	for _, d := range decisions {
		out = append(out, detector.Dismissed{
			Candidate: d.Candidate,
			Stage:     "classifier",
			Reason:    reason,
		})
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
