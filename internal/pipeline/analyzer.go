// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pipeline runs the full analysis chain: detection sources in
// parallel, span grouping and score fusion, category validation, overlap
// resolution, document classification, and optional redaction.
package pipeline

import (
	"context"
	"sort"
	"strings"
	"sync"

	"tarja-scan/internal/catalog"
	"tarja-scan/internal/classifier"
	"tarja-scan/internal/config"
	"tarja-scan/internal/detector"
	"tarja-scan/internal/ensemble"
	"tarja-scan/internal/observability"
	"tarja-scan/internal/redactor"
	"tarja-scan/internal/resolver"
	"tarja-scan/internal/spanindex"
	"tarja-scan/internal/validators/personname"
	"tarja-scan/internal/validators/placename"
)

// Options configure an Analyzer.
type Options struct {
	// Pipeline holds fusion weights, windows, and threshold tuning.
	Pipeline config.PipelineConfig

	// EnabledCategories restricts detection. Nil enables every category.
	EnabledCategories map[string]bool

	// Redact produces a masked copy of the document. Every accepted
	// finding is masked; the document classification does not gate it.
	Redact bool

	// DefaultMask replaces findings of categories without a catalog
	// template.
	DefaultMask string

	// SourceOrder breaks exact ties during overlap resolution. Defaults
	// to pattern, ner, lexicon.
	SourceOrder []string

	// Observer receives timing and metric events. Nil disables them.
	Observer *observability.StandardObserver
}

// Result is the outcome of analyzing one document.
type Result struct {
	// Findings are the accepted, overlap-resolved entities in document
	// order.
	Findings []ensemble.Decision `json:"findings"`

	// Dismissed records every candidate dropped along the way and the
	// stage that dropped it.
	Dismissed []detector.Dismissed `json:"dismissed"`

	// Classification is the document-level personal-data decision.
	Classification classifier.Classification `json:"classification"`

	// RedactedText is the masked document. Empty unless redaction ran.
	RedactedText string `json:"redacted_text,omitempty"`

	// Replacements lists the substitutions redaction made.
	Replacements []redactor.Replacement `json:"replacements,omitempty"`

	// SourceErrors maps failed source names to their error. A failed
	// source degrades coverage but does not abort analysis.
	SourceErrors map[string]string `json:"source_errors,omitempty"`
}

// Analyzer owns the pipeline stages. Safe for concurrent use.
type Analyzer struct {
	sources    []detector.Source
	voter      *ensemble.Voter
	resolver   *resolver.Resolver
	classifier *classifier.Classifier
	redactor   *redactor.Redactor
	person     *personname.Validator
	place      *placename.Validator
	extractor  *detector.ContextExtractor
	observer   *observability.StandardObserver
	opts       Options
}

// New builds an analyzer over the given detection sources.
func New(opts Options, sources ...detector.Source) *Analyzer {
	if opts.Observer == nil {
		opts.Observer = observability.NewStandardObserver(observability.ObservabilityOff, nil)
	}
	if len(opts.SourceOrder) == 0 {
		opts.SourceOrder = []string{"pattern", "ner", "lexicon"}
	}
	return &Analyzer{
		sources:    sources,
		voter:      ensemble.NewVoter(opts.Pipeline),
		resolver:   resolver.New(opts.SourceOrder),
		classifier: classifier.New(opts.Pipeline),
		redactor:   redactor.New(opts.DefaultMask),
		person:     personname.NewValidator(),
		place:      placename.NewValidator(),
		extractor:  detector.NewContextExtractor(0),
		observer:   opts.Observer,
		opts:       opts,
	}
}

// Analyze runs the document through every stage. Analysis is deterministic:
// the same text and configuration always yield the same result.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*Result, error) {
	done := a.observer.StartTiming("pipeline", "analyze", "")
	stepDone := func(success bool, details string) {}
	if dbg := a.observer.DebugObserver; dbg != nil {
		stepDone = dbg.StartStep("pipeline", "analyze")
	}

	result := &Result{}
	candidates, sourceErrs, err := a.collect(ctx, text)
	if err != nil {
		done(false, map[string]interface{}{"error": err.Error()})
		stepDone(false, err.Error())
		return nil, err
	}
	result.SourceErrors = sourceErrs
	a.debugMetric("raw_candidates", len(candidates))

	candidates, malformed := a.screen(text, candidates)
	result.Dismissed = append(result.Dismissed, malformed...)

	accepted, dropped := a.vote(text, candidates)
	result.Dismissed = append(result.Dismissed, dropped...)
	a.debugMetric("accepted_after_fusion", len(accepted))

	accepted, rejected := a.validateNames(text, accepted)
	result.Dismissed = append(result.Dismissed, rejected...)

	winners, overlapped := a.resolver.Resolve(accepted)
	result.Dismissed = append(result.Dismissed, overlapped...)
	result.Findings = winners
	a.debugMetric("findings", len(winners))

	result.Classification = a.classifier.Classify(text, winners)
	result.Dismissed = append(result.Dismissed, result.Classification.Dismissed...)
	if dbg := a.observer.DebugObserver; dbg != nil {
		dbg.LogDetail("classifier", result.Classification.Reason)
	}

	// Every accepted finding is masked. The classification only explains
	// whether the document as a whole identifies someone; a span that
	// survived fusion, validation, and overlap resolution is personal data
	// regardless of that verdict.
	if a.opts.Redact {
		result.RedactedText, result.Replacements = a.redactor.Redact(text, result.Findings)
	}

	done(true, map[string]interface{}{
		"text_length": len(text),
		"findings":    len(result.Findings),
		"is_pii":      result.Classification.IsPII,
	})
	stepDone(true, result.Classification.Reason)
	return result, nil
}

func (a *Analyzer) debugMetric(name string, value int) {
	if dbg := a.observer.DebugObserver; dbg != nil {
		dbg.LogMetric("pipeline", name, value)
	}
}

// collect runs every source concurrently. A source error is recorded, not
// fatal; only context cancellation aborts the analysis.
func (a *Analyzer) collect(ctx context.Context, text string) ([]detector.Candidate, map[string]string, error) {
	type outcome struct {
		candidates []detector.Candidate
		err        error
	}
	outcomes := make([]outcome, len(a.sources))

	var wg sync.WaitGroup
	for i, src := range a.sources {
		wg.Add(1)
		go func(i int, src detector.Source) {
			defer wg.Done()
			cands, err := src.Detect(ctx, text, a.opts.EnabledCategories)
			outcomes[i] = outcome{candidates: cands, err: err}
		}(i, src)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var candidates []detector.Candidate
	var sourceErrs map[string]string
	for i, src := range a.sources {
		if outcomes[i].err != nil {
			if sourceErrs == nil {
				sourceErrs = make(map[string]string)
			}
			sourceErrs[src.Name()] = outcomes[i].err.Error()
			continue
		}
		candidates = append(candidates, outcomes[i].candidates...)
	}
	return candidates, sourceErrs, nil
}

// screen drops candidates that violate structural invariants before they
// can corrupt later stages.
func (a *Analyzer) screen(text string, candidates []detector.Candidate) ([]detector.Candidate, []detector.Dismissed) {
	kept := candidates[:0:0]
	var dismissed []detector.Dismissed
	for _, c := range candidates {
		if err := c.Validate(len(text)); err != nil {
			dismissed = append(dismissed, detector.Dismissed{
				Candidate: c,
				Stage:     "intake",
				Reason:    err.Error(),
			})
			continue
		}
		kept = append(kept, c)
	}
	return kept, dismissed
}

// vote groups candidates by exact span and category and fuses each group
// into one decision. Groups below their threshold are dismissed.
func (a *Analyzer) vote(text string, candidates []detector.Candidate) ([]ensemble.Decision, []detector.Dismissed) {
	idx := spanindex.New(candidates)

	var accepted []ensemble.Decision
	var dismissed []detector.Dismissed
	for _, s := range idx.Spans() {
		byCategory := make(map[string][]detector.Candidate)
		var categories []string
		for _, c := range idx.At(s.Start, s.End) {
			if _, ok := byCategory[c.Category]; !ok {
				categories = append(categories, c.Category)
			}
			byCategory[c.Category] = append(byCategory[c.Category], c)
		}
		sort.Strings(categories)

		for _, category := range categories {
			decision := a.voter.Decide(text, byCategory[category])
			if !decision.Accepted {
				dismissed = append(dismissed, detector.Dismissed{
					Candidate: decision.Candidate,
					Stage:     "ensemble",
					Reason:    "fused score below acceptance threshold",
				})
				continue
			}
			accepted = append(accepted, decision)
		}
	}
	return accepted, dismissed
}

// validateNames gates person and place decisions through their category
// validators. Other categories pass unchanged.
func (a *Analyzer) validateNames(text string, decisions []ensemble.Decision) ([]ensemble.Decision, []detector.Dismissed) {
	kept := decisions[:0:0]
	var dismissed []detector.Dismissed
	for _, d := range decisions {
		c := d.Candidate
		switch c.Category {
		case catalog.CategoryPerson:
			if r := a.person.Validate(c.Text); r.Verdict == detector.VerdictReject {
				dismissed = append(dismissed, detector.Dismissed{
					Candidate: c,
					Stage:     "validation",
					Reason:    r.Layer + ": " + r.Reason,
				})
				continue
			}
		case catalog.CategoryLocation:
			// The indicator may sit inside the span itself, as in
			// "Rua das Flores", so the span text is searched too.
			info := a.extractor.ExtractContext(text, c.Start, c.End)
			surrounding := strings.TrimSpace(info.BeforeText + " " + c.Text + " " + info.AfterText)
			if r := a.place.Validate(c.Text, surrounding); r.Verdict == detector.VerdictReject {
				dismissed = append(dismissed, detector.Dismissed{
					Candidate: c,
					Stage:     "validation",
					Reason:    r.Layer + ": " + r.Reason,
				})
				continue
			}
		}
		kept = append(kept, d)
	}
	return kept, dismissed
}
