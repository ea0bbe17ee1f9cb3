// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pattern is the structural detection source: regular expressions
// for Brazilian document formats, backed by checksum validation where the
// format defines one.
package pattern

import (
	"context"
	"regexp"

	"tarja-scan/internal/catalog"
	"tarja-scan/internal/detector"
	"tarja-scan/internal/observability"
)

// SourceName identifies this source in fusion weights and reports.
const SourceName = "pattern"

// recognizer binds one regex to a category, a base score, and an optional
// structural check that must pass for a match to be emitted.
type recognizer struct {
	category string
	re       *regexp.Regexp
	score    float64
	validate func(string) bool
}

// Formatted variants score higher than bare digit runs: the punctuation is
// itself evidence. Checksummed formats reject invalid digits outright
// instead of lowering their score.
var recognizers = []recognizer{
	{catalog.CategoryCPF, regexp.MustCompile(`\b\d{3}\.\d{3}\.\d{3}-\d{2}\b`), 0.95, validCPF},
	{catalog.CategoryCPF, regexp.MustCompile(`\b\d{11}\b`), 0.70, validCPF},
	{catalog.CategoryCNPJ, regexp.MustCompile(`\b\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}\b`), 0.95, validCNPJ},
	{catalog.CategoryCNPJ, regexp.MustCompile(`\b\d{14}\b`), 0.60, validCNPJ},
	{catalog.CategoryRG, regexp.MustCompile(`\b\d{2}\.\d{3}\.\d{3}-\d\b`), 0.90, nil},
	{catalog.CategoryRG, regexp.MustCompile(`\b\d{8,9}\b`), 0.60, nil},
	{catalog.CategoryCEP, regexp.MustCompile(`\b\d{5}-\d{3}\b`), 0.95, nil},
	{catalog.CategoryCEP, regexp.MustCompile(`\b\d{8}\b`), 0.60, nil},
	{catalog.CategoryPhone, regexp.MustCompile(`\(\d{2}\)\s?\d{4,5}-\d{4}`), 0.90, nil},
	{catalog.CategoryGenericPhone, regexp.MustCompile(`\b\d{2}\s?\d{4,5}-\d{4}\b`), 0.85, nil},
	{catalog.CategoryEmail, regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), 0.95, nil},
	{catalog.CategoryCreditCard, regexp.MustCompile(`\b(?:\d[ -]?){12,18}\d\b`), 0.85, validLuhn},
	{catalog.CategoryVehiclePlate, regexp.MustCompile(`\b[A-Z]{3}-?\d{4}\b`), 0.85, nil},
	{catalog.CategoryVehiclePlate, regexp.MustCompile(`\b[A-Z]{3}\d[A-Z]\d{2}\b`), 0.85, nil},
	{catalog.CategoryContractNumber, regexp.MustCompile(`\b\d{5}-\d{8,}/\d{4}-\d{2}\b`), 0.85, nil},
	{catalog.CategoryDateOfBirth, regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`), 0.60, nil},
	{catalog.CategoryAge, regexp.MustCompile(`\b\d{1,3} anos\b`), 0.70, nil},
	{catalog.CategoryBankAccount, regexp.MustCompile(`(?i)\b(?:ag[eê]ncia|conta)\s*:?\s*\d{3,6}(?:-\d)?\b`), 0.70, nil},
	{catalog.CategoryVoterID, regexp.MustCompile(`\b\d{4}[ .]\d{4}[ .]\d{4}\b`), 0.90, validVoterID},
	{catalog.CategoryVoterID, regexp.MustCompile(`\b\d{12}\b`), 0.65, validVoterID},
	{catalog.CategoryDriverLicense, regexp.MustCompile(`(?i)\b(?:cnh|habilita[çc][ãa]o)\s*:?\s*\d{11}\b`), 0.90, nil},
	{catalog.CategoryWorkCard, regexp.MustCompile(`(?i)\b(?:ctps|carteira\s+de\s+trabalho)\s*:?\s*\d{7,8}(?:[/ ]\d{3,4})?\b`), 0.85, nil},
	{catalog.CategoryPisPasep, regexp.MustCompile(`\b\d{3}\.\d{5}\.\d{2}-\d\b`), 0.90, validPIS},
	{catalog.CategoryPisPasep, regexp.MustCompile(`(?i)\b(?:pis|pasep|nis)\s*:?\s*\d{11}\b`), 0.85, validPIS},
	{catalog.CategoryCNS, regexp.MustCompile(`(?i)\b(?:cns|cart[ãa]o\s+sus)\s*:?\s*\d{15}\b`), 0.90, validCNS},
	{catalog.CategoryCNS, regexp.MustCompile(`\b[12789]\d{14}\b`), 0.70, validCNS},
	{catalog.CategoryPassport, regexp.MustCompile(`(?i)\bpassaporte\s*:?\s*[a-z]{2}\d{6}\b`), 0.90, nil},
	{catalog.CategoryPassport, regexp.MustCompile(`\b[A-Z]{2}\d{6}\b`), 0.70, nil},
	{catalog.CategoryReservista, regexp.MustCompile(`(?i)\b(?:certificado\s+de\s+)?reservista\s*:?\s*\d{10,12}\b`), 0.85, nil},
	{catalog.CategoryProfessionalID, regexp.MustCompile(`(?i)\b(?:oab|crm|crea|coren|crp|crc|cro)(?:[/ -][a-z]{2})?\s*:?\s*\d{3,6}\b`), 0.85, nil},
	{catalog.CategoryPixKey, regexp.MustCompile(`\b[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}\b`), 0.90, nil},
	{catalog.CategoryRenavam, regexp.MustCompile(`(?i)\brenavam\s*:?\s*\d{9,11}\b`), 0.90, nil},
	{catalog.CategorySchoolRecord, regexp.MustCompile(`(?i)\bmatr[íi]cula\s+(?:escolar|d[oa]\s+alun[oa])\s*:?\s*\d{5,12}\b`), 0.80, nil},
	{catalog.CategoryBenefitNumber, regexp.MustCompile(`(?i)\b(?:benef[íi]cio|nb)\s*:?\s*\d{10}\b`), 0.85, nil},
	{catalog.CategoryGeolocation, regexp.MustCompile(`-?\d{1,2}\.\d{4,8},\s*-?\d{1,3}\.\d{4,8}`), 0.85, nil},
	{catalog.CategoryUsername, regexp.MustCompile(`(?i)\b(?:usu[áa]rio|login)\s*:\s*[a-z0-9_.@-]{3,}`), 0.75, nil},
	{catalog.CategoryIPAddress, regexp.MustCompile(`(?i)\bip\s*:?\s*(?:\d{1,3}\.){3}\d{1,3}\b`), 0.85, nil},
}

// Source implements detector.Source over the recognizer table.
type Source struct {
	observer *observability.StandardObserver
}

// New returns the pattern source.
func New(observer *observability.StandardObserver) *Source {
	if observer == nil {
		observer = observability.NewStandardObserver(observability.ObservabilityOff, nil)
	}
	return &Source{observer: observer}
}

// Name returns the source identifier used in fusion weights.
func (s *Source) Name() string { return SourceName }

// Detect runs every enabled recognizer over text. Matches failing their
// structural check are dropped. Duplicate (span, category) hits from
// overlapping regexes keep the higher-scoring variant.
func (s *Source) Detect(ctx context.Context, text string, enabled map[string]bool) ([]detector.Candidate, error) {
	done := s.observer.StartTiming("pattern_source", "detect", "")

	type key struct {
		start, end int
		category   string
	}
	best := make(map[key]detector.Candidate)
	var order []key

	for _, r := range recognizers {
		if err := ctx.Err(); err != nil {
			done(false, map[string]interface{}{"error": err.Error()})
			return nil, err
		}
		if enabled != nil && !enabled[r.category] {
			continue
		}
		for _, loc := range r.re.FindAllStringIndex(text, -1) {
			matched := text[loc[0]:loc[1]]
			if r.validate != nil && !r.validate(matched) {
				continue
			}
			k := key{start: loc[0], end: loc[1], category: r.category}
			if prev, ok := best[k]; ok {
				if r.score > prev.Score {
					prev.Score = r.score
					best[k] = prev
				}
				continue
			}
			best[k] = detector.Candidate{
				Category: r.category,
				Start:    loc[0],
				End:      loc[1],
				Text:     matched,
				Score:    r.score,
				Source:   SourceName,
			}
			order = append(order, k)
		}
	}

	candidates := make([]detector.Candidate, 0, len(order))
	for _, k := range order {
		candidates = append(candidates, best[k])
	}

	done(true, map[string]interface{}{"candidates": len(candidates)})
	return candidates, nil
}
