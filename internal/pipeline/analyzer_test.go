// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarja-scan/internal/catalog"
	"tarja-scan/internal/config"
	"tarja-scan/internal/detector"
	"tarja-scan/internal/sources/lexicon"
	"tarja-scan/internal/sources/pattern"
)

func newAnalyzer(opts Options) *Analyzer {
	return New(opts, pattern.New(nil), lexicon.New(nil))
}

func analyze(t *testing.T, opts Options, text string) *Result {
	t.Helper()
	result, err := newAnalyzer(opts).Analyze(context.Background(), text)
	require.NoError(t, err)
	return result
}

func findingCategories(result *Result) []string {
	var out []string
	for _, f := range result.Findings {
		out = append(out, f.Candidate.Category)
	}
	return out
}

func TestAnalyzeStrongIdentifierAlone(t *testing.T) {
	result := analyze(t, Options{}, "CPF: 529.982.247-25")

	require.Len(t, result.Findings, 1)
	assert.Equal(t, catalog.CategoryCPF, result.Findings[0].Candidate.Category)
	assert.True(t, result.Classification.IsPII)
	assert.Contains(t, result.Classification.Reason, "strong identifier")
}

func TestAnalyzeRedactsEveryAcceptedFinding(t *testing.T) {
	text := "Solicitante: Maria da Silva, CPF: 529.982.247-25"
	result := analyze(t, Options{Redact: true}, text)

	require.True(t, result.Classification.IsPII)
	// The classifier keeps only the strong identifier as relevant, but
	// redaction covers the full accepted set: the name must be masked too.
	assert.Equal(t, "Solicitante: [NOME], CPF: XXX.XXX.XXX-XX", result.RedactedText)
	assert.NotContains(t, result.RedactedText, "Maria da Silva")
	require.Len(t, result.Replacements, 2)
	assert.Equal(t, catalog.CategoryPerson, result.Replacements[0].Category)
	assert.Equal(t, catalog.CategoryCPF, result.Replacements[1].Category)
}

func TestAnalyzeRedactionIgnoresClassificationVerdict(t *testing.T) {
	result := analyze(t, Options{Redact: true}, "reunião marcada em São Paulo")

	// A lone location does not make the document identifying, yet the
	// accepted span is still masked in the redacted copy.
	assert.False(t, result.Classification.IsPII)
	assert.Equal(t, "reunião marcada em [LOCAL]", result.RedactedText)
	require.Len(t, result.Replacements, 1)
	assert.Equal(t, catalog.CategoryLocation, result.Replacements[0].Category)
}

func TestAnalyzeVoterIDIsStrongIdentifier(t *testing.T) {
	result := analyze(t, Options{Redact: true}, "título de eleitor 1023 4567 0183")

	require.Len(t, result.Findings, 1)
	assert.Equal(t, catalog.CategoryVoterID, result.Findings[0].Candidate.Category)
	assert.True(t, result.Classification.IsPII)
	assert.Equal(t, "título de eleitor [TÍTULO_ELEITOR]", result.RedactedText)
}

func TestAnalyzeAnchorWithSingleWeakAttributeIsNotPII(t *testing.T) {
	result := analyze(t, Options{}, "Maria da Silva mora em São Paulo")

	categories := findingCategories(result)
	assert.Contains(t, categories, catalog.CategoryPerson)
	assert.Contains(t, categories, catalog.CategoryLocation)
	assert.False(t, result.Classification.IsPII)
}

func TestAnalyzeValidationRejectsInstitutionalNames(t *testing.T) {
	result := analyze(t, Options{}, "encaminhado à Secretaria de Estado")

	assert.NotContains(t, findingCategories(result), catalog.CategoryPerson)
	var stages []string
	for _, d := range result.Dismissed {
		stages = append(stages, d.Stage)
	}
	assert.Contains(t, stages, "validation")
}

func TestAnalyzeResolvesOverlappingCategories(t *testing.T) {
	result := analyze(t, Options{}, "documento 12345678")

	require.Len(t, result.Findings, 1)
	assert.Equal(t, catalog.CategoryRG, result.Findings[0].Candidate.Category)

	var resolverDismissals int
	for _, d := range result.Dismissed {
		if d.Stage == "resolver" {
			resolverDismissals++
			assert.Equal(t, catalog.CategoryCEP, d.Candidate.Category)
		}
	}
	assert.Equal(t, 1, resolverDismissals)
}

func TestAnalyzeSourceFailureDegrades(t *testing.T) {
	flaky := detector.SourceFunc{
		SourceName: "flaky",
		Fn: func(ctx context.Context, text string, enabled map[string]bool) ([]detector.Candidate, error) {
			return nil, errors.New("backend unavailable")
		},
	}
	analyzer := New(Options{}, pattern.New(nil), flaky)

	result, err := analyzer.Analyze(context.Background(), "CPF: 529.982.247-25")
	require.NoError(t, err)
	assert.Equal(t, "backend unavailable", result.SourceErrors["flaky"])
	require.Len(t, result.Findings, 1)
	assert.True(t, result.Classification.IsPII)
}

func TestAnalyzeDropsMalformedCandidates(t *testing.T) {
	broken := detector.SourceFunc{
		SourceName: "broken",
		Fn: func(ctx context.Context, text string, enabled map[string]bool) ([]detector.Candidate, error) {
			return []detector.Candidate{
				{Category: catalog.CategoryCPF, Start: 9, End: 2, Text: "x", Score: 0.9, Source: "broken"},
				{Category: catalog.CategoryEmail, Start: 0, End: 9999, Text: "y", Score: 0.9, Source: "broken"},
			}, nil
		},
	}
	analyzer := New(Options{}, broken)

	result, err := analyzer.Analyze(context.Background(), "texto sem dados")
	require.NoError(t, err)
	assert.Empty(t, result.Findings)

	var intake int
	for _, d := range result.Dismissed {
		if d.Stage == "intake" {
			intake++
		}
	}
	assert.Equal(t, 2, intake)
}

func TestAnalyzeHonorsEnabledCategories(t *testing.T) {
	opts := Options{EnabledCategories: map[string]bool{catalog.CategoryEmail: true}}
	result := analyze(t, opts, "CPF 529.982.247-25 e email maria@example.com")

	require.Len(t, result.Findings, 1)
	assert.Equal(t, catalog.CategoryEmail, result.Findings[0].Candidate.Category)
}

func TestAnalyzeDeterministic(t *testing.T) {
	text := "Solicitante: Maria da Silva, CPF 529.982.247-25, mora em Curitiba"
	analyzer := newAnalyzer(Options{})

	first, err := analyzer.Analyze(context.Background(), text)
	require.NoError(t, err)
	second, err := analyzer.Analyze(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, first.Findings, second.Findings)
	assert.Equal(t, first.Classification, second.Classification)
	assert.Equal(t, first.Dismissed, second.Dismissed)
}

func TestAnalyzeEmptyText(t *testing.T) {
	result := analyze(t, Options{}, "")

	assert.Empty(t, result.Findings)
	assert.False(t, result.Classification.IsPII)
}

func TestAnalyzeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newAnalyzer(Options{}).Analyze(ctx, "CPF 529.982.247-25")
	assert.Error(t, err)
}

func TestAnalyzeThresholdOverrides(t *testing.T) {
	// Raising the person threshold above the lexicon's best score turns
	// every name candidate away at the ensemble stage.
	opts := Options{Pipeline: config.PipelineConfig{
		ThresholdOverrides: map[string]float64{catalog.CategoryPerson: 0.99},
		BoostFactor:        1.0,
	}}
	result := analyze(t, opts, "Solicitante: Maria da Silva")

	assert.NotContains(t, findingCategories(result), catalog.CategoryPerson)
	var ensembleDismissals int
	for _, d := range result.Dismissed {
		if d.Stage == "ensemble" && d.Candidate.Category == catalog.CategoryPerson {
			ensembleDismissals++
		}
	}
	assert.Equal(t, 1, ensembleDismissals)
}

func TestAnalyzeRedactedTextPreservesSurroundings(t *testing.T) {
	text := "Contato: joao.souza@example.com para dúvidas"
	result := analyze(t, Options{Redact: true}, text)

	require.True(t, result.Classification.IsPII)
	assert.Equal(t, "Contato: [EMAIL] para dúvidas", result.RedactedText)
	require.Len(t, result.Replacements, 1)
	assert.True(t, strings.HasPrefix(result.Replacements[0].Original, "joao.souza@"))
}