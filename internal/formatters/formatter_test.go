// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarja-scan/internal/catalog"
	"tarja-scan/internal/classifier"
	"tarja-scan/internal/detector"
	"tarja-scan/internal/ensemble"
	"tarja-scan/internal/pipeline"
	"tarja-scan/internal/preprocessors"
)

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		Findings: []ensemble.Decision{
			{
				Candidate: detector.Candidate{
					Category: catalog.CategoryCPF, Start: 5, End: 19,
					Text: "529.982.247-25", Score: 0.95, Source: "ensemble",
				},
				Score: 0.95, Threshold: 0.50, Sources: []string{"pattern"}, Accepted: true,
			},
			{
				Candidate: detector.Candidate{
					Category: catalog.CategoryPerson, Start: 30, End: 44,
					Text: "Maria da Silva", Score: 0.70, Source: "ensemble",
				},
				Score: 0.70, Threshold: 0.70, Sources: []string{"lexicon"}, Accepted: true,
			},
		},
		Dismissed: []detector.Dismissed{
			{
				Candidate: detector.Candidate{Category: catalog.CategoryCEP, Start: 5, End: 19},
				Stage:     "resolver",
				Reason:    "overlaps higher-priority BR_CPF finding",
			},
		},
		Classification: classifier.Classification{IsPII: true, Reason: "strong identifier detected: BR_CPF"},
	}
}

func TestBuildReportFiltersByConfidence(t *testing.T) {
	report := BuildReport(nil, sampleResult(), Options{
		ConfidenceLevels: map[string]bool{"high": true},
	})

	require.Len(t, report.Findings, 1)
	assert.Equal(t, catalog.CategoryCPF, report.Findings[0].Category)
	assert.Equal(t, "high", report.Findings[0].Confidence)
}

func TestBuildReportHidesMatchTextByDefault(t *testing.T) {
	report := BuildReport(nil, sampleResult(), Options{})

	require.Len(t, report.Findings, 2)
	for _, f := range report.Findings {
		assert.Empty(t, f.Text)
	}

	report = BuildReport(nil, sampleResult(), Options{ShowMatch: true})
	assert.Equal(t, "529.982.247-25", report.Findings[0].Text)
}

func TestBuildReportDismissals(t *testing.T) {
	report := BuildReport(nil, sampleResult(), Options{})
	assert.Empty(t, report.Dismissed)

	report = BuildReport(nil, sampleResult(), Options{ShowDismissed: true})
	require.Len(t, report.Dismissed, 1)
	assert.Equal(t, "resolver", report.Dismissed[0].Stage)
}

func TestBuildReportVerboseDetails(t *testing.T) {
	report := BuildReport(nil, sampleResult(), Options{Verbose: true})

	require.Len(t, report.Findings, 2)
	assert.Equal(t, 0.50, report.Findings[0].Threshold)
	assert.Equal(t, []string{"pattern"}, report.Findings[0].Sources)
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	assert.Empty(t, registry.List())

	registry.Register(stubFormatter{})
	got, ok := registry.Get("stub")
	assert.True(t, ok)
	assert.NotNil(t, got)
	assert.Equal(t, []string{"stub"}, registry.List())

	_, ok = registry.Get("missing")
	assert.False(t, ok)
}

type stubFormatter struct{}

func (stubFormatter) Format(_ *preprocessors.Document, _ *pipeline.Result, _ Options) (string, error) {
	return "", nil
}
func (stubFormatter) Name() string          { return "stub" }
func (stubFormatter) Description() string   { return "stub" }
func (stubFormatter) FileExtension() string { return ".stub" }
