// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarja-scan/internal/catalog"
	"tarja-scan/internal/classifier"
	"tarja-scan/internal/detector"
	"tarja-scan/internal/ensemble"
	"tarja-scan/internal/formatters"
	"tarja-scan/internal/pipeline"
	"tarja-scan/internal/preprocessors"
)

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		Findings: []ensemble.Decision{
			{
				Candidate: detector.Candidate{
					Category: catalog.CategoryCPF, Start: 5, End: 19,
					Text: "529.982.247-25", Score: 0.95,
				},
				Score: 0.95, Threshold: 0.50, Sources: []string{"pattern"}, Accepted: true,
			},
		},
		Classification: classifier.Classification{IsPII: true, Reason: "strong identifier detected: BR_CPF"},
	}
}

func TestFormatVerdictAndFindings(t *testing.T) {
	doc := &preprocessors.Document{Path: "requerimento.txt", Format: "text"}
	out, err := NewFormatter().Format(doc, sampleResult(), formatters.Options{NoColor: true})
	require.NoError(t, err)

	assert.Contains(t, out, "requerimento.txt")
	assert.Contains(t, out, "DADOS PESSOAIS DETECTADOS")
	assert.Contains(t, out, catalog.CategoryCPF)
	assert.Contains(t, out, "[HIGH]")
	// Matched text stays hidden unless asked for.
	assert.NotContains(t, out, "529.982.247-25")
}

func TestFormatShowMatchAndVerbose(t *testing.T) {
	opts := formatters.Options{NoColor: true, ShowMatch: true, Verbose: true}
	out, err := NewFormatter().Format(nil, sampleResult(), opts)
	require.NoError(t, err)

	assert.Contains(t, out, "529.982.247-25")
	assert.Contains(t, out, "limiar 0.50")
	assert.Contains(t, out, "pattern")
}

func TestFormatCleanDocument(t *testing.T) {
	result := &pipeline.Result{
		Classification: classifier.Classification{IsPII: false, Reason: "no entities detected"},
	}
	out, err := NewFormatter().Format(nil, result, formatters.Options{NoColor: true})
	require.NoError(t, err)

	assert.Contains(t, out, "SEM DADOS PESSOAIS")
	assert.Contains(t, out, "Nenhuma entidade aceita.")
}
