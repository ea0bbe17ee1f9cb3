// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redactor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tarja-scan/internal/catalog"
	"tarja-scan/internal/detector"
	"tarja-scan/internal/ensemble"
)

func finding(category string, start, end int) ensemble.Decision {
	return ensemble.Decision{
		Candidate: detector.Candidate{Category: category, Start: start, End: end},
		Accepted:  true,
	}
}

func TestRedactReplacesWithCategoryMasks(t *testing.T) {
	r := New("")
	text := "Nome: Maria Souza, CPF 123.456.789-00"

	redacted, replacements := r.Redact(text, []ensemble.Decision{
		finding(catalog.CategoryPerson, 6, 17),
		finding(catalog.CategoryCPF, 23, 37),
	})

	assert.Equal(t, "Nome: [NOME], CPF XXX.XXX.XXX-XX", redacted)
	assert.Len(t, replacements, 2)
	assert.Equal(t, "Maria Souza", replacements[0].Original)
	assert.Equal(t, "[NOME]", replacements[0].Mask)
	assert.Equal(t, "123.456.789-00", replacements[1].Original)
}

func TestRedactUnknownCategoryUsesDefault(t *testing.T) {
	r := New("[REMOVIDO]")
	text := "segredo aqui"

	redacted, replacements := r.Redact(text, []ensemble.Decision{
		finding("SOMETHING_NEW", 0, 7),
	})

	assert.Equal(t, "[REMOVIDO] aqui", redacted)
	assert.Equal(t, "[REMOVIDO]", replacements[0].Mask)
}

func TestRedactOutOfOrderFindings(t *testing.T) {
	r := New("")
	text := "a@b.com fala com Maria hoje"

	// Findings arrive out of document order.
	redacted, _ := r.Redact(text, []ensemble.Decision{
		finding(catalog.CategoryPerson, 17, 22),
		finding(catalog.CategoryEmail, 0, 7),
	})

	assert.Equal(t, "[EMAIL] fala com [NOME] hoje", redacted)
}

func TestRedactSkipsOutOfBoundsSpans(t *testing.T) {
	r := New("")
	text := "curto"

	redacted, replacements := r.Redact(text, []ensemble.Decision{
		finding(catalog.CategoryEmail, 2, 99),
	})

	assert.Equal(t, "curto", redacted)
	assert.Empty(t, replacements)
}

func TestRedactNoFindings(t *testing.T) {
	r := New("")
	redacted, replacements := r.Redact("intacto", nil)
	assert.Equal(t, "intacto", redacted)
	assert.Nil(t, replacements)
}
