// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package placename

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tarja-scan/internal/detector"
)

func TestValidateKnownPlaces(t *testing.T) {
	v := NewValidator()

	tests := []string{
		"São Paulo",
		"Brasília",
		"Minas Gerais",
		"DF",
		"belo horizonte",
	}
	for _, place := range tests {
		t.Run(place, func(t *testing.T) {
			r := v.Validate(place, "")
			assert.Equal(t, detector.VerdictAccept, r.Verdict, "layer=%s reason=%s", r.Layer, r.Reason)
			assert.Equal(t, "gazetteer", r.Layer)
		})
	}
}

func TestValidateUnknownPlaceNeedsAddressContext(t *testing.T) {
	v := NewValidator()

	// Unknown neighborhood with no context: rejected.
	r := v.Validate("Vila Esperança", "moro perto do mercado")
	assert.Equal(t, detector.VerdictReject, r.Verdict)

	// Same span with an address indicator nearby: accepted.
	r = v.Validate("Vila Esperança", "Rua das Flores, bairro")
	assert.Equal(t, detector.VerdictAccept, r.Verdict)
	assert.Equal(t, "context", r.Layer)
}

func TestValidateDenyList(t *testing.T) {
	v := NewValidator()

	tests := []string{
		"Atenciosamente",
		"Detran",
		"Inteligência Artificial",
		"Processo",
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			r := v.Validate(text, "rua avenida cep")
			assert.Equal(t, detector.VerdictReject, r.Verdict, "layer=%s reason=%s", r.Layer, r.Reason)
		})
	}
}

func TestValidateLongSpansRejected(t *testing.T) {
	v := NewValidator()

	r := v.Validate("Programa Nacional de Acesso ao Ensino Técnico", "rua")
	assert.Equal(t, detector.VerdictReject, r.Verdict)
}

func TestValidateAbstractOnlyRejected(t *testing.T) {
	v := NewValidator()

	r := v.Validate("Tecnologia Digital", "rua avenida")
	assert.Equal(t, detector.VerdictReject, r.Verdict)
	assert.Equal(t, "denylist", r.Layer)
}

func TestValidateLowercaseUnknownRejected(t *testing.T) {
	v := NewValidator()

	// Place shape requires leading uppercase for unknown candidates.
	r := v.Validate("vila esperança", "rua das flores")
	assert.Equal(t, detector.VerdictReject, r.Verdict)
}

func TestValidateEmpty(t *testing.T) {
	v := NewValidator()

	r := v.Validate("  ", "")
	assert.Equal(t, detector.VerdictReject, r.Verdict)
	assert.Equal(t, "empty", r.Layer)
}
