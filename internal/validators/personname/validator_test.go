// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tarja-scan/internal/detector"
)

func TestValidateAcceptsRealNames(t *testing.T) {
	v := NewValidator()

	tests := []string{
		"Maria",
		"João",
		"Antonio Costa",
		"Fátima Lima",
		"Júlio Cesar",
		"Carolina Guimarães Neves",
		"Júlio Cesar da Rosa",
		"Ana Paula de Souza",
	}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			r := v.Validate(name)
			assert.Equal(t, detector.VerdictAccept, r.Verdict, "layer=%s reason=%s", r.Layer, r.Reason)
		})
	}
}

func TestValidateRejectsAdministrativeVocabulary(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		layer string
	}{
		{"Solicito", "denylist"},
		{"Requerente", "denylist"},
		{"Processo", "denylist"},
		{"Atenciosamente", "denylist"},
		{"Escola de Políticas Públicas", "institutional"},
		{"Governo do Distrito Federal", "denylist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := v.Validate(tt.name)
			assert.Equal(t, detector.VerdictReject, r.Verdict)
			assert.Equal(t, tt.layer, r.Layer)
		})
	}
}

func TestValidateStructuralRejections(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		input string
		layer string
	}{
		{"special chars", "maria@example", "special_chars"},
		{"acronym", "ENAP", "denylist"},
		{"unknown acronym", "XPTO", "acronym"},
		{"too many words", "Primeira Segunda Terceira Quarta Quinta Sexta Sétima", "length"},
		{"grammatical phrase", "de que se para nome", "grammatical"},
		{"action verb", "entrar em contato", "action_words"},
		{"leading function word", "Caso Silva", "leading_word"},
		{"lowercase phrase", "em que contenha meu nome", "leading_word"},
		{"mostly lowercase words", "meu nome completo Silva", "lowercase_phrase"},
		{"no uppercase", "fulano beltrano", "capitalization"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := v.Validate(tt.input)
			assert.Equal(t, detector.VerdictReject, r.Verdict, "layer=%s reason=%s", r.Layer, r.Reason)
			assert.Equal(t, tt.layer, r.Layer)
		})
	}
}

func TestValidateUppercaseNameExceptions(t *testing.T) {
	v := NewValidator()

	// JOÃO and JOSÉ are written in caps on forms but are still names.
	assert.Equal(t, detector.VerdictAccept, v.Validate("JOÃO").Verdict)
	assert.Equal(t, detector.VerdictAccept, v.Validate("JOSÉ").Verdict)
}

func TestValidateBareSurnameRejected(t *testing.T) {
	v := NewValidator()

	// "Santos" alone is too ambiguous; with a given name it resolves.
	r := v.Validate("Santos")
	assert.Equal(t, detector.VerdictReject, r.Verdict)
	assert.Equal(t, "bare surname", r.Reason)

	assert.Equal(t, detector.VerdictAccept, v.Validate("Lucas Santos").Verdict)
}

func TestValidateNormalizesWhitespace(t *testing.T) {
	v := NewValidator()

	r := v.Validate("Júlio Cesar\n   da Rosa")
	assert.Equal(t, detector.VerdictAccept, r.Verdict)
}

func TestValidateEmpty(t *testing.T) {
	v := NewValidator()

	r := v.Validate("   ")
	assert.Equal(t, detector.VerdictReject, r.Verdict)
	assert.Equal(t, "empty", r.Layer)
}

func TestValidateMemoizes(t *testing.T) {
	v := NewValidator()

	first := v.Validate("Antonio Costa")
	second := v.Validate("Antonio  Costa")
	assert.Equal(t, first, second)
	assert.Len(t, v.cache, 1)
}
