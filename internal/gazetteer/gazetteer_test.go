// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"João", "joao"},
		{"JOSÉ", "jose"},
		{"  São   Paulo ", "sao paulo"},
		{"Júlio Cesar\n   da Rosa", "julio cesar da rosa"},
		{"Conceição", "conceicao"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNameLookups(t *testing.T) {
	assert.True(t, IsFirstName("João"))
	assert.True(t, IsFirstName("maria"))
	assert.True(t, IsFirstName("CONCEIÇÃO"))
	assert.False(t, IsFirstName("silva"))

	assert.True(t, IsSurname("Silva"))
	assert.True(t, IsSurname("Araújo"))
	assert.True(t, IsSurname("Gonçalves"))
	assert.False(t, IsSurname("joão"))

	assert.True(t, IsConnective("da"))
	assert.True(t, IsConnective("DOS"))
	assert.False(t, IsConnective("para"))
}

func TestPlaceLookups(t *testing.T) {
	assert.True(t, IsState("São Paulo"))
	assert.True(t, IsState("df"))
	assert.True(t, IsCity("Brasília"))
	assert.True(t, IsCity("belo horizonte"))
	assert.False(t, IsCity("atlântida"))

	assert.True(t, IsLocationIndicator("Rua"))
	assert.True(t, IsLocationIndicator("CEP"))
	assert.False(t, IsLocationIndicator("contrato"))
}
