// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateValidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		docLen    int
		wantErr   string
	}{
		{"valid", Candidate{Start: 0, End: 5, Score: 0.9}, 10, ""},
		{"spans whole document", Candidate{Start: 0, End: 10, Score: 1.0}, 10, ""},
		{"negative start", Candidate{Start: -1, End: 5, Score: 0.5}, 10, "out of document bounds"},
		{"end past document", Candidate{Start: 0, End: 11, Score: 0.5}, 10, "out of document bounds"},
		{"empty span", Candidate{Start: 5, End: 5, Score: 0.5}, 10, "empty or inverted"},
		{"inverted span", Candidate{Start: 7, End: 3, Score: 0.5}, 10, "empty or inverted"},
		{"score above one", Candidate{Start: 0, End: 5, Score: 1.2}, 10, "outside [0,1]"},
		{"negative score", Candidate{Start: 0, End: 5, Score: -0.1}, 10, "outside [0,1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.candidate.Validate(tt.docLen)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCandidateIntersects(t *testing.T) {
	c := Candidate{Start: 10, End: 20}

	assert.True(t, c.Intersects(15, 25))
	assert.True(t, c.Intersects(5, 11))
	assert.True(t, c.Intersects(10, 20))
	assert.True(t, c.Intersects(0, 100))

	// Half-open ranges: touching boundaries do not intersect.
	assert.False(t, c.Intersects(20, 30))
	assert.False(t, c.Intersects(0, 10))
}

func TestSourceFunc(t *testing.T) {
	src := SourceFunc{
		SourceName: "stub",
		Fn: func(ctx context.Context, text string, enabled map[string]bool) ([]Candidate, error) {
			return []Candidate{{Category: "PERSON", Start: 0, End: 4, Text: text[:4], Score: 0.8, Source: "stub"}}, nil
		},
	}

	assert.Equal(t, "stub", src.Name())
	cands, err := src.Detect(context.Background(), "Ana Souza", nil)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, "Ana ", cands[0].Text)
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "accept", VerdictAccept.String())
	assert.Equal(t, "reject", VerdictReject.String())
	assert.Equal(t, "defer", VerdictDefer.String())
}

func TestExtractContext(t *testing.T) {
	ce := NewContextExtractor(10)
	text := "linha um\nCPF: 529.982.247-25 fim\nlinha tres"

	start := 14
	end := 28
	require.Equal(t, "529.982.247-25", text[start:end])

	info := ce.ExtractContext(text, start, end)
	assert.Equal(t, "a um\nCPF: ", info.BeforeText)
	assert.Equal(t, " fim\nlinha", info.AfterText)
	assert.Equal(t, "CPF: 529.982.247-25 fim", info.FullLine)
}

func TestExtractContextClampsToDocument(t *testing.T) {
	ce := NewContextExtractor(50)
	text := "curto"

	info := ce.ExtractContext(text, 0, 5)
	assert.Empty(t, info.BeforeText)
	assert.Empty(t, info.AfterText)
	assert.Equal(t, "curto", info.FullLine)

	assert.Equal(t, ContextInfo{}, ce.ExtractContext(text, 3, 3))
}

func TestWindowExcludesSpan(t *testing.T) {
	ce := NewContextExtractor(50)
	text := "Telefone: (11) 98765-4321 residencial"

	window := ce.Window(text, 10, 25, 12)
	assert.Contains(t, window, "telefone:")
	assert.Contains(t, window, "residencial")
	assert.NotContains(t, window, "98765")
}
