// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarja-scan/internal/catalog"
	"tarja-scan/internal/formatters"
	"tarja-scan/internal/pipeline"
	"tarja-scan/internal/sources/lexicon"
	"tarja-scan/internal/sources/pattern"
)

func newTestServer() *Server {
	return NewServer("8080", pipeline.Options{Redact: true}, pattern.New(nil), lexicon.New(nil))
}

func postProcess(t *testing.T, server *Server, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/process", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestProcessDetectsPII(t *testing.T) {
	rec := postProcess(t, newTestServer(), map[string]interface{}{
		"text": "CPF do solicitante: 529.982.247-25",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp processResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.IsPII)
	require.Len(t, resp.Findings, 1)
	assert.Equal(t, catalog.CategoryCPF, resp.Findings[0].Category)
	assert.Contains(t, resp.RedactedText, "XXX.XXX.XXX-XX")
	assert.Equal(t, 1, resp.HiddenCount)
	// Matched text stays hidden unless the request asks for it.
	assert.Empty(t, resp.Findings[0].Text)
}

func TestProcessShowMatch(t *testing.T) {
	rec := postProcess(t, newTestServer(), map[string]interface{}{
		"text":       "CPF: 529.982.247-25",
		"show_match": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var report formatters.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Findings, 1)
	assert.Equal(t, "529.982.247-25", report.Findings[0].Text)
}

func TestProcessCategoryRestriction(t *testing.T) {
	rec := postProcess(t, newTestServer(), map[string]interface{}{
		"text":       "CPF 529.982.247-25 e email maria@example.com",
		"categories": []string{catalog.CategoryEmail},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var report formatters.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Findings, 1)
	assert.Equal(t, catalog.CategoryEmail, report.Findings[0].Category)
}

func TestProcessRedactionToggle(t *testing.T) {
	off := false
	rec := postProcess(t, newTestServer(), map[string]interface{}{
		"text":   "CPF: 529.982.247-25",
		"redact": &off,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var report formatters.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.True(t, report.IsPII)
	assert.Empty(t, report.RedactedText)
}

func TestProcessRejectsBadRequests(t *testing.T) {
	server := newTestServer()

	rec := postProcess(t, server, map[string]interface{}{"text": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/process", nil)
	get := httptest.NewRecorder()
	server.Handler().ServeHTTP(get, req)
	assert.Equal(t, http.StatusMethodNotAllowed, get.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/process", bytes.NewReader([]byte("{broken")))
	bad := httptest.NewRecorder()
	server.Handler().ServeHTTP(bad, req)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["version"])
}

func TestCategories(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Categories []categoryInfo `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Categories)

	byName := make(map[string]categoryInfo)
	for _, c := range body.Categories {
		byName[c.Name] = c
	}
	cpf, ok := byName[catalog.CategoryCPF]
	require.True(t, ok)
	assert.Equal(t, "strong", cpf.Tier)
	assert.Equal(t, "XXX.XXX.XXX-XX", cpf.Template)
}
