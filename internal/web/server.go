// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package web exposes the analysis pipeline over HTTP.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sort"
	"time"

	"tarja-scan/internal/catalog"
	"tarja-scan/internal/detector"
	"tarja-scan/internal/formatters"
	"tarja-scan/internal/pipeline"
	"tarja-scan/internal/version"
)

// maxRequestBody caps process requests at 10 MB of JSON.
const maxRequestBody = 10 * 1024 * 1024

// Server serves the JSON analysis API.
type Server struct {
	port     string
	opts     pipeline.Options
	sources  []detector.Source
	analyzer *pipeline.Analyzer
	server   *http.Server
	mux      *http.ServeMux
}

// NewServer builds the API server. opts are the default analysis options;
// requests can narrow categories and toggle redaction per call.
func NewServer(port string, opts pipeline.Options, sources ...detector.Source) *Server {
	s := &Server{
		port:     port,
		opts:     opts,
		sources:  sources,
		analyzer: pipeline.New(opts, sources...),
		mux:      http.NewServeMux(),
	}
	s.mux.HandleFunc("/api/process", s.handleProcess)
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/categories", s.handleCategories)
	return s
}

// Handler returns the route table, mainly for tests.
func (s *Server) Handler() http.Handler { return s.mux }

// Start listens on the configured port, falling back to the next ports in
// the 8080 range when the requested one is taken. Blocks until the server
// stops.
func (s *Server) Start() error {
	var lastError error
	for i := 0; i < 10; i++ {
		port := s.port
		if i > 0 || port == "" {
			port = fmt.Sprintf("%d", 8080+i)
		}

		listener, err := net.Listen("tcp", ":"+port)
		if err != nil {
			lastError = err
			continue
		}
		listener.Close()

		s.server = &http.Server{
			Addr:              ":" + port,
			Handler:           s.mux,
			ReadHeaderTimeout: 15 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		fmt.Printf("tarja-scan API listening on port %s\n", port)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lastError = err
			continue
		}
		return nil
	}
	return fmt.Errorf("no available port in range 8080-8089: %v", lastError)
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// processRequest is the /api/process request body.
type processRequest struct {
	Text       string   `json:"text"`
	Categories []string `json:"categories,omitempty"`
	Redact     *bool    `json:"redact,omitempty"`
	ShowMatch  bool     `json:"show_match,omitempty"`
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "use POST")
		return
	}

	var req processRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	result, err := s.analyzerFor(req).Analyze(r.Context(), req.Text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	report := formatters.BuildReport(nil, result, formatters.Options{
		ShowMatch:     req.ShowMatch,
		Verbose:       true,
		ShowDismissed: true,
	})
	writeJSON(w, http.StatusOK, processResponse{
		Report:      report,
		HiddenCount: len(result.Replacements),
	})
}

// processResponse adds the replacement count to the standard report.
type processResponse struct {
	formatters.Report
	HiddenCount int `json:"hidden_count"`
}

// analyzerFor returns the shared analyzer, or a request-specific one when
// the call narrows categories or toggles redaction.
func (s *Server) analyzerFor(req processRequest) *pipeline.Analyzer {
	if len(req.Categories) == 0 && req.Redact == nil {
		return s.analyzer
	}
	opts := s.opts
	if len(req.Categories) > 0 {
		enabled := make(map[string]bool, len(req.Categories))
		for _, c := range req.Categories {
			enabled[c] = true
		}
		opts.EnabledCategories = enabled
	}
	if req.Redact != nil {
		opts.Redact = *req.Redact
	}
	return pipeline.New(opts, s.sources...)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "use GET")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

// categoryInfo describes one catalog entry for API clients.
type categoryInfo struct {
	Name      string  `json:"name"`
	Tier      string  `json:"tier"`
	Threshold float64 `json:"threshold"`
	Template  string  `json:"template"`
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "use GET")
		return
	}
	names := catalog.Categories()
	sort.Strings(names)
	var categories []categoryInfo
	for _, name := range names {
		entry := catalog.Lookup(name)
		categories = append(categories, categoryInfo{
			Name:      name,
			Tier:      entry.Tier.String(),
			Threshold: entry.Threshold,
			Template:  entry.Template,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
