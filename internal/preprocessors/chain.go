// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors turns input files into analyzable text. Plain text
// passes through with encoding cleanup; PDFs go through text extraction.
package preprocessors

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"tarja-scan/internal/config"
	"tarja-scan/internal/observability"
)

// Document is the extraction result handed to the analysis pipeline.
type Document struct {
	Path   string `json:"path,omitempty"`
	Format string `json:"format"`
	Text   string `json:"text"`
	Pages  int    `json:"pages,omitempty"`
}

// Preprocessor converts one file format into text.
type Preprocessor interface {
	Name() string
	Supports(path string) bool
	Process(path string) (*Document, error)
}

// Chain routes a file to the first preprocessor that supports it.
type Chain struct {
	preprocessors []Preprocessor
	observer      *observability.StandardObserver
}

// NewChain builds the preprocessor chain from configuration. The plain
// text preprocessor is always present; PDF extraction can be disabled.
func NewChain(cfg *config.Config, observer *observability.StandardObserver) *Chain {
	if observer == nil {
		observer = observability.NewStandardObserver(observability.ObservabilityOff, nil)
	}
	chain := &Chain{observer: observer}

	pdfEnabled := true
	if cfg != nil {
		pdfEnabled = false
		if cfg.Preprocessors.TextExtraction.Enabled {
			for _, t := range cfg.Preprocessors.TextExtraction.Types {
				if strings.EqualFold(t, "pdf") {
					pdfEnabled = true
				}
			}
		}
	}
	if pdfEnabled {
		chain.preprocessors = append(chain.preprocessors, &PDFPreprocessor{})
	}
	chain.preprocessors = append(chain.preprocessors, &TextPreprocessor{})
	return chain
}

// Process extracts text from the file at path.
func (c *Chain) Process(path string) (*Document, error) {
	done := c.observer.StartTiming("preprocessors", "process", filepath.Base(path))
	for _, p := range c.preprocessors {
		if !p.Supports(path) {
			continue
		}
		doc, err := p.Process(path)
		done(err == nil, map[string]interface{}{"preprocessor": p.Name()})
		return doc, err
	}
	done(false, nil)
	return nil, fmt.Errorf("no preprocessor supports %s", path)
}

// ProcessReader wraps already-loaded text, typically stdin.
func (c *Chain) ProcessReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return &Document{Format: "text", Text: sanitizeText(string(data))}, nil
}
