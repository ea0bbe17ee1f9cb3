// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"tarja-scan/internal/formatters"
	"tarja-scan/internal/pipeline"
	"tarja-scan/internal/preprocessors"
)

// Formatter renders results as indented JSON.
type Formatter struct{}

// NewFormatter creates the JSON formatter.
func NewFormatter() *Formatter { return &Formatter{} }

func (f *Formatter) Name() string { return "json" }

func (f *Formatter) Description() string {
	return "Machine-readable JSON output"
}

func (f *Formatter) FileExtension() string { return ".json" }

func (f *Formatter) Format(doc *preprocessors.Document, result *pipeline.Result, options formatters.Options) (string, error) {
	report := formatters.BuildReport(doc, result, options)
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	return string(data), nil
}
