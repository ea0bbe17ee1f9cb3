// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"tarja-scan/internal/formatters"
	"tarja-scan/internal/pipeline"
	"tarja-scan/internal/preprocessors"
)

// Formatter renders results as YAML.
type Formatter struct{}

// NewFormatter creates the YAML formatter.
func NewFormatter() *Formatter { return &Formatter{} }

func (f *Formatter) Name() string { return "yaml" }

func (f *Formatter) Description() string {
	return "Machine-readable YAML output"
}

func (f *Formatter) FileExtension() string { return ".yaml" }

func (f *Formatter) Format(doc *preprocessors.Document, result *pipeline.Result, options formatters.Options) (string, error) {
	report := formatters.BuildReport(doc, result, options)
	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	return string(data), nil
}
