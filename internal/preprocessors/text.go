// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// maxTextSize caps input files at 50 MB. Larger files are almost
// certainly not administrative documents.
const maxTextSize = 50 * 1024 * 1024

// TextPreprocessor reads plain text files. It is the fallback for any
// extension not claimed by another preprocessor.
type TextPreprocessor struct{}

// Name returns the preprocessor identifier.
func (p *TextPreprocessor) Name() string { return "text" }

// Supports accepts everything; the text preprocessor must be last in the
// chain.
func (p *TextPreprocessor) Supports(path string) bool {
	return strings.ToLower(filepath.Ext(path)) != ".pdf"
}

// Process reads the file and cleans its encoding.
func (p *TextPreprocessor) Process(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > maxTextSize {
		return nil, fmt.Errorf("%s exceeds the %d byte input limit", path, maxTextSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &Document{
		Path:   path,
		Format: "text",
		Text:   sanitizeText(string(data)),
	}, nil
}

// sanitizeText normalizes line endings, replaces invalid UTF-8, and drops
// control characters that confuse span arithmetic. Line breaks and tabs
// survive because validators read line context.
func sanitizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == utf8.RuneError:
			b.WriteRune(' ')
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			// Skip other control characters.
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
