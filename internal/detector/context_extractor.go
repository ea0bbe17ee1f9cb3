// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "strings"

// ContextInfo carries the text surrounding a candidate span, used by
// validators and the ensemble voter to look for supporting keywords.
type ContextInfo struct {
	BeforeText string
	AfterText  string
	FullLine   string
}

// ContextExtractor slices windows of text around candidate spans.
type ContextExtractor struct {
	ContextChars int
}

// NewContextExtractor returns an extractor with the given window size on
// each side of the span. Non-positive sizes fall back to 50 characters.
func NewContextExtractor(contextChars int) *ContextExtractor {
	if contextChars <= 0 {
		contextChars = 50
	}
	return &ContextExtractor{ContextChars: contextChars}
}

// ExtractContext returns the context around the span [start,end) of text.
// Windows are clamped to the document and to the enclosing line for
// FullLine.
func (ce *ContextExtractor) ExtractContext(text string, start, end int) ContextInfo {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return ContextInfo{}
	}

	before := max(0, start-ce.ContextChars)
	after := min(len(text), end+ce.ContextChars)

	info := ContextInfo{
		BeforeText: text[before:start],
		AfterText:  text[end:after],
	}

	lineStart := strings.LastIndexByte(text[:start], '\n') + 1
	lineEnd := strings.IndexByte(text[end:], '\n')
	if lineEnd == -1 {
		lineEnd = len(text)
	} else {
		lineEnd += end
	}
	info.FullLine = text[lineStart:lineEnd]

	return info
}

// Window returns the lowercased text within dist characters on either side
// of [start,end), excluding the span itself. Keyword searches run against
// this window.
func (ce *ContextExtractor) Window(text string, start, end, dist int) string {
	if dist <= 0 {
		dist = ce.ContextChars
	}
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return ""
	}
	before := max(0, start-dist)
	after := min(len(text), end+dist)
	return strings.ToLower(text[before:start] + " " + text[end:after])
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
