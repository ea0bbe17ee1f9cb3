// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPDFPages bounds extraction time on pathological documents.
const maxPDFPages = 50

// PDFPreprocessor extracts text from PDF documents, including AcroForm
// field values, which in administrative forms often carry the requester's
// identity.
type PDFPreprocessor struct{}

// Name returns the preprocessor identifier.
func (p *PDFPreprocessor) Name() string { return "pdf" }

// Supports claims .pdf files.
func (p *PDFPreprocessor) Supports(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".pdf"
}

// Process extracts page text in reading order followed by form fields.
func (p *PDFPreprocessor) Process(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > maxPDFPages {
		pages = maxPDFPages
	}

	var buf bytes.Buffer
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := pageText(page)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}

	if fields := formFields(r); fields != "" {
		buf.WriteString("\n")
		buf.WriteString(fields)
	}

	return &Document{
		Path:   path,
		Format: "pdf",
		Text:   sanitizeText(buf.String()),
		Pages:  pages,
	}, nil
}

// pageText reconstructs a page line by line. Row extraction keeps label
// and value on the same line, which the context-window stages depend on;
// plain text extraction is the fallback.
func pageText(page pdf.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return page.GetPlainText(nil)
	}

	ordered := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			ordered = append(ordered, row)
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		return averageY(ordered[i].Content) < averageY(ordered[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range ordered {
		line := joinRow(row.Content)
		if strings.TrimSpace(line) == "" {
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	var total float64
	for _, e := range elements {
		total += e.Y
	}
	return total / float64(len(elements))
}

// joinRow orders a row's fragments left to right and restores the spaces
// the PDF content stream dropped.
func joinRow(elements []pdf.Text) string {
	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var buf bytes.Buffer
	for i, e := range sorted {
		buf.WriteString(e.S)
		if i == len(sorted)-1 {
			continue
		}
		gap := sorted[i+1].X - (e.X + e.W)
		size := e.FontSize
		if size <= 0 {
			size = 12
		}
		if gap > size*0.2 {
			buf.WriteString(" ")
		}
	}
	return buf.String()
}

// formFields renders AcroForm field names and values as "label: value"
// lines so filled-in forms are analyzed like regular text.
func formFields(r *pdf.Reader) string {
	root := r.Trailer().Key("Root")
	if root.IsNull() {
		return ""
	}
	fields := root.Key("AcroForm").Key("Fields")
	if fields.IsNull() || fields.Kind() != pdf.Array {
		return ""
	}

	var buf bytes.Buffer
	for i := 0; i < fields.Len(); i++ {
		field := fields.Index(i)
		if field.IsNull() || field.Kind() != pdf.Dict {
			continue
		}
		name, value := fieldNameValue(field)
		if name != "" && value != "" {
			fmt.Fprintf(&buf, "%s: %s\n", name, value)
		}
	}
	return buf.String()
}

func fieldNameValue(field pdf.Value) (string, string) {
	var name, value string
	if t := field.Key("T"); !t.IsNull() && t.Kind() == pdf.String {
		name = t.Text()
	}
	for _, key := range []string{"V", "DV"} {
		v := field.Key(key)
		if v.IsNull() {
			continue
		}
		switch v.Kind() {
		case pdf.String:
			value = v.Text()
		case pdf.Name:
			value = v.Name()
		}
		if value != "" {
			break
		}
	}
	return name, value
}
