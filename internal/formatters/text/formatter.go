// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tarja-scan/internal/formatters"
	"tarja-scan/internal/pipeline"
	"tarja-scan/internal/preprocessors"
)

// Formatter renders results for terminals.
type Formatter struct {
	verdict map[bool]*color.Color
	bands   map[string]*color.Color
}

// NewFormatter creates the text formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		verdict: map[bool]*color.Color{
			true:  color.New(color.FgRed, color.Bold),
			false: color.New(color.FgGreen, color.Bold),
		},
		bands: map[string]*color.Color{
			"high":   color.New(color.FgRed),
			"medium": color.New(color.FgYellow),
			"low":    color.New(color.FgCyan),
		},
	}
}

func (f *Formatter) Name() string { return "text" }

func (f *Formatter) Description() string {
	return "Human-readable colored output"
}

func (f *Formatter) FileExtension() string { return ".txt" }

// Format renders the classification verdict, the findings grouped under
// it, and optionally the dismissal ledger.
func (f *Formatter) Format(doc *preprocessors.Document, result *pipeline.Result, options formatters.Options) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}
	report := formatters.BuildReport(doc, result, options)

	var b strings.Builder
	if report.Document != "" {
		fmt.Fprintf(&b, "Documento: %s\n", report.Document)
	}

	verdict := "SEM DADOS PESSOAIS"
	if report.IsPII {
		verdict = "DADOS PESSOAIS DETECTADOS"
	}
	fmt.Fprintf(&b, "%s\n", f.verdict[report.IsPII].Sprint(verdict))
	fmt.Fprintf(&b, "Motivo: %s\n", report.Reason)

	if len(report.Findings) == 0 {
		b.WriteString("Nenhuma entidade aceita.\n")
	} else {
		fmt.Fprintf(&b, "\nEntidades (%d):\n", len(report.Findings))
		for _, finding := range report.Findings {
			band := f.bands[finding.Confidence]
			fmt.Fprintf(&b, "  %s %-22s [%d:%d] score %.2f",
				band.Sprintf("[%s]", strings.ToUpper(finding.Confidence)),
				finding.Category, finding.Start, finding.End, finding.Score)
			if options.ShowMatch && finding.Text != "" {
				fmt.Fprintf(&b, "  %q", finding.Text)
			}
			if options.Verbose {
				fmt.Fprintf(&b, "  (limiar %.2f", finding.Threshold)
				if finding.Boosted {
					b.WriteString(", contexto")
				}
				if len(finding.Sources) > 0 {
					fmt.Fprintf(&b, ", fontes %s", strings.Join(finding.Sources, "+"))
				}
				b.WriteString(")")
			}
			b.WriteString("\n")
		}
	}

	if options.ShowDismissed && len(report.Dismissed) > 0 {
		fmt.Fprintf(&b, "\nDescartadas (%d):\n", len(report.Dismissed))
		for _, d := range report.Dismissed {
			fmt.Fprintf(&b, "  %-22s [%d:%d] %s: %s\n", d.Category, d.Start, d.End, d.Stage, d.Reason)
		}
	}

	for source, msg := range report.SourceErrors {
		fmt.Fprintf(&b, "\nAviso: fonte %s falhou: %s\n", source, msg)
	}

	if report.RedactedText != "" {
		fmt.Fprintf(&b, "\nTexto tarjado:\n%s\n", report.RedactedText)
	}
	return b.String(), nil
}
