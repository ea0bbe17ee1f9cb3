// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// CheckInfo contains standardized information about a detection category
type CheckInfo struct {
	Name                string             // Category name (e.g., "PERSON")
	ShortDescription    string             // Short description for the category list
	DetailedDescription string             // Detailed description of what the check does
	Patterns            []string           // Shapes the check looks for
	SupportedFormats    []string           // Inputs or variants supported by the check
	ConfidenceFactors   []ConfidenceFactor // Factors affecting acceptance
	PositiveKeywords    []string           // Context keywords that lower the threshold
	NegativeKeywords    []string           // Context that argues against a finding
	ConfigurationInfo   string             // How to configure the check
	Examples            []string           // Usage examples
}

// ConfidenceFactor represents a factor that affects acceptance scoring
type ConfidenceFactor struct {
	Name        string
	Description string
	Weight      float64 // Share of the decision, as a percentage
}

// Provider defines the interface for help content providers
type Provider interface {
	GetCheckInfo() CheckInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	noColor   bool
	colors    map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		noColor:   noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"subtitle": color.New(color.FgCyan, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"positive": color.New(color.FgGreen),
			"negative": color.New(color.FgRed),
			"warning":  color.New(color.FgYellow),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetCheckInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("tarja-scan - Brazilian PII Detection and Redaction")
	fmt.Println("==================================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  tarja-scan -file <path> [options]")
	fmt.Println("  tarja-scan -text \"<text>\" [options]")
	fmt.Println("  cat document.txt | tarja-scan [options]")
	fmt.Println("  tarja-scan -server [-port <port>]  # HTTP server mode")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  -file\t<path>\tPath to the input file (text or PDF); omit to read stdin")
	fmt.Fprintln(w, "  -text\t<text>\tAnalyze the given text directly")
	fmt.Fprintln(w, "  -config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  -profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  -list-profiles\t\tList available profiles in config file")
	fmt.Fprintln(w, "  -format\t<format>\tOutput format: text, json, yaml (default: text)")
	fmt.Fprintln(w, "  -categories\t<list>\tComma-separated categories to detect, or 'all' (default: all)")
	fmt.Fprintln(w, "  -confidence\t<levels>\tConfidence bands to display: high,medium,low,all (default: all)")
	fmt.Fprintln(w, "  -redact\t\tProduce a masked copy of the document")
	fmt.Fprintln(w, "  -show-match\t\tDisplay the matched text in findings")
	fmt.Fprintln(w, "  -show-dismissed\t\tInclude candidates dropped by the pipeline")
	fmt.Fprintln(w, "  -verbose\t\tDisplay thresholds and sources for each finding")
	fmt.Fprintln(w, "  -debug\t\tEnable debug logging of the pipeline stages")
	fmt.Fprintln(w, "  -output\t<path>\tWrite the report to a file instead of stdout")
	fmt.Fprintln(w, "  -no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  -server\t\tStart HTTP server mode instead of CLI analysis")
	fmt.Fprintln(w, "  -port\t<port>\tPort for server mode (default: 8080)")
	fmt.Fprintln(w, "  -version\t\tShow version information")
	fmt.Fprintln(w, "  -help\t\tShow this help message")
	fmt.Fprintln(w, "  -help categories\t\tList all detection categories")
	fmt.Fprintln(w, "  -help <category>\t\tShow detailed help for one category")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	fmt.Println("  Basic usage:")
	h.colors["example"].Println("    tarja-scan -file requerimento.txt")
	h.colors["example"].Println("    tarja-scan -text \"CPF: 529.982.247-25\" -format json")
	fmt.Println("  Configuration and profiles:")
	h.colors["example"].Println("    tarja-scan -file processo.pdf -config tarja.yaml -profile strict")
	h.colors["example"].Println("    tarja-scan -list-profiles -config tarja.yaml")
	fmt.Println("  Redaction:")
	h.colors["example"].Println("    tarja-scan -file oficio.txt -redact")
	fmt.Println("  Server mode:")
	h.colors["example"].Println("    tarja-scan -server -port 9000")

	fmt.Println()
	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Default config: ~/.tarja.yaml or ~/.config/tarja-scan/config.yaml")
	fmt.Println("  Project config: tarja.yaml or .tarja-scan.yaml (in current directory)")
}

// ShowChecksHelp displays information about all registered categories
func (h *System) ShowChecksHelp() {
	h.colors["title"].Println("Detection Categories")
	fmt.Println("====================")
	fmt.Println()
	fmt.Println("The following categories have dedicated validation:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  CATEGORY\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  --------\t-----------")

	names := make([]string, 0, len(h.providers))
	byName := make(map[string]CheckInfo)
	for _, provider := range h.providers {
		info := provider.GetCheckInfo()
		names = append(names, info.Name)
		byName[info.Name] = info
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(w, "  ")
		h.colors["emphasis"].Fprintf(w, "%s", name)
		fmt.Fprintf(w, "\t%s\n", byName[name].ShortDescription)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("For detailed information about a category, use:")
	h.colors["example"].Println("  tarja-scan -help <category>")
}

// ShowCheckHelp displays detailed help for a specific category
func (h *System) ShowCheckHelp(checkName string) bool {
	provider, exists := h.providers[strings.ToLower(checkName)]
	if !exists {
		h.colors["negative"].Printf("Error: category '%s' not found.\n", checkName)
		fmt.Println("Use 'tarja-scan -help categories' to see the available categories.")
		return false
	}

	info := provider.GetCheckInfo()

	h.colors["title"].Printf("%s\n", info.Name)
	fmt.Println(strings.Repeat("=", len(info.Name)))
	fmt.Println()
	fmt.Println(info.DetailedDescription)
	fmt.Println()

	if len(info.Patterns) > 0 {
		h.colors["header"].Println("SHAPES DETECTED:")
		for _, pattern := range info.Patterns {
			fmt.Print("  - ")
			h.colors["item"].Println(pattern)
		}
		fmt.Println()
	}

	if len(info.SupportedFormats) > 0 {
		h.colors["header"].Println("SUPPORTED INPUT:")
		for _, format := range info.SupportedFormats {
			fmt.Print("  - ")
			h.colors["item"].Println(format)
		}
		fmt.Println()
	}

	if len(info.ConfidenceFactors) > 0 {
		h.colors["header"].Println("ACCEPTANCE FACTORS:")
		for _, factor := range info.ConfidenceFactors {
			fmt.Print("  - ")
			h.colors["item"].Printf("%s ", factor.Name)
			fmt.Printf("(%.0f%%): %s\n", factor.Weight, factor.Description)
		}
		fmt.Println()
	}

	if len(info.PositiveKeywords) > 0 {
		fmt.Print("  Context keywords that lower the threshold: ")
		h.colors["positive"].Println(strings.Join(info.PositiveKeywords, ", "))
		fmt.Println()
	}

	h.colors["header"].Println("CONFIDENCE BANDS:")
	fmt.Print("- ")
	h.colors["negative"].Print("HIGH")
	fmt.Println(" (score >= 0.85)")
	fmt.Print("- ")
	h.colors["warning"].Print("MEDIUM")
	fmt.Println(" (score >= 0.60)")
	fmt.Print("- ")
	h.colors["positive"].Print("LOW")
	fmt.Println(" (score < 0.60)")
	fmt.Println()

	if info.ConfigurationInfo != "" {
		h.colors["header"].Println("CONFIGURATION:")
		fmt.Println(info.ConfigurationInfo)
		fmt.Println()
	}

	if len(info.Examples) > 0 {
		h.colors["header"].Println("EXAMPLES:")
		for _, example := range info.Examples {
			fmt.Print("  ")
			h.colors["example"].Println(example)
		}
	}

	return true
}
