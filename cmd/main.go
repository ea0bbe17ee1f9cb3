// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"tarja-scan/internal/config"
	"tarja-scan/internal/formatters"
	jsonformatter "tarja-scan/internal/formatters/json"
	textformatter "tarja-scan/internal/formatters/text"
	yamlformatter "tarja-scan/internal/formatters/yaml"
	"tarja-scan/internal/help"
	"tarja-scan/internal/observability"
	"tarja-scan/internal/pipeline"
	"tarja-scan/internal/preprocessors"
	"tarja-scan/internal/sources/lexicon"
	"tarja-scan/internal/sources/pattern"
	"tarja-scan/internal/validators/personname"
	"tarja-scan/internal/validators/placename"
	"tarja-scan/internal/version"
	"tarja-scan/internal/web"
)

// cliFlags holds the raw command line flag values.
type cliFlags struct {
	inputFile        string
	inputText        string
	configFile       string
	profileName      string
	listProfiles     bool
	format           string
	categories       string
	confidenceLevels string
	redact           bool
	showMatch        bool
	showDismissed    bool
	verbose          bool
	debug            bool
	outputFile       string
	noColor          bool
	serverMode       bool
	port             string
	showVersion      bool
	showHelp         bool
}

// settings is the resolved configuration after merging config file,
// profile, and flags, in that order of increasing precedence.
type settings struct {
	format           string
	categories       string
	confidenceLevels string
	redact           bool
	verbose          bool
	debug            bool
	noColor          bool
	pipeline         config.PipelineConfig
	defaultMask      string
}

func main() {
	flags := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		return
	}

	helpSystem := newHelpSystem(flags.noColor)
	if flags.showHelp {
		runHelp(helpSystem, flag.Args())
		return
	}

	cfg := loadConfiguration(flags.configFile)

	if flags.listProfiles {
		listProfiles(cfg)
		return
	}

	profile := activeProfile(cfg, flags.profileName)
	resolved := resolveSettings(cfg, profile, flags)

	if resolved.noColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	observer := newObserver(resolved)
	opts := pipeline.Options{
		Pipeline:          resolved.pipeline,
		EnabledCategories: parseCategories(resolved.categories),
		Redact:            resolved.redact,
		DefaultMask:       resolved.defaultMask,
		Observer:          observer,
	}

	if flags.serverMode {
		server := web.NewServer(flags.port, opts, pattern.New(observer), lexicon.New(observer))
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	analyzer := pipeline.New(opts, pattern.New(observer), lexicon.New(observer))

	doc, err := readInput(flags, cfg, observer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := analyzer.Analyze(context.Background(), doc.Text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	output, err := renderResult(doc, result, resolved, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutput(flags.outputFile, output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() *cliFlags {
	flags := &cliFlags{}
	flag.StringVar(&flags.inputFile, "file", "", "Path to the input file (text or PDF)")
	flag.StringVar(&flags.inputText, "text", "", "Analyze the given text directly")
	flag.StringVar(&flags.configFile, "config", "", "Path to configuration file (YAML)")
	flag.StringVar(&flags.profileName, "profile", "", "Profile name to use from config file")
	flag.BoolVar(&flags.listProfiles, "list-profiles", false, "List available profiles in config file")
	flag.StringVar(&flags.format, "format", "", "Output format: text, json, yaml (default: text)")
	flag.StringVar(&flags.categories, "categories", "", "Comma-separated categories to detect, or 'all'")
	flag.StringVar(&flags.confidenceLevels, "confidence", "", "Confidence bands to display: high,medium,low,all")
	flag.BoolVar(&flags.redact, "redact", false, "Produce a masked copy of the document")
	flag.BoolVar(&flags.showMatch, "show-match", false, "Display the matched text in findings")
	flag.BoolVar(&flags.showDismissed, "show-dismissed", false, "Include candidates dropped by the pipeline")
	flag.BoolVar(&flags.verbose, "verbose", false, "Display thresholds and sources for each finding")
	flag.BoolVar(&flags.debug, "debug", false, "Enable debug logging of the pipeline stages")
	flag.StringVar(&flags.outputFile, "output", "", "Write the report to a file instead of stdout")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.serverMode, "server", false, "Start HTTP server mode instead of CLI analysis")
	flag.StringVar(&flags.port, "port", "8080", "Port for server mode")
	flag.BoolVar(&flags.showVersion, "version", false, "Show version information")
	flag.BoolVar(&flags.showHelp, "help", false, "Show help information")
	flag.Parse()
	return flags
}

func newHelpSystem(noColor bool) *help.System {
	system := help.NewSystem(noColor)
	system.RegisterProvider(personname.NewValidator())
	system.RegisterProvider(placename.NewValidator())
	return system
}

func runHelp(system *help.System, args []string) {
	if len(args) == 0 {
		system.ShowGeneralHelp()
		return
	}
	topic := args[0]
	if strings.EqualFold(topic, "categories") || strings.EqualFold(topic, "checks") {
		system.ShowChecksHelp()
		return
	}
	if !system.ShowCheckHelp(topic) {
		os.Exit(1)
	}
}

func loadConfiguration(configFile string) *config.Config {
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error loading config file: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default configuration")
		cfg, _ = config.LoadConfig("")
	}
	if err := config.ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func listProfiles(cfg *config.Config) {
	names := cfg.ListProfiles()
	if len(names) == 0 {
		fmt.Println("No profiles defined.")
		return
	}
	fmt.Println("Available profiles:")
	for _, name := range names {
		profile := cfg.GetProfile(name)
		if profile != nil && profile.Description != "" {
			fmt.Printf("  %s - %s\n", name, profile.Description)
		} else {
			fmt.Printf("  %s\n", name)
		}
	}
}

func activeProfile(cfg *config.Config, name string) *config.Profile {
	if name == "" {
		return nil
	}
	profile := cfg.GetProfile(name)
	if profile == nil {
		fmt.Fprintf(os.Stderr, "Error: profile '%s' not found in config\n", name)
		os.Exit(1)
	}
	return profile
}

// resolveSettings merges configuration sources. Flags win over the
// profile, which wins over config defaults.
func resolveSettings(cfg *config.Config, profile *config.Profile, flags *cliFlags) *settings {
	resolved := &settings{
		format:           "text",
		categories:       "all",
		confidenceLevels: "all",
		defaultMask:      cfg.Redaction.DefaultMask,
		pipeline:         cfg.EffectivePipeline(profile),
		redact:           cfg.Redaction.Enabled,
	}

	if cfg.Defaults.Format != "" {
		resolved.format = cfg.Defaults.Format
	}
	if cfg.Defaults.Categories != "" {
		resolved.categories = cfg.Defaults.Categories
	}
	if cfg.Defaults.ConfidenceLevels != "" {
		resolved.confidenceLevels = cfg.Defaults.ConfidenceLevels
	}
	resolved.verbose = cfg.Defaults.Verbose
	resolved.debug = cfg.Defaults.Debug
	resolved.noColor = cfg.Defaults.NoColor

	if profile != nil {
		if profile.Format != "" {
			resolved.format = profile.Format
		}
		if profile.Categories != "" {
			resolved.categories = profile.Categories
		}
		if profile.ConfidenceLevels != "" {
			resolved.confidenceLevels = profile.ConfidenceLevels
		}
		resolved.verbose = profile.Verbose
		resolved.debug = profile.Debug
		resolved.noColor = profile.NoColor
		if profile.Redaction.Enabled {
			resolved.redact = true
			if profile.Redaction.DefaultMask != "" {
				resolved.defaultMask = profile.Redaction.DefaultMask
			}
		}
	}

	if isFlagSet("format") {
		resolved.format = flags.format
	}
	if isFlagSet("categories") {
		resolved.categories = flags.categories
	}
	if isFlagSet("confidence") {
		resolved.confidenceLevels = flags.confidenceLevels
	}
	if isFlagSet("redact") {
		resolved.redact = flags.redact
	}
	if isFlagSet("verbose") {
		resolved.verbose = flags.verbose
	}
	if isFlagSet("debug") {
		resolved.debug = flags.debug
	}
	if isFlagSet("no-color") {
		resolved.noColor = flags.noColor
	}
	return resolved
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func newObserver(resolved *settings) *observability.StandardObserver {
	level := observability.ObservabilityOff
	if resolved.debug {
		level = observability.ObservabilityDebug
	} else if resolved.verbose {
		level = observability.ObservabilityMetrics
	}
	observer := observability.NewStandardObserver(level, os.Stderr)
	if resolved.debug {
		observer.DebugObserver = observability.NewDebugObserver(os.Stderr)
	}
	return observer
}

// parseCategories turns the CSV category list into the enablement map the
// sources consume. "all" or empty enables everything.
func parseCategories(list string) map[string]bool {
	list = strings.TrimSpace(list)
	if list == "" || strings.EqualFold(list, "all") {
		return nil
	}
	enabled := make(map[string]bool)
	for _, category := range strings.Split(list, ",") {
		category = strings.ToUpper(strings.TrimSpace(category))
		if category != "" {
			enabled[category] = true
		}
	}
	return enabled
}

// parseConfidenceLevels turns the CSV band list into the display filter.
// "all" or empty shows everything.
func parseConfidenceLevels(list string) map[string]bool {
	list = strings.TrimSpace(list)
	if list == "" || strings.EqualFold(list, "all") {
		return nil
	}
	levels := make(map[string]bool)
	for _, level := range strings.Split(list, ",") {
		level = strings.ToLower(strings.TrimSpace(level))
		if level != "" {
			levels[level] = true
		}
	}
	return levels
}

// readInput resolves the document from -text, -file, or stdin.
func readInput(flags *cliFlags, cfg *config.Config, observer *observability.StandardObserver) (*preprocessors.Document, error) {
	if flags.inputText != "" {
		return &preprocessors.Document{Format: "text", Text: flags.inputText}, nil
	}

	chain := preprocessors.NewChain(cfg, observer)
	if flags.inputFile != "" {
		return chain.Process(flags.inputFile)
	}

	if isTerminal(os.Stdin) {
		return nil, fmt.Errorf("no input: pass -file, -text, or pipe text on stdin (see -help)")
	}
	return chain.ProcessReader(os.Stdin)
}

func renderResult(doc *preprocessors.Document, result *pipeline.Result, resolved *settings, flags *cliFlags) (string, error) {
	registry := formatters.NewRegistry()
	registry.Register(textformatter.NewFormatter())
	registry.Register(jsonformatter.NewFormatter())
	registry.Register(yamlformatter.NewFormatter())

	formatter, ok := registry.Get(resolved.format)
	if !ok {
		return "", fmt.Errorf("unknown format %q (available: %s)", resolved.format, strings.Join(registry.List(), ", "))
	}

	return formatter.Format(doc, result, formatters.Options{
		ConfidenceLevels: parseConfidenceLevels(resolved.confidenceLevels),
		Verbose:          resolved.verbose,
		NoColor:          resolved.noColor || flags.outputFile != "",
		ShowMatch:        flags.showMatch,
		ShowDismissed:    flags.showDismissed,
	})
}

func writeOutput(path, output string) error {
	if path == "" {
		fmt.Println(output)
		return nil
	}
	if err := os.WriteFile(path, []byte(output), 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	fmt.Printf("Report written to %s\n", path)
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
