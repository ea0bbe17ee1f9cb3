// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format           string   `yaml:"format"`
		ConfidenceLevels string   `yaml:"confidence_levels"`
		Categories       string   `yaml:"categories"`
		Verbose          bool     `yaml:"verbose"`
		Debug            bool     `yaml:"debug"`
		NoColor          bool     `yaml:"no_color"`
		ExcludePatterns  []string `yaml:"exclude_patterns"`
	} `yaml:"defaults"`

	// Pipeline tuning. Window sizes and thresholds are policy, not
	// contract: they were set by empirical tuning and can be overridden.
	Pipeline PipelineConfig `yaml:"pipeline"`

	// Preprocessor configurations
	Preprocessors struct {
		TextExtraction struct {
			Enabled bool     `yaml:"enabled"`
			Types   []string `yaml:"types"`
		} `yaml:"text_extraction"`
	} `yaml:"preprocessors"`

	// Redaction configurations
	Redaction struct {
		Enabled     bool   `yaml:"enabled"`
		DefaultMask string `yaml:"default_mask"`
	} `yaml:"redaction"`

	// Profiles for different analysis scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// PipelineConfig groups the tunable numeric policy of the analysis
// pipeline: per-source fusion weights, proximity windows, and threshold
// adjustments.
type PipelineConfig struct {
	// SourceWeights maps source name to its fusion weight. Weights are
	// renormalized over the sources that actually reported a span.
	SourceWeights map[string]float64 `yaml:"source_weights"`

	// ProximityWindow bounds anchor/attribute combination in document
	// classification.
	ProximityWindow int `yaml:"proximity_window"`

	// StrictWindow bounds anchor + medium-identifier combination.
	StrictWindow int `yaml:"strict_window"`

	// KeywordWindow bounds the search for PII-indicating labels around an
	// anchor.
	KeywordWindow int `yaml:"keyword_window"`

	// BoostWindow bounds the per-category context keyword search used to
	// lower acceptance thresholds.
	BoostWindow int `yaml:"boost_window"`

	// BoostFactor multiplies a category threshold when a context keyword
	// is found near the candidate. Must be in (0,1].
	BoostFactor float64 `yaml:"boost_factor"`

	// ThresholdFloor is the lowest any boosted threshold may go.
	ThresholdFloor float64 `yaml:"threshold_floor"`

	// ThresholdOverrides replaces catalog base thresholds per category.
	ThresholdOverrides map[string]float64 `yaml:"threshold_overrides"`
}

// Profile represents an analysis profile with specific settings
type Profile struct {
	Format           string             `yaml:"format"`
	ConfidenceLevels string             `yaml:"confidence_levels"`
	Categories       string             `yaml:"categories"`
	Verbose          bool               `yaml:"verbose"`
	Debug            bool               `yaml:"debug"`
	NoColor          bool               `yaml:"no_color"`
	ExcludePatterns  []string           `yaml:"exclude_patterns"`
	Description      string             `yaml:"description"`
	Pipeline         *PipelineConfig    `yaml:"pipeline,omitempty"`
	Redaction        struct {
		Enabled     bool   `yaml:"enabled"`
		DefaultMask string `yaml:"default_mask"`
	} `yaml:"redaction"`
}

// DefaultSourceWeights apply when the config file does not set weights.
// Pattern recognizers are the most precise source, the lexicon tagger the
// least.
func DefaultSourceWeights() map[string]float64 {
	return map[string]float64{
		"pattern": 0.5,
		"ner":     0.3,
		"lexicon": 0.2,
	}
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.ConfidenceLevels = "all"
	config.Defaults.Categories = "all"
	config.Defaults.Verbose = false
	config.Defaults.Debug = false
	config.Defaults.NoColor = false

	config.Pipeline = PipelineConfig{
		SourceWeights:   DefaultSourceWeights(),
		ProximityWindow: 100,
		StrictWindow:    50,
		KeywordWindow:   50,
		BoostWindow:     30,
		BoostFactor:     0.9,
		ThresholdFloor:  0.30,
	}

	// Set default preprocessor values
	config.Preprocessors.TextExtraction.Enabled = true
	config.Preprocessors.TextExtraction.Types = []string{"pdf"}

	// Set default redaction values
	config.Redaction.Enabled = false
	config.Redaction.DefaultMask = "[OCULTO]"

	// Add a default profile tuned for automated pipelines
	config.Profiles["strict"] = Profile{
		Format:           "text",
		ConfidenceLevels: "high,medium",
		Categories:       "all",
		NoColor:          true,
		Description:      "Conservative settings for automated pipelines: only medium and high confidence findings",
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	// Read config file
	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Store default values before unmarshaling
	defaultTextExtractionEnabled := config.Preprocessors.TextExtraction.Enabled

	// Parse YAML
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Restore defaults if not explicitly set in config file
	// This handles the case where YAML unmarshaling sets bool fields to false
	// when they're not present in the config file
	if !containsField(data, "preprocessors", "text_extraction", "enabled") {
		config.Preprocessors.TextExtraction.Enabled = defaultTextExtractionEnabled
	}

	// Validate the configuration
	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first - prioritize config.yaml
	if fileExists("config.yaml") {
		return "config.yaml"
	}
	if fileExists("tarja.yaml") {
		return "tarja.yaml"
	}
	if fileExists("tarja.yml") {
		return "tarja.yml"
	}

	// Check for .tarja-scan.yaml in current directory (project-specific config)
	if fileExists(".tarja-scan.yaml") {
		return ".tarja-scan.yaml"
	}
	if fileExists(".tarja-scan.yml") {
		return ".tarja-scan.yml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	// Check legacy locations in home directory
	homeConfig := filepath.Join(home, ".tarja.yaml")
	if fileExists(homeConfig) {
		return homeConfig
	}
	homeConfig = filepath.Join(home, ".tarja.yml")
	if fileExists(homeConfig) {
		return homeConfig
	}

	// Check XDG config directory
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	xdgConfigFile := filepath.Join(xdgConfig, "tarja-scan", "config.yaml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}
	xdgConfigFile = filepath.Join(xdgConfig, "tarja-scan", "config.yml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns a list of available profile names
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// EffectivePipeline returns the pipeline settings for a profile, falling
// back to the global pipeline section for anything the profile leaves unset.
func (c *Config) EffectivePipeline(profile *Profile) PipelineConfig {
	pc := c.Pipeline
	if profile == nil || profile.Pipeline == nil {
		return pc
	}
	override := profile.Pipeline
	if len(override.SourceWeights) > 0 {
		pc.SourceWeights = override.SourceWeights
	}
	if override.ProximityWindow > 0 {
		pc.ProximityWindow = override.ProximityWindow
	}
	if override.StrictWindow > 0 {
		pc.StrictWindow = override.StrictWindow
	}
	if override.KeywordWindow > 0 {
		pc.KeywordWindow = override.KeywordWindow
	}
	if override.BoostWindow > 0 {
		pc.BoostWindow = override.BoostWindow
	}
	if override.BoostFactor > 0 {
		pc.BoostFactor = override.BoostFactor
	}
	if override.ThresholdFloor > 0 {
		pc.ThresholdFloor = override.ThresholdFloor
	}
	if len(override.ThresholdOverrides) > 0 {
		pc.ThresholdOverrides = override.ThresholdOverrides
	}
	return pc
}

// containsField checks if a nested field exists in the YAML data
func containsField(data []byte, path ...string) bool {
	var yamlData map[string]interface{}
	err := yaml.Unmarshal(data, &yamlData)
	if err != nil {
		return false
	}

	current := yamlData
	for i, key := range path {
		if i == len(path)-1 {
			// Last key - check if it exists
			_, exists := current[key]
			return exists
		}
		// Intermediate key - navigate deeper
		if next, ok := current[key].(map[string]interface{}); ok {
			current = next
		} else {
			return false
		}
	}
	return false
}

// ValidateConfig validates tuning values that would silently break the
// pipeline if out of range.
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	p := config.Pipeline
	if p.BoostFactor < 0 || p.BoostFactor > 1 {
		return fmt.Errorf("pipeline.boost_factor must be in (0,1], got %.3f", p.BoostFactor)
	}
	if p.ThresholdFloor < 0 || p.ThresholdFloor > 1 {
		return fmt.Errorf("pipeline.threshold_floor must be in [0,1], got %.3f", p.ThresholdFloor)
	}
	if p.StrictWindow > p.ProximityWindow && p.ProximityWindow > 0 {
		return fmt.Errorf("pipeline.strict_window (%d) cannot exceed pipeline.proximity_window (%d)",
			p.StrictWindow, p.ProximityWindow)
	}
	for source, w := range p.SourceWeights {
		if w < 0 {
			return fmt.Errorf("pipeline.source_weights.%s must be non-negative, got %.3f", source, w)
		}
	}
	for category, threshold := range p.ThresholdOverrides {
		if threshold < 0 || threshold > 1 {
			return fmt.Errorf("pipeline.threshold_overrides.%s must be in [0,1], got %.3f", category, threshold)
		}
	}

	return nil
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard locations
// when configFile is empty). If loading fails, it returns a default configuration.
// This is the shared helper used by both the CLI and the web server.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Fall back to defaults; callers should not crash on a missing or bad config file.
		cfg, _ = LoadConfig("")
	}
	return cfg
}
