package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gyeh/rehtriage/internal/model"
	"github.com/gyeh/rehtriage/internal/normalize"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a rehcalc run.
type Config struct {
	FilePath        string
	OutPath         string
	ConfigPath      string
	LogFormat       string // "text" or "json"
	Output          string // score output: "text" or "json"
	Force           bool
	KeepTemp        bool
	SampleSize      int64
	AssessmentTypes []string `yaml:"assessment_types"` // subset of AllAssessmentTypes to score
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	AssessmentTypes []string `yaml:"assessment_types"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.AssessmentTypes = yc.AssessmentTypes
	return c.validateAssessmentTypes()
}

// Load applies the --config file when one was given, and defaults the
// assessment filter otherwise.
func (c *Config) Load() error {
	if c.ConfigPath != "" {
		return c.LoadFromFile(c.ConfigPath)
	}
	return c.validateAssessmentTypes()
}

// validateAssessmentTypes canonicalizes every entry in AssessmentTypes.
// If AssessmentTypes is empty, it defaults to all AllAssessmentTypes names.
func (c *Config) validateAssessmentTypes() error {
	if len(c.AssessmentTypes) == 0 {
		c.AssessmentTypes = make([]string, len(model.AllAssessmentTypes))
		for i, at := range model.AllAssessmentTypes {
			c.AssessmentTypes[i] = string(at)
		}
		return nil
	}
	for i, name := range c.AssessmentTypes {
		at, err := normalize.ParseAssessmentType(name)
		if err != nil {
			return fmt.Errorf("unknown assessment type %q in config", name)
		}
		c.AssessmentTypes[i] = string(at)
	}
	return nil
}

// AllowedAssessments returns the configured assessment types as a set. An
// empty filter allows every type.
func (c *Config) AllowedAssessments() map[model.AssessmentType]bool {
	out := make(map[model.AssessmentType]bool, len(model.AllAssessmentTypes))
	if len(c.AssessmentTypes) == 0 {
		for _, at := range model.AllAssessmentTypes {
			out[at] = true
		}
		return out
	}
	for _, name := range c.AssessmentTypes {
		out[model.AssessmentType(name)] = true
	}
	return out
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}

// ValidateWithOutput checks the input file and resolves the output path,
// defaulting to <input>.scored.parquet next to the input.
func (c *Config) ValidateWithOutput() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OutPath == "" {
		c.OutPath = DefaultOutPath(c.FilePath)
	}
	in, _ := filepath.Abs(c.FilePath)
	out, _ := filepath.Abs(c.OutPath)
	if in == out {
		return fmt.Errorf("--out must differ from --file")
	}
	if dir := filepath.Dir(c.OutPath); dir != "" {
		if st, err := os.Stat(dir); err != nil || !st.IsDir() {
			return fmt.Errorf("output directory not accessible: %s", dir)
		}
	}
	return nil
}

// DefaultOutPath derives the scored output path from an input path.
func DefaultOutPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".scored.parquet"
}
