// Package config holds the resolved lint configuration and the rule
// enablement precedence logic.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DeprecatedWarning controls how notices about enabled deprecated rules
// are surfaced.
type DeprecatedWarning string

// Deprecated-warning levels.
const (
	DeprecatedWarn   DeprecatedWarning = "warn"
	DeprecatedInfo   DeprecatedWarning = "info"
	DeprecatedSilent DeprecatedWarning = "silent"
)

// Config is the resolved configuration for one run. It is constructed
// once, immutable thereafter, and shared by reference across all
// documents in the run.
type Config struct {
	EnabledCategories  []string `yaml:"enabled-categories"`
	DisabledCategories []string `yaml:"disabled-categories"`
	EnabledRules       []string `yaml:"enabled-rules"`
	DisabledRules      []string `yaml:"disabled-rules"`

	DeprecatedWarning DeprecatedWarning `yaml:"deprecated-warning"`

	// MarkdownlintCompatible narrows the default-enabled set to the
	// rules that mirror markdownlint's historical defaults.
	MarkdownlintCompatible bool `yaml:"markdownlint-compatible"`

	// Ignore lists glob patterns for files the runner skips entirely.
	Ignore []string `yaml:"ignore"`

	// FrontMatter controls stripping of YAML front matter before
	// parsing. Nil means the default (strip).
	FrontMatter *bool `yaml:"front-matter"`

	// Rules maps rule id to that rule's opaque settings. The engine
	// passes each blob to its rule and interprets nothing itself.
	Rules map[string]RuleCfg `yaml:"rules"`
}

// Default returns the configuration used when the user supplies nothing.
func Default() *Config {
	return &Config{
		DeprecatedWarning: DeprecatedWarn,
	}
}

// ShouldRun decides whether a rule runs, in strict precedence order:
// rule-level lists beat category-level lists beat the default state.
func (c *Config) ShouldRun(ruleID, category string, defaultEnabled bool) bool {
	if contains(c.EnabledRules, ruleID) {
		return true
	}
	if contains(c.DisabledRules, ruleID) {
		return false
	}
	if contains(c.EnabledCategories, category) {
		return true
	}
	if contains(c.DisabledCategories, category) {
		return false
	}
	return defaultEnabled
}

// StripFrontMatter reports whether front matter stripping is on.
func (c *Config) StripFrontMatter() bool {
	return c.FrontMatter == nil || *c.FrontMatter
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// RuleCfg is a YAML union: a bare bool enables or disables the rule,
// while a mapping supplies settings (and implies enabled).
type RuleCfg struct {
	Enabled  bool
	Settings map[string]any
}

// UnmarshalYAML implements custom YAML unmarshalling for RuleCfg.
// It handles three forms:
//   - false -> Enabled=false, Settings=nil
//   - true  -> Enabled=true,  Settings=nil
//   - {key: val, ...} -> Enabled=true, Settings={key: val, ...}
func (r *RuleCfg) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var b bool
		if err := value.Decode(&b); err == nil {
			r.Enabled = b
			r.Settings = nil
			return nil
		}
	}

	if value.Kind == yaml.MappingNode {
		var m map[string]any
		if err := value.Decode(&m); err != nil {
			return fmt.Errorf("invalid rule config: %w", err)
		}
		r.Enabled = true
		r.Settings = m
		return nil
	}

	return fmt.Errorf("rule config must be a bool or a mapping, got %v", value.Kind)
}
