package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".mdbook-lint.yml"

// Load reads and parses a config file at the given path. Per-rule bool
// entries in the rules section are folded into the enabled/disabled rule
// lists so that the precedence logic sees a single source of truth.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	for id, rc := range cfg.Rules {
		if rc.Settings != nil {
			continue
		}
		if rc.Enabled {
			cfg.EnabledRules = append(cfg.EnabledRules, id)
		} else {
			cfg.DisabledRules = append(cfg.DisabledRules, id)
		}
	}

	if cfg.DeprecatedWarning == "" {
		cfg.DeprecatedWarning = DeprecatedWarn
	}

	return cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// .mdbook-lint.yml config file. It stops at a .git directory (the
// repository root) or the filesystem root. Returns the path to the
// config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
