package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestShouldRun_Default(t *testing.T) {
	cfg := Default()
	if !cfg.ShouldRun("MD001", "structure", true) {
		t.Error("expected default-enabled rule to run")
	}
	if cfg.ShouldRun("MD013", "formatting", false) {
		t.Error("expected default-disabled rule not to run")
	}
}

func TestShouldRun_EnabledRuleBeatsDisabledRule(t *testing.T) {
	cfg := Default()
	cfg.EnabledRules = []string{"MD001"}
	cfg.DisabledRules = []string{"MD001"}
	if !cfg.ShouldRun("MD001", "structure", false) {
		t.Error("expected enabled-rules to win over disabled-rules")
	}
}

func TestShouldRun_EnabledRuleBeatsDisabledCategory(t *testing.T) {
	cfg := Default()
	cfg.EnabledRules = []string{"MD001"}
	cfg.DisabledCategories = []string{"structure"}
	if !cfg.ShouldRun("MD001", "structure", true) {
		t.Error("expected rule-level enable to beat category-level disable")
	}
}

func TestShouldRun_DisabledRuleBeatsEnabledCategory(t *testing.T) {
	cfg := Default()
	cfg.DisabledRules = []string{"MD001"}
	cfg.EnabledCategories = []string{"structure"}
	if cfg.ShouldRun("MD001", "structure", true) {
		t.Error("expected rule-level disable to beat category-level enable")
	}
}

func TestShouldRun_EnabledCategoryBeatsDisabledCategory(t *testing.T) {
	cfg := Default()
	cfg.EnabledCategories = []string{"structure"}
	cfg.DisabledCategories = []string{"structure"}
	if !cfg.ShouldRun("MD001", "structure", false) {
		t.Error("expected enabled-categories to win over disabled-categories")
	}
}

func TestShouldRun_CategoryBeatsDefault(t *testing.T) {
	cfg := Default()
	cfg.DisabledCategories = []string{"formatting"}
	if cfg.ShouldRun("MD009", "formatting", true) {
		t.Error("expected disabled category to beat default-enabled")
	}
	cfg2 := Default()
	cfg2.EnabledCategories = []string{"formatting"}
	if !cfg2.ShouldRun("MD013", "formatting", false) {
		t.Error("expected enabled category to beat default-disabled")
	}
}

func TestRuleCfg_UnmarshalBool(t *testing.T) {
	var rc RuleCfg
	if err := yaml.Unmarshal([]byte("false"), &rc); err != nil {
		t.Fatal(err)
	}
	if rc.Enabled || rc.Settings != nil {
		t.Errorf("expected disabled with nil settings, got %+v", rc)
	}

	if err := yaml.Unmarshal([]byte("true"), &rc); err != nil {
		t.Fatal(err)
	}
	if !rc.Enabled {
		t.Error("expected enabled")
	}
}

func TestRuleCfg_UnmarshalMapping(t *testing.T) {
	var rc RuleCfg
	if err := yaml.Unmarshal([]byte("line-length: 120"), &rc); err != nil {
		t.Fatal(err)
	}
	if !rc.Enabled {
		t.Error("expected mapping form to imply enabled")
	}
	if rc.Settings["line-length"] != 120 {
		t.Errorf("expected line-length 120, got %v", rc.Settings["line-length"])
	}
}

func TestRuleCfg_UnmarshalSequenceFails(t *testing.T) {
	var rc RuleCfg
	if err := yaml.Unmarshal([]byte("- a\n- b"), &rc); err == nil {
		t.Error("expected sequence form to fail")
	}
}

func TestLoad_FoldsBoolRulesIntoLists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".mdbook-lint.yml")
	content := "" +
		"disabled-categories:\n  - formatting\n" +
		"rules:\n  MD001: false\n  MD013:\n    line-length: 120\n  LT001: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !containsString(cfg.DisabledRules, "MD001") {
		t.Errorf("expected MD001 in disabled-rules, got %v", cfg.DisabledRules)
	}
	if !containsString(cfg.EnabledRules, "LT001") {
		t.Errorf("expected LT001 in enabled-rules, got %v", cfg.EnabledRules)
	}
	if containsString(cfg.DisabledRules, "MD013") || containsString(cfg.EnabledRules, "MD013") {
		t.Error("expected settings-form rule to stay out of the lists")
	}
	if cfg.Rules["MD013"].Settings["line-length"] != 120 {
		t.Errorf("expected MD013 settings to survive, got %+v", cfg.Rules["MD013"])
	}
	if cfg.DeprecatedWarning != DeprecatedWarn {
		t.Errorf("expected default deprecated-warning warn, got %s", cfg.DeprecatedWarning)
	}
}

func TestDiscover_FindsConfigUpward(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "docs", "src")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, ".mdbook-lint.yml")
	if err := os.WriteFile(cfgPath, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(sub)
	if err != nil {
		t.Fatal(err)
	}
	if found != cfgPath {
		t.Errorf("expected %s, got %s", cfgPath, found)
	}
}

func TestDiscover_StopsAtGitRoot(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "repo", ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "repo", "docs")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	// Config above the git root must not be found.
	if err := os.WriteFile(filepath.Join(dir, ".mdbook-lint.yml"), []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(sub)
	if err != nil {
		t.Fatal(err)
	}
	if found != "" {
		t.Errorf("expected no config, got %s", found)
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
