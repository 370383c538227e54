// Package engine orchestrates rule execution: per-document dispatch with
// single-parse tree sharing, violation deduplication, and the separate
// collection pass across a whole document set.
package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/config"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/rule"
)

// Engine runs a fixed rule registry under a fixed configuration. Both are
// read-only for the engine's lifetime, so one engine may serve many
// documents concurrently as long as each document is linted on one
// goroutine.
type Engine struct {
	registry *rule.Registry
	config   *config.Config
}

// New returns an engine over the given registry and configuration.
// A nil cfg means defaults.
func New(reg *rule.Registry, cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Engine{registry: reg, config: cfg}
}

// Registry exposes the engine's rule registry for introspection.
func (e *Engine) Registry() *rule.Registry { return e.registry }

// Config returns the engine-wide configuration.
func (e *Engine) Config() *config.Config { return e.config }

// LintDocument checks one document with the engine-wide configuration.
// The returned violations are ordered by (line, column, rule id). Finding
// violations is success; the error reports parse or rule failures only.
func (e *Engine) LintDocument(doc *lint.Document) ([]lint.Violation, error) {
	return e.lintDocument(e.config, doc)
}

// LintDocumentWith checks one document under an explicit configuration
// override without touching the engine-wide configuration.
func (e *Engine) LintDocumentWith(cfg *config.Config, doc *lint.Document) ([]lint.Violation, error) {
	if cfg == nil {
		cfg = e.config
	}
	return e.lintDocument(cfg, doc)
}

func (e *Engine) lintDocument(cfg *config.Config, doc *lint.Document) ([]lint.Violation, error) {
	enabled := e.enabledRules(cfg)

	// Parsing is the expensive step: do it once, and only when some
	// enabled rule actually wants the tree.
	var root ast.Node
	if needsTree(enabled) {
		var err error
		root, err = doc.Tree()
		if err != nil {
			return nil, err
		}
	}

	var violations []lint.Violation
	var errs []error

	for _, rl := range enabled {
		checkRule, err := e.configureRule(cfg, rl)
		if err != nil {
			errs = append(errs, &lint.RuleError{RuleID: rl.ID(), Path: doc.Path, Err: err})
			continue
		}

		var vs []lint.Violation
		switch r := checkRule.(type) {
		case rule.LineRule:
			vs, err = r.CheckLines(doc)
		case rule.ASTRule:
			vs, err = r.CheckAST(doc, root)
		case rule.CollectionRule:
			// Collection rules run in LintCollection, after every
			// document's per-document pass.
			continue
		}
		if err != nil {
			errs = append(errs, &lint.RuleError{RuleID: rl.ID(), Path: doc.Path, Err: err})
			continue
		}
		violations = append(violations, vs...)
	}

	violations = dedupe(enabled, violations)
	sortViolations(violations)
	return violations, errors.Join(errs...)
}

// LintCollection runs every enabled collection rule over the full ordered
// document set. Callers must invoke it only after all per-document passes
// have completed. Findings a rule cannot anchor inside a file are
// normalized to line 1, column 1.
func (e *Engine) LintCollection(docs []*lint.Document) ([]lint.Violation, error) {
	var violations []lint.Violation
	var errs []error

	for _, rl := range e.enabledRules(e.config) {
		_, ok := rl.(rule.CollectionRule)
		if !ok {
			continue
		}

		configured, err := e.configureRule(e.config, rl)
		if err != nil {
			errs = append(errs, &lint.RuleError{RuleID: rl.ID(), Err: err})
			continue
		}

		vs, err := configured.(rule.CollectionRule).CheckCollection(docs)
		if err != nil {
			errs = append(errs, &lint.RuleError{RuleID: rl.ID(), Err: err})
			continue
		}
		for i := range vs {
			if vs[i].Line < 1 {
				vs[i].Line = 1
			}
			if vs[i].Column < 1 {
				vs[i].Column = 1
			}
		}
		violations = append(violations, vs...)
	}

	sortViolations(violations)
	return violations, errors.Join(errs...)
}

// DeprecationNotices returns one message per enabled deprecated rule,
// or nil when deprecated-warning is silent. These are run-level notices
// for the caller to surface, independent of any violation output.
func (e *Engine) DeprecationNotices() []string {
	if e.config.DeprecatedWarning == config.DeprecatedSilent {
		return nil
	}

	var notices []string
	for _, rl := range e.enabledRules(e.config) {
		st := rl.Metadata().Stability
		if st.Level != rule.StabilityDeprecated {
			continue
		}
		msg := fmt.Sprintf("rule %s (%s) is deprecated: %s", rl.ID(), rl.Name(), st.Reason)
		if st.SupersededBy != "" {
			msg += fmt.Sprintf("; use %s instead", st.SupersededBy)
		}
		notices = append(notices, msg)
	}
	return notices
}

// enabledRules returns the rules that should run under cfg, in sorted-id
// order for deterministic dispatch and output.
func (e *Engine) enabledRules(cfg *config.Config) []rule.Rule {
	var enabled []rule.Rule
	for _, rl := range e.registry.All() {
		md := rl.Metadata()
		if cfg.ShouldRun(rl.ID(), string(md.Category), defaultEnabled(cfg, rl)) {
			enabled = append(enabled, rl)
		}
	}
	return enabled
}

// defaultEnabled resolves a rule's default state. In markdownlint-
// compatible mode only the MD-catalog rules keep their defaults; other
// families (MDBOOK, LT) default off to match the external tool.
func defaultEnabled(cfg *config.Config, rl rule.Rule) bool {
	if cfg.MarkdownlintCompatible && !isMarkdownlintID(rl.ID()) {
		return false
	}
	return rl.Metadata().DefaultEnabled
}

func isMarkdownlintID(id string) bool {
	return strings.HasPrefix(id, "MD") && !strings.HasPrefix(id, "MDBOOK")
}

// configureRule clones a rule and applies its settings blob when the rule
// is Configurable and cfg carries settings for it.
func (e *Engine) configureRule(cfg *config.Config, rl rule.Rule) (rule.Rule, error) {
	rc, ok := cfg.Rules[rl.ID()]
	if !ok || rc.Settings == nil {
		return rl, nil
	}
	if _, ok := rl.(rule.Configurable); !ok {
		return rl, nil
	}
	clone := rule.Clone(rl)
	if c, ok := clone.(rule.Configurable); ok {
		if err := c.ApplySettings(rc.Settings); err != nil {
			return nil, fmt.Errorf("applying settings: %w", err)
		}
	}
	return clone, nil
}

// needsTree reports whether any enabled rule wants the syntax tree.
func needsTree(rules []rule.Rule) bool {
	for _, rl := range rules {
		if _, ok := rl.(rule.ASTRule); ok {
			return true
		}
	}
	return false
}

// sortViolations orders violations by (file, line, column, rule id) so
// output is deterministic.
func sortViolations(violations []lint.Violation) {
	sort.Slice(violations, func(i, j int) bool {
		vi, vj := violations[i], violations[j]
		if vi.File != vj.File {
			return vi.File < vj.File
		}
		if vi.Line != vj.Line {
			return vi.Line < vj.Line
		}
		if vi.Column != vj.Column {
			return vi.Column < vj.Column
		}
		return vi.RuleID < vj.RuleID
	})
}
