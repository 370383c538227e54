package engine

import (
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/rule"
)

// dedupe resolves overlapping findings from rules that model the same
// defect at different specificity levels. When rule B declares it
// overrides rule A and both flagged the same line, A's violation is
// dropped and B's kept.
//
// The match key is the line number alone: two rules firing on distinct
// spans of the same line still collapse.
func dedupe(enabled []rule.Rule, violations []lint.Violation) []lint.Violation {
	// overriders: overridden rule id -> ids of enabled rules that
	// declare precedence over it.
	overriders := map[string][]string{}
	for _, rl := range enabled {
		if target := rl.Metadata().Overrides; target != "" {
			overriders[target] = append(overriders[target], rl.ID())
		}
	}
	if len(overriders) == 0 {
		return violations
	}

	// fired: rule id -> set of lines that rule flagged.
	fired := map[string]map[int]bool{}
	for _, v := range violations {
		lines := fired[v.RuleID]
		if lines == nil {
			lines = map[int]bool{}
			fired[v.RuleID] = lines
		}
		lines[v.Line] = true
	}

	kept := make([]lint.Violation, 0, len(violations))
	for _, v := range violations {
		if overriddenAt(overriders[v.RuleID], fired, v.Line) {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

// overriddenAt reports whether any overriding rule flagged the same line.
func overriddenAt(overridingIDs []string, fired map[string]map[int]bool, line int) bool {
	for _, id := range overridingIDs {
		if fired[id][line] {
			return true
		}
	}
	return false
}
