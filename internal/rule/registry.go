package rule

import (
	"fmt"
	"sort"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
)

// Registry is a keyed collection of rule instances. It is populated
// during engine construction and read-only afterwards.
type Registry struct {
	rules map[string]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: map[string]Rule{}}
}

// Register inserts a rule by id. It rejects a second rule under an
// already-registered id, and rules that implement zero or more than one
// capability shape.
func (reg *Registry) Register(r Rule) error {
	if err := validateCapability(r); err != nil {
		return err
	}
	if _, exists := reg.rules[r.ID()]; exists {
		return &lint.DuplicateRuleError{ID: r.ID()}
	}
	reg.rules[r.ID()] = r
	return nil
}

// Get returns the rule registered under id, or false.
func (reg *Registry) Get(id string) (Rule, bool) {
	r, ok := reg.rules[id]
	return r, ok
}

// All returns the registered rules sorted by id.
func (reg *Registry) All() []Rule {
	ids := make([]string, 0, len(reg.rules))
	for id := range reg.rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rules := make([]Rule, 0, len(ids))
	for _, id := range ids {
		rules = append(rules, reg.rules[id])
	}
	return rules
}

// Len returns the number of registered rules.
func (reg *Registry) Len() int {
	return len(reg.rules)
}

// validateCapability checks that a rule implements exactly one of the
// three capability shapes.
func validateCapability(r Rule) error {
	count := 0
	if _, ok := r.(LineRule); ok {
		count++
	}
	if _, ok := r.(ASTRule); ok {
		count++
	}
	if _, ok := r.(CollectionRule); ok {
		count++
	}
	switch count {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("rule %s implements no capability (want LineRule, ASTRule, or CollectionRule)", r.ID())
	default:
		return fmt.Errorf("rule %s implements %d capabilities, want exactly one", r.ID(), count)
	}
}
