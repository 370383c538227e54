// Package plugin aggregates rule providers and constructs lint engines
// from them.
package plugin

import (
	"fmt"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/config"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/engine"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/rule"
)

// Registry holds the providers that will contribute rules to an engine.
// Providers are registered up front; CreateEngine snapshots the merged
// rule set into an immutable engine.
type Registry struct {
	providers []rule.Provider
	// claimed maps rule id to the provider that claimed it, so a
	// colliding provider is rejected before it registers anything.
	claimed map[string]string
}

// NewRegistry returns an empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{claimed: map[string]string{}}
}

// RegisterProvider adds a provider. It fails if any of the provider's
// rule ids collide with an already-registered provider's ids, leaving the
// registry unchanged in that case.
func (pr *Registry) RegisterProvider(p rule.Provider) error {
	for _, id := range p.RuleIDs() {
		if owner, ok := pr.claimed[id]; ok {
			return fmt.Errorf("provider %s: %w (claimed by provider %s)",
				p.ProviderID(), &lint.DuplicateRuleError{ID: id}, owner)
		}
	}
	for _, id := range p.RuleIDs() {
		pr.claimed[id] = p.ProviderID()
	}
	pr.providers = append(pr.providers, p)
	return nil
}

// Providers returns the registered providers in registration order.
func (pr *Registry) Providers() []rule.Provider {
	out := make([]rule.Provider, len(pr.providers))
	copy(out, pr.providers)
	return out
}

// CreateEngine builds an engine over all registered providers' rules with
// default configuration.
func (pr *Registry) CreateEngine() (*engine.Engine, error) {
	return pr.CreateEngineWith(nil)
}

// CreateEngineWith builds an engine with an explicit configuration. An
// inconsistent registry (duplicate ids surfacing at registration) aborts
// engine creation.
func (pr *Registry) CreateEngineWith(cfg *config.Config) (*engine.Engine, error) {
	reg := rule.NewRegistry()
	for _, p := range pr.providers {
		if err := p.RegisterRules(reg); err != nil {
			return nil, fmt.Errorf("provider %s: %w", p.ProviderID(), err)
		}
	}
	return engine.New(reg, cfg), nil
}
