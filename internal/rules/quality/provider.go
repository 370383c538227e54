// Package quality bundles content-quality rules: link text, and document
// conventions like ADR section structure.
package quality

import "github.com/joshrotenberg/mdbook-lint-sub003/internal/rule"

// Provider registers the LT content-quality rules.
type Provider struct{}

// New returns the content-quality rule provider.
func New() *Provider { return &Provider{} }

// ProviderID implements rule.Provider.
func (p *Provider) ProviderID() string { return "quality" }

// Description implements rule.Provider.
func (p *Provider) Description() string {
	return "content-quality rules for prose and conventions"
}

// Version implements rule.Provider.
func (p *Provider) Version() string { return "0.1.0" }

// RegisterRules implements rule.Provider.
func (p *Provider) RegisterRules(reg *rule.Registry) error {
	for _, r := range p.rules() {
		if err := reg.Register(r); err != nil {
			return err
		}
	}
	return nil
}

// RuleIDs implements rule.Provider.
func (p *Provider) RuleIDs() []string {
	rules := p.rules()
	ids := make([]string, 0, len(rules))
	for _, r := range rules {
		ids = append(ids, r.ID())
	}
	return ids
}

func (p *Provider) rules() []rule.Rule {
	return []rule.Rule{
		&DescriptiveLinkText{},
		NewADRStructure(),
	}
}
