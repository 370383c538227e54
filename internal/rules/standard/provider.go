// Package standard bundles the markdownlint-compatible rule family.
package standard

import "github.com/joshrotenberg/mdbook-lint-sub003/internal/rule"

// Provider registers the standard MD rules.
type Provider struct{}

// New returns the standard rule provider.
func New() *Provider { return &Provider{} }

// ProviderID implements rule.Provider.
func (p *Provider) ProviderID() string { return "standard" }

// Description implements rule.Provider.
func (p *Provider) Description() string {
	return "markdownlint-compatible style and structure rules"
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
		&HeadingIncrement{},
		&FirstHeadingH1{},
		&NoTrailingSpaces{},
		&NoHardTabs{},
		&NoMultipleBlanks{},
		NewLineLength(),
		// MD015-MD017 were removed from the upstream catalog; the ids
		// stay reserved so numbering keeps matching.
		rule.NewPlaceholder("MD015", "no-missing-space-after-list-marker", "removed from the upstream catalog"),
		rule.NewPlaceholder("MD016", "no-multiple-space-after-list-marker", "removed from the upstream catalog"),
		rule.NewPlaceholder("MD017", "no-emphasis-as-list-item", "removed from the upstream catalog"),
		&NoDuplicateHeadings{},
		&SingleH1{},
		&NoEmphasisAsHeading{},
		&FencedCodeLanguage{},
		&FirstLineHeading{},
		&NoEmptyLinks{},
		&SingleTrailingNewline{},
	}
}
