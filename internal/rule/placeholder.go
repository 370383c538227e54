package rule

import "github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"

// Placeholder is a reserved rule: an id kept for numbering continuity
// with an external catalog. It produces no violations for any input.
// The always-empty contract is enforced here, once, rather than per rule.
type Placeholder struct {
	id     string
	name   string
	reason string
}

// NewPlaceholder returns a reserved rule under the given id.
func NewPlaceholder(id, name, reason string) *Placeholder {
	return &Placeholder{id: id, name: name, reason: reason}
}

// ID implements Rule.
func (p *Placeholder) ID() string { return p.id }

// Name implements Rule.
func (p *Placeholder) Name() string { return p.name }

// Description implements Rule.
func (p *Placeholder) Description() string {
	return "reserved: " + p.reason
}

// Metadata implements Rule.
func (p *Placeholder) Metadata() Metadata {
	return Metadata{
		Category:  CategoryStructure,
		Stability: Reserved(p.reason),
	}
}

// CheckLines implements LineRule. It always returns no violations.
func (p *Placeholder) CheckLines(*lint.Document) ([]lint.Violation, error) {
	return nil, nil
}
