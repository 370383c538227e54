package plugin

import (
	"testing"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/rule"
)

// fakeRule is a minimal line rule for provider tests.
type fakeRule struct {
	id string
}

func (r *fakeRule) ID() string          { return r.id }
func (r *fakeRule) Name() string        { return "fake-" + r.id }
func (r *fakeRule) Description() string { return "fake rule" }
func (r *fakeRule) Metadata() rule.Metadata {
	return rule.Metadata{Category: rule.CategoryFormatting, Stability: rule.Stable(), DefaultEnabled: true}
}
func (r *fakeRule) CheckLines(*lint.Document) ([]lint.Violation, error) { return nil, nil }

// fakeProvider bundles a set of fake rules.
type fakeProvider struct {
	id  string
	ids []string
}

func (p *fakeProvider) ProviderID() string  { return p.id }
func (p *fakeProvider) Description() string { return "fake provider" }
func (p *fakeProvider) Version() string     { return "0.0.1" }
func (p *fakeProvider) RuleIDs() []string   { return p.ids }
func (p *fakeProvider) RegisterRules(reg *rule.Registry) error {
	for _, id := range p.ids {
		if err := reg.Register(&fakeRule{id: id}); err != nil {
			return err
		}
	}
	return nil
}

func TestRegisterProvider_And_CreateEngine(t *testing.T) {
	pr := NewRegistry()
	if err := pr.RegisterProvider(&fakeProvider{id: "a", ids: []string{"A001", "A002"}}); err != nil {
		t.Fatal(err)
	}
	if err := pr.RegisterProvider(&fakeProvider{id: "b", ids: []string{"B001"}}); err != nil {
		t.Fatal(err)
	}

	eng, err := pr.CreateEngine()
	if err != nil {
		t.Fatal(err)
	}
	if eng.Registry().Len() != 3 {
		t.Fatalf("expected 3 rules, got %d", eng.Registry().Len())
	}
	if _, ok := eng.Registry().Get("B001"); !ok {
		t.Error("expected B001 to be registered")
	}
}

func TestRegisterProvider_IDCollision(t *testing.T) {
	pr := NewRegistry()
	if err := pr.RegisterProvider(&fakeProvider{id: "a", ids: []string{"A001"}}); err != nil {
		t.Fatal(err)
	}
	err := pr.RegisterProvider(&fakeProvider{id: "b", ids: []string{"A001", "B001"}})
	if err == nil {
		t.Fatal("expected collision to be rejected")
	}

	// The colliding provider must not be partially registered.
	if len(pr.Providers()) != 1 {
		t.Errorf("expected 1 provider, got %d", len(pr.Providers()))
	}
	if err := pr.RegisterProvider(&fakeProvider{id: "c", ids: []string{"B001"}}); err != nil {
		t.Errorf("expected B001 to still be claimable: %v", err)
	}
}

func TestCreateEngine_SurfacesDuplicateFromLyingProvider(t *testing.T) {
	// A provider whose RuleIDs undersells what RegisterRules registers
	// still fails at engine creation via the rule registry.
	pr := NewRegistry()
	if err := pr.RegisterProvider(&fakeProvider{id: "a", ids: []string{"A001"}}); err != nil {
		t.Fatal(err)
	}
	lying := &fakeProvider{id: "b", ids: []string{"B001"}}
	if err := pr.RegisterProvider(lying); err != nil {
		t.Fatal(err)
	}
	lying.ids = []string{"A001"}

	if _, err := pr.CreateEngine(); err == nil {
		t.Fatal("expected engine creation to fail on duplicate id")
	}
}
