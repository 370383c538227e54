package quality

import (
	"testing"
)

const completeADR = `# 7. Use event sourcing

## Status

Accepted

## Context

We need an audit trail.

## Decision

Use event sourcing.

## Consequences

Storage grows without bound.
`

func TestADRStructure_CompleteRecord(t *testing.T) {
	doc, root := parseDoc(t, "docs/adr/0007-event-sourcing.md", completeADR)
	r := NewADRStructure()
	violations, err := r.CheckAST(doc, root)
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) != 0 {
		t.Fatalf("expected 0 violations, got %d: %v", len(violations), violations)
	}
}

func TestADRStructure_MissingSections(t *testing.T) {
	doc, root := parseDoc(t, "docs/adr/0008-caching.md",
		"# 8. Caching\n\n## Status\n\nDraft\n\n## Context\n\nSlow reads.\n")
	r := NewADRStructure()
	violations, err := r.CheckAST(doc, root)
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(violations), violations)
	}
	if want := `missing "Decision" section`; violations[0].Message != want {
		t.Errorf("got %q, want %q", violations[0].Message, want)
	}
	if want := `missing "Consequences" section`; violations[1].Message != want {
		t.Errorf("got %q, want %q", violations[1].Message, want)
	}
}

func TestADRStructure_NonMatchingPathSkipped(t *testing.T) {
	doc, root := parseDoc(t, "docs/guide/intro.md", "# Intro\n\nNo ADR sections at all.\n")
	r := NewADRStructure()
	violations, err := r.CheckAST(doc, root)
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) != 0 {
		t.Fatalf("expected 0 violations, got %d", len(violations))
	}
}

func TestADRStructure_ConfiguredSections(t *testing.T) {
	doc, root := parseDoc(t, "decisions/adr-001.md", "# Record\n\n## Outcome\n\nDone.\n")
	r := NewADRStructure()
	if err := r.ApplySettings(map[string]any{
		"pattern":  "*adr*",
		"sections": []any{"Outcome"},
	}); err != nil {
		t.Fatal(err)
	}
	violations, err := r.CheckAST(doc, root)
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) != 0 {
		t.Fatalf("expected 0 violations, got %d: %v", len(violations), violations)
	}
}

func TestADRStructure_RejectsBadSettings(t *testing.T) {
	r := NewADRStructure()
	if err := r.ApplySettings(map[string]any{"pattern": 7}); err == nil {
		t.Fatal("expected non-string pattern to be rejected")
	}
	if err := r.ApplySettings(map[string]any{"sections": "Status"}); err == nil {
		t.Fatal("expected non-list sections to be rejected")
	}
}
