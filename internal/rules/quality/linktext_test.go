package quality

import (
	"testing"

	"github.com/yuin/goldmark/ast"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
)

func parseDoc(t *testing.T, path, content string) (*lint.Document, ast.Node) {
	t.Helper()
	doc, err := lint.NewDocument(path, []byte(content))
	if err != nil {
		t.Fatal(err)
	}
	root, err := doc.Tree()
	if err != nil {
		t.Fatal(err)
	}
	return doc, root
}

func TestDescriptiveLinkText_GenericPhrases(t *testing.T) {
	doc, root := parseDoc(t, "test.md", "[click here](a.md) or [Read More](b.md)\n")
	r := &DescriptiveLinkText{}
	violations, err := r.CheckAST(doc, root)
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %d", len(violations))
	}
	if violations[0].Severity != lint.Info {
		t.Errorf("expected info severity, got %s", violations[0].Severity)
	}
	if want := `link text "click here" does not describe the target`; violations[0].Message != want {
		t.Errorf("got %q, want %q", violations[0].Message, want)
	}
}

func TestDescriptiveLinkText_DescriptiveAllowed(t *testing.T) {
	doc, root := parseDoc(t, "test.md", "[installation guide](install.md)\n")
	r := &DescriptiveLinkText{}
	violations, err := r.CheckAST(doc, root)
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) != 0 {
		t.Fatalf("expected 0 violations, got %d", len(violations))
	}
}
