package fix

import (
	"bytes"
	"testing"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/rules/standard"
)

func TestApply_ReplacesSpan(t *testing.T) {
	source := []byte("first line  \nsecond line\n")
	f := &lint.Fix{
		Description: "trim trailing spaces",
		Replacement: []byte(""),
		Start:       lint.Position{Line: 1, Column: 11},
		End:         lint.Position{Line: 1, Column: 13},
	}

	out, applied, err := Apply(source, f)
	if err != nil {
		t.Fatal(err)
	}
	if !applied {
		t.Fatal("expected fix to apply")
	}
	if want := "first line\nsecond line\n"; string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestApply_NilReplacementIsNoRepair(t *testing.T) {
	source := []byte("content\n")
	f := &lint.Fix{
		Description: "no automatic repair",
		Start:       lint.Position{Line: 1, Column: 1},
		End:         lint.Position{Line: 1, Column: 2},
	}

	out, applied, err := Apply(source, f)
	if err != nil {
		t.Fatal(err)
	}
	if applied {
		t.Error("expected fix without replacement to be skipped")
	}
	if !bytes.Equal(out, source) {
		t.Errorf("source changed: %q", out)
	}
}

func TestApply_ZeroWidthInsertion(t *testing.T) {
	source := []byte("no newline")
	f := &lint.Fix{
		Description: "append newline",
		Replacement: []byte("\n"),
		Start:       lint.Position{Line: 1, Column: 11},
		End:         lint.Position{Line: 1, Column: 11},
	}

	out, applied, err := Apply(source, f)
	if err != nil {
		t.Fatal(err)
	}
	if !applied || string(out) != "no newline\n" {
		t.Errorf("got applied=%v out=%q", applied, out)
	}
}

func TestApply_InvertedSpanRejected(t *testing.T) {
	f := &lint.Fix{
		Replacement: []byte("x"),
		Start:       lint.Position{Line: 2, Column: 1},
		End:         lint.Position{Line: 1, Column: 1},
	}
	if _, _, err := Apply([]byte("a\nb\n"), f); err == nil {
		t.Fatal("expected inverted span to be rejected")
	}
}

func TestApply_OutOfRangeRejected(t *testing.T) {
	f := &lint.Fix{
		Replacement: []byte("x"),
		Start:       lint.Position{Line: 9, Column: 1},
		End:         lint.Position{Line: 9, Column: 2},
	}
	if _, _, err := Apply([]byte("a\n"), f); err == nil {
		t.Fatal("expected out-of-range span to be rejected")
	}
}

func TestApplyAll_MultipleFixesOnOneLine(t *testing.T) {
	// Two deletions on one line: applying back to front keeps the earlier
	// span's coordinates valid.
	source := []byte("a  b  c\n")
	violations := []lint.Violation{
		{Fix: &lint.Fix{
			Replacement: []byte(" "),
			Start:       lint.Position{Line: 1, Column: 2},
			End:         lint.Position{Line: 1, Column: 4},
		}},
		{Fix: &lint.Fix{
			Replacement: []byte(" "),
			Start:       lint.Position{Line: 1, Column: 5},
			End:         lint.Position{Line: 1, Column: 7},
		}},
	}

	out, applied := ApplyAll(source, violations)
	if applied != 2 {
		t.Fatalf("expected 2 fixes applied, got %d", applied)
	}
	if want := "a b c\n"; string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestApplyAll_SharedSpanFixes(t *testing.T) {
	// no-multiple-blanks and single-trailing-newline both want to delete
	// the final blank line here, so their fixes carry identical spans.
	source := []byte("a\n\n\n")
	doc, err := lint.NewDocument("test.md", source)
	if err != nil {
		t.Fatal(err)
	}

	blanks, err := (&standard.NoMultipleBlanks{}).CheckLines(doc)
	if err != nil {
		t.Fatal(err)
	}
	trailing, err := (&standard.SingleTrailingNewline{}).CheckLines(doc)
	if err != nil {
		t.Fatal(err)
	}
	violations := append(blanks, trailing...)
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %d", len(violations))
	}

	out, applied := ApplyAll(source, violations)
	if applied != 1 {
		t.Fatalf("expected the second identical fix to be skipped, got %d applied", applied)
	}
	if want := "a\n\n"; string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestApplyAll_HardTabFixesConverge(t *testing.T) {
	// Run the hard-tab rule, apply its fixes, run it again: the second
	// pass must be clean.
	source := []byte("col\tone\ttwo\nplain\n")
	doc, err := lint.NewDocument("test.md", source)
	if err != nil {
		t.Fatal(err)
	}

	root, err := doc.Tree()
	if err != nil {
		t.Fatal(err)
	}

	rl := &standard.NoHardTabs{}
	violations, err := rl.CheckAST(doc, root)
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) != 2 {
		t.Fatalf("expected 2 tab violations, got %d", len(violations))
	}

	fixed, applied := ApplyAll(source, violations)
	if applied != 2 {
		t.Fatalf("expected 2 fixes applied, got %d", applied)
	}

	redoc, err := lint.NewDocument("test.md", fixed)
	if err != nil {
		t.Fatal(err)
	}
	reroot, err := redoc.Tree()
	if err != nil {
		t.Fatal(err)
	}
	again, err := rl.CheckAST(redoc, reroot)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != 0 {
		t.Errorf("expected fixed content to be clean, got %v", again)
	}
}
