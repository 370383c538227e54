package standard

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/rule"
)

// HeadingIncrement checks that heading levels only increment by one.
// The first heading sets the baseline and is never flagged: there is no
// prior level to compare against.
type HeadingIncrement struct{}

// ID implements rule.Rule.
func (r *HeadingIncrement) ID() string { return "MD001" }

// Name implements rule.Rule.
func (r *HeadingIncrement) Name() string { return "heading-increment" }

// Description implements rule.Rule.
func (r *HeadingIncrement) Description() string {
	return "Heading levels should only increment by one level at a time"
}

// Metadata implements rule.Rule.
func (r *HeadingIncrement) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:       rule.CategoryStructure,
		Stability:      rule.Stable(),
		IntroducedIn:   "v0.1.0",
		DefaultEnabled: true,
	}
}

// CheckAST implements rule.ASTRule.
func (r *HeadingIncrement) CheckAST(doc *lint.Document, root ast.Node) ([]lint.Violation, error) {
	var violations []lint.Violation
	prevLevel := 0

	for _, h := range doc.Headings(root) {
		level := h.Level
		if prevLevel != 0 && level > prevLevel+1 {
			line, col := headingPosition(doc, h)
			violations = append(violations, lint.Violation{
				File:     doc.Path,
				Line:     line,
				Column:   col,
				RuleID:   r.ID(),
				RuleName: r.Name(),
				Severity: lint.Warning,
				Message: fmt.Sprintf("heading level incremented from %d to %d (expected %d)",
					prevLevel, level, prevLevel+1),
			})
		}
		prevLevel = level
	}
	return violations, nil
}

// FirstHeadingH1 checks that the first heading is a top-level heading.
// Deprecated: first-line-heading (MD041) covers the same concern.
type FirstHeadingH1 struct{}

// ID implements rule.Rule.
func (r *FirstHeadingH1) ID() string { return "MD002" }

// Name implements rule.Rule.
func (r *FirstHeadingH1) Name() string { return "first-heading-h1" }

// Description implements rule.Rule.
func (r *FirstHeadingH1) Description() string {
	return "First heading should be a top-level heading"
}

// Metadata implements rule.Rule.
func (r *FirstHeadingH1) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:     rule.CategoryStructure,
		Stability:    rule.Deprecated("replaced by first-line-heading", "MD041"),
		IntroducedIn: "v0.1.0",
	}
}

// CheckAST implements rule.ASTRule.
func (r *FirstHeadingH1) CheckAST(doc *lint.Document, root ast.Node) ([]lint.Violation, error) {
	headings := doc.Headings(root)
	if len(headings) == 0 || headings[0].Level == 1 {
		return nil, nil
	}

	line, col := headingPosition(doc, headings[0])
	return []lint.Violation{{
		File:     doc.Path,
		Line:     line,
		Column:   col,
		RuleID:   r.ID(),
		RuleName: r.Name(),
		Severity: lint.Warning,
		Message:  fmt.Sprintf("first heading should be level 1, got %d", headings[0].Level),
	}}, nil
}

// NoDuplicateHeadings checks that no two headings share the same text.
type NoDuplicateHeadings struct{}

// ID implements rule.Rule.
func (r *NoDuplicateHeadings) ID() string { return "MD024" }

// Name implements rule.Rule.
func (r *NoDuplicateHeadings) Name() string { return "no-duplicate-headings" }

// Description implements rule.Rule.
func (r *NoDuplicateHeadings) Description() string {
	return "Multiple headings with the same content"
}

// Metadata implements rule.Rule.
func (r *NoDuplicateHeadings) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:       rule.CategoryStructure,
		Stability:      rule.Stable(),
		IntroducedIn:   "v0.1.0",
		DefaultEnabled: true,
	}
}

// CheckAST implements rule.ASTRule.
func (r *NoDuplicateHeadings) CheckAST(doc *lint.Document, root ast.Node) ([]lint.Violation, error) {
	var violations []lint.Violation
	seen := map[string]int{}

	for _, h := range doc.Headings(root) {
		text := strings.ToLower(strings.TrimSpace(string(doc.NodeText(h))))
		if text == "" {
			continue
		}
		if firstLine, dup := seen[text]; dup {
			line, col := headingPosition(doc, h)
			violations = append(violations, lint.Violation{
				File:     doc.Path,
				Line:     line,
				Column:   col,
				RuleID:   r.ID(),
				RuleName: r.Name(),
				Severity: lint.Warning,
				Message:  fmt.Sprintf("heading duplicates the heading on line %d", firstLine),
			})
			continue
		}
		line, _ := headingPosition(doc, h)
		seen[text] = line
	}
	return violations, nil
}

// SingleH1 checks that a document has at most one top-level heading.
type SingleH1 struct{}

// ID implements rule.Rule.
func (r *SingleH1) ID() string { return "MD025" }

// Name implements rule.Rule.
func (r *SingleH1) Name() string { return "single-h1" }

// Description implements rule.Rule.
func (r *SingleH1) Description() string {
	return "Multiple top-level headings in the same document"
}

// Metadata implements rule.Rule.
func (r *SingleH1) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:       rule.CategoryStructure,
		Stability:      rule.Stable(),
		IntroducedIn:   "v0.1.0",
		DefaultEnabled: true,
	}
}

// CheckAST implements rule.ASTRule.
func (r *SingleH1) CheckAST(doc *lint.Document, root ast.Node) ([]lint.Violation, error) {
	var violations []lint.Violation
	sawH1 := false

	for _, h := range doc.Headings(root) {
		if h.Level != 1 {
			continue
		}
		if !sawH1 {
			sawH1 = true
			continue
		}
		line, col := headingPosition(doc, h)
		violations = append(violations, lint.Violation{
			File:     doc.Path,
			Line:     line,
			Column:   col,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Severity: lint.Warning,
			Message:  "multiple top-level headings in the same document",
		})
	}
	return violations, nil
}

// headingPosition maps a heading node to a source position, defaulting to
// 1:1 when the node carries no segment (empty setext edge cases).
func headingPosition(doc *lint.Document, h ast.Node) (line, col int) {
	if l, c, ok := doc.NodePosition(h); ok {
		return l, c
	}
	return 1, 1
}
