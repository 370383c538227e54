package standard

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/rule"
)

// FencedCodeLanguage checks that fenced code blocks declare a language.
type FencedCodeLanguage struct{}

// ID implements rule.Rule.
func (r *FencedCodeLanguage) ID() string { return "MD040" }

// Name implements rule.Rule.
func (r *FencedCodeLanguage) Name() string { return "fenced-code-language" }

// Description implements rule.Rule.
func (r *FencedCodeLanguage) Description() string {
	return "Fenced code blocks should have a language specified"
}

// Metadata implements rule.Rule.
func (r *FencedCodeLanguage) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:       rule.CategoryFormatting,
		Stability:      rule.Stable(),
		IntroducedIn:   "v0.1.0",
		DefaultEnabled: true,
	}
}

// CheckAST implements rule.ASTRule.
func (r *FencedCodeLanguage) CheckAST(doc *lint.Document, root ast.Node) ([]lint.Violation, error) {
	var violations []lint.Violation

	for _, cb := range doc.CodeBlocks(root) {
		if !cb.Fenced {
			continue
		}
		fcb := cb.Node.(*ast.FencedCodeBlock)
		if len(fcb.Language(doc.Source)) > 0 {
			continue
		}
		line, col := doc.FencePosition(fcb)
		violations = append(violations, lint.Violation{
			File:     doc.Path,
			Line:     line,
			Column:   col,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Severity: lint.Warning,
			Message:  "fenced code block missing language specification",
		})
	}
	return violations, nil
}

// NoEmphasisAsHeading checks for emphasized single-line paragraphs used
// in place of headings.
type NoEmphasisAsHeading struct{}

// ID implements rule.Rule.
func (r *NoEmphasisAsHeading) ID() string { return "MD036" }

// Name implements rule.Rule.
func (r *NoEmphasisAsHeading) Name() string { return "no-emphasis-as-heading" }

// Description implements rule.Rule.
func (r *NoEmphasisAsHeading) Description() string {
	return "Emphasis used instead of a heading"
}

// Metadata implements rule.Rule.
func (r *NoEmphasisAsHeading) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:       rule.CategoryStructure,
		Stability:      rule.Stable(),
		IntroducedIn:   "v0.1.0",
		DefaultEnabled: true,
	}
}

// CheckAST implements rule.ASTRule.
func (r *NoEmphasisAsHeading) CheckAST(doc *lint.Document, root ast.Node) ([]lint.Violation, error) {
	var violations []lint.Violation

	for child := root.FirstChild(); child != nil; child = child.NextSibling() {
		para, ok := child.(*ast.Paragraph)
		if !ok || para.ChildCount() != 1 {
			continue
		}
		em, ok := para.FirstChild().(*ast.Emphasis)
		if !ok {
			continue
		}

		text := strings.TrimSpace(string(doc.NodeText(em)))
		if text == "" || strings.ContainsAny(text[len(text)-1:], ".,;:!?") {
			continue
		}

		line, col, ok := doc.NodePosition(para)
		if !ok {
			continue
		}
		violations = append(violations, lint.Violation{
			File:     doc.Path,
			Line:     line,
			Column:   col,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Severity: lint.Warning,
			Message:  "emphasis used instead of a heading",
		})
	}
	return violations, nil
}

// FirstLineHeading checks that the first content line is a top-level
// heading.
type FirstLineHeading struct{}

// ID implements rule.Rule.
func (r *FirstLineHeading) ID() string { return "MD041" }

// Name implements rule.Rule.
func (r *FirstLineHeading) Name() string { return "first-line-heading" }

// Description implements rule.Rule.
func (r *FirstLineHeading) Description() string {
	return "First line in a file should be a top-level heading"
}

// Metadata implements rule.Rule.
func (r *FirstLineHeading) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:       rule.CategoryStructure,
		Stability:      rule.Stable(),
		IntroducedIn:   "v0.1.0",
		DefaultEnabled: true,
	}
}

// CheckAST implements rule.ASTRule. Both ATX and setext level-1 headings
// satisfy the rule.
func (r *FirstLineHeading) CheckAST(doc *lint.Document, root ast.Node) ([]lint.Violation, error) {
	firstLine := 0
	for i, line := range doc.Lines {
		if len(bytes.TrimSpace(line)) > 0 {
			firstLine = i + 1
			break
		}
	}
	if firstLine == 0 {
		return nil, nil
	}

	for _, h := range doc.Headings(root) {
		if h.Level != 1 {
			continue
		}
		if line, _, ok := doc.NodePosition(h); ok && line == firstLine {
			return nil, nil
		}
	}

	return []lint.Violation{{
		File:     doc.Path,
		Line:     firstLine,
		Column:   1,
		RuleID:   r.ID(),
		RuleName: r.Name(),
		Severity: lint.Warning,
		Message:  "first line should be a top-level heading",
	}}, nil
}

// NoEmptyLinks checks that links have both text and a destination.
type NoEmptyLinks struct{}

// ID implements rule.Rule.
func (r *NoEmptyLinks) ID() string { return "MD042" }

// Name implements rule.Rule.
func (r *NoEmptyLinks) Name() string { return "no-empty-links" }

// Description implements rule.Rule.
func (r *NoEmptyLinks) Description() string { return "No empty links" }

// Metadata implements rule.Rule.
func (r *NoEmptyLinks) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:       rule.CategoryContent,
		Stability:      rule.Stable(),
		IntroducedIn:   "v0.1.0",
		DefaultEnabled: true,
	}
}

// CheckAST implements rule.ASTRule.
func (r *NoEmptyLinks) CheckAST(doc *lint.Document, root ast.Node) ([]lint.Violation, error) {
	var violations []lint.Violation

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}

		dest := strings.TrimSpace(string(link.Destination))
		text := strings.TrimSpace(string(doc.NodeText(link)))
		if dest != "" && dest != "#" && text != "" {
			return ast.WalkContinue, nil
		}

		line, col, ok := doc.NodePosition(link)
		if !ok {
			line, col = 1, 1
		}
		violations = append(violations, lint.Violation{
			File:     doc.Path,
			Line:     line,
			Column:   col,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Severity: lint.Warning,
			Message:  "link has no destination or no text",
		})
		return ast.WalkContinue, nil
	})
	return violations, nil
}
