package mdbook

import (
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/rule"
)

// CodeBlockLanguageTag checks that fenced code blocks carry a language
// tag, which mdBook needs for syntax highlighting and playground
// integration. It subsumes the generic fenced-code-language rule: when
// both flag the same block, this rule's finding wins.
type CodeBlockLanguageTag struct{}

// ID implements rule.Rule.
func (r *CodeBlockLanguageTag) ID() string { return "MDBOOK001" }

// Name implements rule.Rule.
func (r *CodeBlockLanguageTag) Name() string { return "code-block-language-tag" }

// Description implements rule.Rule.
func (r *CodeBlockLanguageTag) Description() string {
	return "Code blocks should have a language tag for mdBook highlighting"
}

// Metadata implements rule.Rule.
func (r *CodeBlockLanguageTag) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:       rule.CategoryMdBook,
		Stability:      rule.Stable(),
		IntroducedIn:   "v0.1.0",
		Overrides:      "MD040",
		DefaultEnabled: true,
	}
}

// CheckAST implements rule.ASTRule.
func (r *CodeBlockLanguageTag) CheckAST(doc *lint.Document, root ast.Node) ([]lint.Violation, error) {
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
			Message:  "code block missing language tag (use `text` for plain output)",
		})
	}
	return violations, nil
}

// InternalLinkPaths checks that links between book chapters use relative
// paths. mdBook resolves chapter links relative to the source file, so
// absolute paths break once the book is rendered.
type InternalLinkPaths struct{}

// ID implements rule.Rule.
func (r *InternalLinkPaths) ID() string { return "MDBOOK002" }

// Name implements rule.Rule.
func (r *InternalLinkPaths) Name() string { return "internal-link-paths" }

// Description implements rule.Rule.
func (r *InternalLinkPaths) Description() string {
	return "Chapter links should use relative paths"
}

// Metadata implements rule.Rule.
func (r *InternalLinkPaths) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:       rule.CategoryMdBook,
		Stability:      rule.Stable(),
		IntroducedIn:   "v0.1.0",
		DefaultEnabled: true,
	}
}

// CheckAST implements rule.ASTRule.
func (r *InternalLinkPaths) CheckAST(doc *lint.Document, root ast.Node) ([]lint.Violation, error) {
	var violations []lint.Violation

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}

		dest := string(link.Destination)
		if !strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "//") {
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
			Message:  "internal link uses an absolute path: " + dest,
		})
		return ast.WalkContinue, nil
	})
	return violations, nil
}
