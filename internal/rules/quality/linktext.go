package quality

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/rule"
)

// genericLinkText are phrases that tell the reader nothing about the
// destination.
var genericLinkText = map[string]bool{
	"here":       true,
	"click here": true,
	"link":       true,
	"this":       true,
	"this link":  true,
	"read more":  true,
}

// DescriptiveLinkText checks that link text describes the destination
// rather than saying "click here".
type DescriptiveLinkText struct{}

// ID implements rule.Rule.
func (r *DescriptiveLinkText) ID() string { return "LT001" }

// Name implements rule.Rule.
func (r *DescriptiveLinkText) Name() string { return "descriptive-link-text" }

// Description implements rule.Rule.
func (r *DescriptiveLinkText) Description() string {
	return "Link text should describe the link target"
}

// Metadata implements rule.Rule.
func (r *DescriptiveLinkText) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:       rule.CategoryContent,
		Stability:      rule.Stable(),
		IntroducedIn:   "v0.1.0",
		DefaultEnabled: true,
	}
}

// CheckAST implements rule.ASTRule.
func (r *DescriptiveLinkText) CheckAST(doc *lint.Document, root ast.Node) ([]lint.Violation, error) {
	var violations []lint.Violation

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}

		text := strings.ToLower(strings.TrimSpace(string(doc.NodeText(link))))
		if !genericLinkText[text] {
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
			Severity: lint.Info,
			Message:  fmt.Sprintf("link text %q does not describe the target", text),
		})
		return ast.WalkContinue, nil
	})
	return violations, nil
}
