package standard

import (
	"bytes"

	"github.com/yuin/goldmark/ast"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/rule"
)

// NoTrailingSpaces checks that no line ends with whitespace. Code block
// lines are exempt, whitespace there is literal content.
type NoTrailingSpaces struct{}

// ID implements rule.Rule.
func (r *NoTrailingSpaces) ID() string { return "MD009" }

// Name implements rule.Rule.
func (r *NoTrailingSpaces) Name() string { return "no-trailing-spaces" }

// Description implements rule.Rule.
func (r *NoTrailingSpaces) Description() string {
	return "Lines should not end with trailing whitespace"
}

// Metadata implements rule.Rule.
func (r *NoTrailingSpaces) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:       rule.CategoryFormatting,
		Stability:      rule.Stable(),
		IntroducedIn:   "v0.1.0",
		DefaultEnabled: true,
	}
}

// CanFix implements rule.Fixable.
func (r *NoTrailingSpaces) CanFix() bool { return true }

// CheckAST implements rule.ASTRule.
func (r *NoTrailingSpaces) CheckAST(doc *lint.Document, root ast.Node) ([]lint.Violation, error) {
	var violations []lint.Violation
	inCode := doc.CodeBlockLines(root)

	for i, line := range doc.Lines {
		if inCode[i+1] {
			continue
		}
		trimmed := bytes.TrimRight(line, " \t")
		if len(trimmed) == len(line) {
			continue
		}
		lineNum := i + 1
		col := len(trimmed) + 1
		violations = append(violations, lint.Violation{
			File:     doc.Path,
			Line:     lineNum,
			Column:   col,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Severity: lint.Warning,
			Message:  "trailing whitespace",
			Fix: &lint.Fix{
				Description: "remove trailing whitespace",
				Replacement: []byte{},
				Start:       lint.Position{Line: lineNum, Column: col},
				End:         lint.Position{Line: lineNum, Column: len(line) + 1},
			},
		})
	}
	return violations, nil
}

// NoHardTabs checks that no line outside a code block contains hard tab
// characters.
type NoHardTabs struct{}

// ID implements rule.Rule.
func (r *NoHardTabs) ID() string { return "MD010" }

// Name implements rule.Rule.
func (r *NoHardTabs) Name() string { return "no-hard-tabs" }

// Description implements rule.Rule.
func (r *NoHardTabs) Description() string {
	return "Hard tabs should be replaced with spaces"
}

// Metadata implements rule.Rule.
func (r *NoHardTabs) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:       rule.CategoryFormatting,
		Stability:      rule.Stable(),
		IntroducedIn:   "v0.1.0",
		DefaultEnabled: true,
	}
}

// CanFix implements rule.Fixable.
func (r *NoHardTabs) CanFix() bool { return true }

// CheckAST implements rule.ASTRule. One violation per tab character,
// each carrying its own single-character fix, so applying all fixes in
// one pass clears the line.
func (r *NoHardTabs) CheckAST(doc *lint.Document, root ast.Node) ([]lint.Violation, error) {
	var violations []lint.Violation
	inCode := doc.CodeBlockLines(root)

	for i, line := range doc.Lines {
		if inCode[i+1] {
			continue
		}
		lineNum := i + 1
		for col, b := range line {
			if b != '\t' {
				continue
			}
			violations = append(violations, lint.Violation{
				File:     doc.Path,
				Line:     lineNum,
				Column:   col + 1,
				RuleID:   r.ID(),
				RuleName: r.Name(),
				Severity: lint.Warning,
				Message:  "hard tab character",
				Fix: &lint.Fix{
					Description: "replace hard tab with spaces",
					Replacement: []byte("    "),
					Start:       lint.Position{Line: lineNum, Column: col + 1},
					End:         lint.Position{Line: lineNum, Column: col + 2},
				},
			})
		}
	}
	return violations, nil
}

// NoMultipleBlanks checks that blank lines do not repeat.
type NoMultipleBlanks struct{}

// ID implements rule.Rule.
func (r *NoMultipleBlanks) ID() string { return "MD012" }

// Name implements rule.Rule.
func (r *NoMultipleBlanks) Name() string { return "no-multiple-blanks" }

// Description implements rule.Rule.
func (r *NoMultipleBlanks) Description() string {
	return "Multiple consecutive blank lines"
}

// Metadata implements rule.Rule.
func (r *NoMultipleBlanks) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:       rule.CategoryFormatting,
		Stability:      rule.Stable(),
		IntroducedIn:   "v0.1.0",
		DefaultEnabled: true,
	}
}

// CanFix implements rule.Fixable.
func (r *NoMultipleBlanks) CanFix() bool { return true }

// CheckLines implements rule.LineRule.
func (r *NoMultipleBlanks) CheckLines(doc *lint.Document) ([]lint.Violation, error) {
	var violations []lint.Violation
	blanks := 0

	// Splitting on \n leaves an empty element after a trailing newline;
	// it is not a blank line of the document.
	lines := doc.Lines
	if bytes.HasSuffix(doc.Source, []byte("\n")) && len(lines) > 0 {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		if len(bytes.TrimSpace(line)) > 0 {
			blanks = 0
			continue
		}
		blanks++
		if blanks < 2 {
			continue
		}
		lineNum := i + 1
		v := lint.Violation{
			File:     doc.Path,
			Line:     lineNum,
			Column:   1,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Severity: lint.Warning,
			Message:  "multiple consecutive blank lines",
		}
		// Delete the whole extra line, newline included, unless it is
		// the final line of the document.
		if i+1 < len(doc.Lines) {
			v.Fix = &lint.Fix{
				Description: "remove extra blank line",
				Replacement: []byte{},
				Start:       lint.Position{Line: lineNum, Column: 1},
				End:         lint.Position{Line: lineNum + 1, Column: 1},
			}
		}
		violations = append(violations, v)
	}
	return violations, nil
}

// SingleTrailingNewline checks that the document ends with exactly one
// newline character.
type SingleTrailingNewline struct{}

// ID implements rule.Rule.
func (r *SingleTrailingNewline) ID() string { return "MD047" }

// Name implements rule.Rule.
func (r *SingleTrailingNewline) Name() string { return "single-trailing-newline" }

// Description implements rule.Rule.
func (r *SingleTrailingNewline) Description() string {
	return "Files should end with a single newline character"
}

// Metadata implements rule.Rule.
func (r *SingleTrailingNewline) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:       rule.CategoryFormatting,
		Stability:      rule.Stable(),
		IntroducedIn:   "v0.1.0",
		DefaultEnabled: true,
	}
}

// CanFix implements rule.Fixable.
func (r *SingleTrailingNewline) CanFix() bool { return true }

// CheckLines implements rule.LineRule.
func (r *SingleTrailingNewline) CheckLines(doc *lint.Document) ([]lint.Violation, error) {
	if len(doc.Source) == 0 {
		return nil, nil
	}

	if !bytes.HasSuffix(doc.Source, []byte("\n")) {
		lastLine := len(doc.Lines)
		lastCol := len(doc.Lines[lastLine-1]) + 1
		return []lint.Violation{{
			File:     doc.Path,
			Line:     lastLine,
			Column:   lastCol,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Severity: lint.Warning,
			Message:  "file should end with a single newline",
			Fix: &lint.Fix{
				Description: "add trailing newline",
				Replacement: []byte("\n"),
				Start:       lint.Position{Line: lastLine, Column: lastCol},
				End:         lint.Position{Line: lastLine, Column: lastCol},
			},
		}}, nil
	}

	if bytes.HasSuffix(doc.Source, []byte("\n\n")) {
		// Splitting on \n leaves a trailing empty element for the final
		// newline; the extra blank lines precede it.
		lastLine := len(doc.Lines) - 1
		return []lint.Violation{{
			File:     doc.Path,
			Line:     lastLine,
			Column:   1,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Severity: lint.Warning,
			Message:  "file should end with a single newline",
			Fix: &lint.Fix{
				Description: "remove extra trailing newlines",
				Replacement: []byte{},
				Start:       lint.Position{Line: lastLine, Column: 1},
				End:         lint.Position{Line: len(doc.Lines), Column: 1},
			},
		}}, nil
	}
	return nil, nil
}
