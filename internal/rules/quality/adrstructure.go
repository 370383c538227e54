package quality

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/yuin/goldmark/ast"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/rule"
)

const defaultADRPattern = "*adr*"

// defaultADRSections are the headings an architecture decision record is
// expected to carry, after its title.
var defaultADRSections = []string{"Status", "Context", "Decision", "Consequences"}

// ADRStructure checks that architecture decision records contain the
// conventional sections. It only examines files whose path matches the
// configured glob pattern.
type ADRStructure struct {
	Pattern  string
	Sections []string
}

// NewADRStructure returns the rule with the default pattern and sections.
func NewADRStructure() *ADRStructure {
	return &ADRStructure{
		Pattern:  defaultADRPattern,
		Sections: defaultADRSections,
	}
}

// ID implements rule.Rule.
func (r *ADRStructure) ID() string { return "LT002" }

// Name implements rule.Rule.
func (r *ADRStructure) Name() string { return "adr-structure" }

// Description implements rule.Rule.
func (r *ADRStructure) Description() string {
	return "Architecture decision records should contain the standard sections"
}

// Metadata implements rule.Rule.
func (r *ADRStructure) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:       rule.CategoryContent,
		Stability:      rule.Stable(),
		IntroducedIn:   "v0.1.0",
		DefaultEnabled: true,
	}
}

// DefaultSettings implements rule.Configurable.
func (r *ADRStructure) DefaultSettings() map[string]any {
	sections := make([]any, len(defaultADRSections))
	for i, s := range defaultADRSections {
		sections[i] = s
	}
	return map[string]any{
		"pattern":  defaultADRPattern,
		"sections": sections,
	}
}

// ApplySettings implements rule.Configurable.
func (r *ADRStructure) ApplySettings(settings map[string]any) error {
	if v, ok := settings["pattern"]; ok {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("pattern must be a string, got %T", v)
		}
		if _, err := glob.Compile(s); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", s, err)
		}
		r.Pattern = s
	}
	if v, ok := settings["sections"]; ok {
		items, ok := v.([]any)
		if !ok {
			return fmt.Errorf("sections must be a list, got %T", v)
		}
		sections := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("section names must be strings, got %T", item)
			}
			sections = append(sections, s)
		}
		r.Sections = sections
	}
	return nil
}

// CheckAST implements rule.ASTRule.
func (r *ADRStructure) CheckAST(doc *lint.Document, root ast.Node) ([]lint.Violation, error) {
	pattern := r.Pattern
	if pattern == "" {
		pattern = defaultADRPattern
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}
	if !g.Match(doc.Path) && !g.Match(filepath.Base(doc.Path)) {
		return nil, nil
	}

	present := map[string]bool{}
	for _, h := range doc.Headings(root) {
		title := strings.TrimSpace(string(doc.NodeText(h)))
		present[strings.ToLower(title)] = true
	}

	sections := r.Sections
	if len(sections) == 0 {
		sections = defaultADRSections
	}

	var violations []lint.Violation
	for _, want := range sections {
		if present[strings.ToLower(want)] {
			continue
		}
		violations = append(violations, lint.Violation{
			File:     doc.Path,
			Line:     1,
			Column:   1,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Severity: lint.Warning,
			Message:  fmt.Sprintf("missing %q section", want),
		})
	}
	return violations, nil
}
