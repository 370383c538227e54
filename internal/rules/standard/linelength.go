package standard

import (
	"fmt"
	"unicode/utf8"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/rule"
)

const defaultLineLength = 80

// LineLength checks that lines do not exceed a configured length.
type LineLength struct {
	Limit int
}

// NewLineLength returns the rule with the default limit.
func NewLineLength() *LineLength {
	return &LineLength{Limit: defaultLineLength}
}

// ID implements rule.Rule.
func (r *LineLength) ID() string { return "MD013" }

// Name implements rule.Rule.
func (r *LineLength) Name() string { return "line-length" }

// Description implements rule.Rule.
func (r *LineLength) Description() string {
	return "Lines should not exceed the configured length"
}

// Metadata implements rule.Rule.
func (r *LineLength) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:     rule.CategoryFormatting,
		Stability:    rule.Stable(),
		IntroducedIn: "v0.1.0",
		// Off by default: long lines are a house-style choice.
		DefaultEnabled: false,
	}
}

// DefaultSettings implements rule.Configurable.
func (r *LineLength) DefaultSettings() map[string]any {
	return map[string]any{"line-length": defaultLineLength}
}

// ApplySettings implements rule.Configurable.
func (r *LineLength) ApplySettings(settings map[string]any) error {
	if v, ok := settings["line-length"]; ok {
		n, ok := toInt(v)
		if !ok || n < 1 {
			return fmt.Errorf("line-length must be a positive integer, got %v", v)
		}
		r.Limit = n
	}
	return nil
}

// CheckLines implements rule.LineRule.
func (r *LineLength) CheckLines(doc *lint.Document) ([]lint.Violation, error) {
	limit := r.Limit
	if limit < 1 {
		limit = defaultLineLength
	}

	var violations []lint.Violation
	for i, line := range doc.Lines {
		length := utf8.RuneCount(line)
		if length <= limit {
			continue
		}
		violations = append(violations, lint.Violation{
			File:     doc.Path,
			Line:     i + 1,
			Column:   limit + 1,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Severity: lint.Warning,
			Message:  fmt.Sprintf("line length %d exceeds %d", length, limit),
		})
	}
	return violations, nil
}

// toInt accepts the numeric types YAML decoding may produce.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
