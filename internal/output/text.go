package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
)

var (
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	ruleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// TextFormatter outputs violations in human-readable text format, one
// per line: file:line:col severity rule message. When Color is false all
// styling is suppressed (for pipes and tests).
type TextFormatter struct {
	Color bool
}

// Format implements Formatter.
func (f *TextFormatter) Format(w io.Writer, violations []lint.Violation) error {
	for _, v := range violations {
		location := fmt.Sprintf("%s:%d:%d", v.File, v.Line, v.Column)
		severity := string(v.Severity)
		ruleID := v.RuleID

		if f.Color {
			location = locationStyle.Render(location)
			ruleID = ruleStyle.Render(ruleID)
			severity = f.severityStyle(v.Severity).Render(severity)
		}

		if _, err := fmt.Fprintf(w, "%s %s %s %s\n", location, severity, ruleID, v.Message); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) severityStyle(s lint.Severity) lipgloss.Style {
	switch s {
	case lint.Error:
		return errorStyle
	case lint.Warning:
		return warningStyle
	default:
		return infoStyle
	}
}
