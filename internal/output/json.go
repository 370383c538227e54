package output

import (
	"encoding/json"
	"io"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
)

// JSONFormatter outputs violations as a JSON array. The record shape is
// the stable external contract: {file, line, column, rule, name,
// severity, message, fix?}.
type JSONFormatter struct{}

type jsonViolation struct {
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Rule     string   `json:"rule"`
	Name     string   `json:"name"`
	Severity string   `json:"severity"`
	Message  string   `json:"message"`
	Fix      *jsonFix `json:"fix,omitempty"`
}

type jsonFix struct {
	Description string  `json:"description"`
	Replacement *string `json:"replacement"`
	StartLine   int     `json:"start_line"`
	StartColumn int     `json:"start_column"`
	EndLine     int     `json:"end_line"`
	EndColumn   int     `json:"end_column"`
}

// Format writes violations as a pretty-printed JSON array. An empty
// slice produces [].
func (f *JSONFormatter) Format(w io.Writer, violations []lint.Violation) error {
	items := make([]jsonViolation, 0, len(violations))
	for _, v := range violations {
		item := jsonViolation{
			File:     v.File,
			Line:     v.Line,
			Column:   v.Column,
			Rule:     v.RuleID,
			Name:     v.RuleName,
			Severity: string(v.Severity),
			Message:  v.Message,
		}
		if v.Fix != nil {
			jf := &jsonFix{
				Description: v.Fix.Description,
				StartLine:   v.Fix.Start.Line,
				StartColumn: v.Fix.Start.Column,
				EndLine:     v.Fix.End.Line,
				EndColumn:   v.Fix.End.Column,
			}
			if v.Fix.Replacement != nil {
				s := string(v.Fix.Replacement)
				jf.Replacement = &s
			}
			item.Fix = jf
		}
		items = append(items, item)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
