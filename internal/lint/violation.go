package lint

// Severity indicates the severity level of a violation.
type Severity string

// Severity levels.
const (
	Error   Severity = "error"
	Warning Severity = "warning"
	Info    Severity = "info"
)

// Position is a 1-based line/column location in a document.
type Position struct {
	Line   int
	Column int
}

// Before reports whether p is at or before q in document order.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column <= q.Column
}

// Fix describes a mechanical repair for a violation. Replacement is the
// text substituted for the span [Start, End); a nil Replacement means the
// rule recognized the defect but has no automatic repair for it.
type Fix struct {
	Description string
	Replacement []byte
	Start       Position
	End         Position
}

// Valid reports whether the fix span does not invert.
func (f *Fix) Valid() bool {
	return f.Start.Line >= 1 && f.Start.Column >= 1 && f.Start.Before(f.End)
}

// Violation represents a single lint finding.
type Violation struct {
	File     string
	RuleID   string
	RuleName string
	Severity Severity
	Message  string
	Line     int
	Column   int
	Fix      *Fix
}
