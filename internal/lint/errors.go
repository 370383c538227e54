package lint

import "fmt"

// ParseError reports that a document's content could not be parsed.
// It aborts analysis of that document only.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DuplicateRuleError reports that two rules were registered under the
// same id. It aborts engine creation.
type DuplicateRuleError struct {
	ID string
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("duplicate rule id %q", e.ID)
}

// RuleError reports that a single rule failed internally while checking
// a single document. Other rules and documents proceed.
type RuleError struct {
	RuleID string
	Path   string
	Err    error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %s on %q: %v", e.RuleID, e.Path, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }
