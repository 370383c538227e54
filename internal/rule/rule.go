// Package rule defines the contract every lint rule implements and the
// registry that holds them.
package rule

import (
	"github.com/yuin/goldmark/ast"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
)

// Rule is the surface shared by every rule regardless of capability.
// A concrete rule additionally implements exactly one of LineRule,
// ASTRule, or CollectionRule.
type Rule interface {
	ID() string
	Name() string
	Description() string
	Metadata() Metadata
}

// LineRule checks a document using only its raw lines and content. It
// never receives the syntax tree.
type LineRule interface {
	Rule
	CheckLines(doc *lint.Document) ([]lint.Violation, error)
}

// ASTRule checks a document against its parsed syntax tree. The root
// handle is borrowed for the duration of the call and must not be
// retained or mutated.
type ASTRule interface {
	Rule
	CheckAST(doc *lint.Document, root ast.Node) ([]lint.Violation, error)
}

// CollectionRule checks an entire ordered document set. It is the only
// capability permitted to reason across documents.
type CollectionRule interface {
	Rule
	CheckCollection(docs []*lint.Document) ([]lint.Violation, error)
}

// Fixable is implemented by rules that attach automatic fixes to their
// violations.
type Fixable interface {
	CanFix() bool
}

// CanFix reports whether a rule advertises automatic fixes. Rules that do
// not implement Fixable cannot fix.
func CanFix(r Rule) bool {
	f, ok := r.(Fixable)
	return ok && f.CanFix()
}

// Configurable is implemented by rules that have user-tunable settings.
type Configurable interface {
	ApplySettings(settings map[string]any) error
	DefaultSettings() map[string]any
}
