// Package output renders violations for terminals and machine consumers.
package output

import (
	"io"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
)

// Formatter defines the interface for outputting violations.
type Formatter interface {
	Format(w io.Writer, violations []lint.Violation) error
}
