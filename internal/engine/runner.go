package engine

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/log"
)

// Runner drives a multi-file lint run: it reads each file, builds a
// Document, runs the per-document pass, and after all documents are done
// runs the collection pass over the full set.
//
// Per-document analyses are independent (the registry and config are
// read-only for the run), so the runner fans them out across workers.
// Collection rules are a hard barrier: they start only after every
// per-document pass has completed.
type Runner struct {
	Engine *Engine
	Log    *log.Logger
}

// Result holds the output of a lint run.
type Result struct {
	Violations []lint.Violation
	Errors     []error
}

// Run lints the files at the given paths and returns all violations,
// sorted by (file, line, column, rule id), plus any per-file or per-rule
// errors. A failure in one file never aborts its siblings.
func (r *Runner) Run(ctx context.Context, paths []string) *Result {
	res := &Result{}

	kept := make([]string, 0, len(paths))
	for _, path := range paths {
		if r.isIgnored(path) {
			r.logf("skipping ignored file %s", path)
			continue
		}
		kept = append(kept, path)
	}

	// Documents are collected by index so the collection pass sees them
	// in the caller's order regardless of worker scheduling.
	docs := make([]*lint.Document, len(kept))

	var mu sync.Mutex
	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range kept {
		eg.Go(func() error {
			doc, violations, err := r.lintFile(path)

			mu.Lock()
			defer mu.Unlock()
			docs[i] = doc
			res.Violations = append(res.Violations, violations...)
			if err != nil {
				res.Errors = append(res.Errors, err)
			}
			return nil
		})
	}
	_ = eg.Wait()

	// Barrier reached: every per-document pass is done.
	present := make([]*lint.Document, 0, len(docs))
	for _, d := range docs {
		if d != nil {
			present = append(present, d)
		}
	}
	collected, err := r.Engine.LintCollection(present)
	res.Violations = append(res.Violations, collected...)
	if err != nil {
		res.Errors = append(res.Errors, err)
	}

	sortViolations(res.Violations)
	sort.Slice(res.Errors, func(i, j int) bool {
		return res.Errors[i].Error() < res.Errors[j].Error()
	})
	return res
}

// lintFile reads and lints a single file. The returned document is non-nil
// whenever the file could be read and decoded, even if rules failed.
func (r *Runner) lintFile(path string) (*lint.Document, []lint.Violation, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	lineOffset := 0
	if r.Engine.Config().StripFrontMatter() {
		var prefix []byte
		prefix, source = lint.StripFrontMatter(source)
		lineOffset = bytes.Count(prefix, []byte("\n"))
	}

	doc, err := lint.NewDocument(path, source)
	if err != nil {
		return nil, nil, err
	}

	r.logf("linting %s", path)
	violations, err := r.Engine.LintDocument(doc)
	offsetViolations(violations, lineOffset)
	return doc, violations, err
}

// offsetViolations shifts line numbers back to the original file's
// coordinates after front matter was stripped. Fix spans shift too, so
// they apply cleanly to the unstripped file.
func offsetViolations(violations []lint.Violation, lines int) {
	if lines == 0 {
		return
	}
	for i := range violations {
		violations[i].Line += lines
		if f := violations[i].Fix; f != nil {
			f.Start.Line += lines
			f.End.Line += lines
		}
	}
}

// isIgnored reports whether path matches any configured ignore pattern.
func (r *Runner) isIgnored(path string) bool {
	cleanPath := filepath.Clean(path)

	for _, pattern := range r.Engine.Config().Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(path) || g.Match(cleanPath) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}

func (r *Runner) logf(format string, args ...any) {
	if r.Log != nil {
		r.Log.Printf(format, args...)
	}
}
