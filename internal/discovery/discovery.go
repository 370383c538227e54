// Package discovery finds Markdown files for a project run by expanding
// glob patterns.
package discovery

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns matches the Markdown file extensions a project run
// considers when no patterns are configured.
var DefaultPatterns = []string{"**/*.md", "**/*.markdown"}

// Options controls how file discovery behaves.
type Options struct {
	// Patterns is the list of doublestar glob patterns to match files
	// against, relative to BaseDir. Empty means DefaultPatterns.
	Patterns []string

	// BaseDir is the directory to walk from. Defaults to "." if empty.
	BaseDir string
}

// Discover walks BaseDir and returns the files matching any configured
// pattern, deduplicated and sorted so downstream runs are deterministic.
func Discover(opts Options) ([]string, error) {
	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	patterns = validPatterns(patterns)
	if len(patterns) == 0 {
		return nil, nil
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var files []string

	err = filepath.WalkDir(absBase, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(absBase, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if matchesAny(patterns, rel) && !seen[path] {
			seen[path] = true
			files = append(files, filepath.Join(baseDir, filepath.FromSlash(rel)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// validPatterns drops patterns that doublestar rejects.
func validPatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			valid = append(valid, p)
		}
	}
	return valid
}

// matchesAny reports whether rel matches any pattern.
func matchesAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if matched, err := doublestar.Match(p, rel); err == nil && matched {
			return true
		}
	}
	return false
}
