// Package fix applies the span-based repairs attached to violations.
package fix

import (
	"fmt"
	"sort"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
)

// Apply substitutes a fix's replacement text for its span in source and
// returns the new content. Fixes with no replacement text (the rule
// recognized the defect but has no automatic repair) return source
// unchanged and applied=false.
func Apply(source []byte, f *lint.Fix) (out []byte, applied bool, err error) {
	if f == nil || f.Replacement == nil {
		return source, false, nil
	}
	if !f.Valid() {
		return source, false, fmt.Errorf("fix span inverts: %d:%d..%d:%d",
			f.Start.Line, f.Start.Column, f.End.Line, f.End.Column)
	}

	starts := lineStarts(source)
	begin, err := offsetOf(starts, len(source), f.Start)
	if err != nil {
		return source, false, err
	}
	end, err := offsetOf(starts, len(source), f.End)
	if err != nil {
		return source, false, err
	}
	if end < begin {
		return source, false, fmt.Errorf("fix span inverts after offset mapping")
	}

	out = make([]byte, 0, len(source)-(end-begin)+len(f.Replacement))
	out = append(out, source[:begin]...)
	out = append(out, f.Replacement...)
	out = append(out, source[end:]...)
	return out, true, nil
}

// ApplyAll applies every applicable fix carried by violations, working
// from the end of the document backwards so earlier spans stay valid.
// It returns the fixed content and how many fixes were applied.
func ApplyAll(source []byte, violations []lint.Violation) ([]byte, int) {
	fixable := make([]*lint.Fix, 0, len(violations))
	for _, v := range violations {
		if v.Fix != nil && v.Fix.Replacement != nil && v.Fix.Valid() {
			fixable = append(fixable, v.Fix)
		}
	}
	// Strict descending order; equal start positions must compare false
	// both ways or sort.Slice misbehaves.
	sort.Slice(fixable, func(i, j int) bool {
		a, b := fixable[i].Start, fixable[j].Start
		if a.Line != b.Line {
			return a.Line > b.Line
		}
		return a.Column > b.Column
	})

	applied := 0
	for _, f := range fixable {
		fixed, ok, err := Apply(source, f)
		if err != nil || !ok {
			continue
		}
		source = fixed
		applied++
	}
	return source, applied
}

// lineStarts returns the byte offset of the first character of each line.
func lineStarts(source []byte) []int {
	starts := []int{0}
	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// offsetOf maps a 1-based position to a byte offset. A position one past
// the last column of a line is permitted, delimiting an end-exclusive span.
func offsetOf(starts []int, size int, p lint.Position) (int, error) {
	if p.Line < 1 || p.Line > len(starts) {
		return 0, fmt.Errorf("line %d out of range", p.Line)
	}
	offset := starts[p.Line-1] + p.Column - 1
	if p.Column < 1 || offset > size {
		return 0, fmt.Errorf("column %d out of range on line %d", p.Column, p.Line)
	}
	return offset, nil
}
