package mdbook

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joshrotenberg/mdbook-lint-sub003/internal/lint"
	"github.com/joshrotenberg/mdbook-lint-sub003/internal/rule"
)

// chapterNumber extracts the numeric prefix from a chapter file name like
// "03-installation.md". Returns false for files outside the numbered
// series.
func chapterNumber(path string) (int, bool) {
	base := filepath.Base(path)
	sep := strings.IndexAny(base, "-_.")
	if sep <= 0 {
		return 0, false
	}
	n, err := strconv.Atoi(base[:sep])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// numberedDoc pairs a document with its chapter number, in collection
// order.
type numberedDoc struct {
	doc    *lint.Document
	number int
}

// numberedDocs returns the documents that carry a numeric prefix, in the
// order they appear in the collection.
func numberedDocs(docs []*lint.Document) []numberedDoc {
	var out []numberedDoc
	for _, d := range docs {
		if n, ok := chapterNumber(d.Path); ok {
			out = append(out, numberedDoc{doc: d, number: n})
		}
	}
	return out
}

// ChapterNumberGaps checks that a numbered chapter series has no holes.
// Each missing number is reported once, attributed to the document
// immediately following the gap.
type ChapterNumberGaps struct{}

// ID implements rule.Rule.
func (r *ChapterNumberGaps) ID() string { return "MDBOOK005" }

// Name implements rule.Rule.
func (r *ChapterNumberGaps) Name() string { return "chapter-number-gaps" }

// Description implements rule.Rule.
func (r *ChapterNumberGaps) Description() string {
	return "Numbered chapter files should form a contiguous sequence"
}

// Metadata implements rule.Rule.
func (r *ChapterNumberGaps) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:       rule.CategoryMdBook,
		Stability:      rule.Stable(),
		IntroducedIn:   "v0.1.0",
		DefaultEnabled: true,
	}
}

// CheckCollection implements rule.CollectionRule.
func (r *ChapterNumberGaps) CheckCollection(docs []*lint.Document) ([]lint.Violation, error) {
	numbered := numberedDocs(docs)
	if len(numbered) < 2 {
		return nil, nil
	}

	// Walk the series in numeric order; duplicates are another rule's
	// concern and do not create gaps.
	byNumber := map[int]*lint.Document{}
	low, high := numbered[0].number, numbered[0].number
	for _, nd := range numbered {
		if _, taken := byNumber[nd.number]; !taken {
			byNumber[nd.number] = nd.doc
		}
		if nd.number < low {
			low = nd.number
		}
		if nd.number > high {
			high = nd.number
		}
	}

	var violations []lint.Violation
	for n := low; n <= high; n++ {
		if _, ok := byNumber[n]; ok {
			continue
		}
		after := nextPresent(byNumber, n, high)
		if after == nil {
			continue
		}
		violations = append(violations, lint.Violation{
			File:     after.Path,
			Line:     1,
			Column:   1,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Severity: lint.Warning,
			Message:  fmt.Sprintf("chapter number %d is missing from the series", n),
		})
	}
	return violations, nil
}

// nextPresent finds the document for the first number above n that exists
// in the series.
func nextPresent(byNumber map[int]*lint.Document, n, high int) *lint.Document {
	for m := n + 1; m <= high; m++ {
		if doc, ok := byNumber[m]; ok {
			return doc
		}
	}
	return nil
}

// DuplicateChapterNumbers checks that no two chapter files claim the same
// number. The duplicate is attributed to the later document in the
// collection.
type DuplicateChapterNumbers struct{}

// ID implements rule.Rule.
func (r *DuplicateChapterNumbers) ID() string { return "MDBOOK006" }

// Name implements rule.Rule.
func (r *DuplicateChapterNumbers) Name() string { return "duplicate-chapter-numbers" }

// Description implements rule.Rule.
func (r *DuplicateChapterNumbers) Description() string {
	return "Chapter numbers must be unique across the book"
}

// Metadata implements rule.Rule.
func (r *DuplicateChapterNumbers) Metadata() rule.Metadata {
	return rule.Metadata{
		Category:       rule.CategoryMdBook,
		Stability:      rule.Stable(),
		IntroducedIn:   "v0.1.0",
		DefaultEnabled: true,
	}
}

// CheckCollection implements rule.CollectionRule.
func (r *DuplicateChapterNumbers) CheckCollection(docs []*lint.Document) ([]lint.Violation, error) {
	var violations []lint.Violation
	firstSeen := map[int]string{}

	for _, nd := range numberedDocs(docs) {
		if earlier, dup := firstSeen[nd.number]; dup {
			violations = append(violations, lint.Violation{
				File:     nd.doc.Path,
				Line:     1,
				Column:   1,
				RuleID:   r.ID(),
				RuleName: r.Name(),
				Severity: lint.Error,
				Message:  fmt.Sprintf("chapter number %d already used by %s", nd.number, earlier),
			})
			continue
		}
		firstSeen[nd.number] = nd.doc.Path
	}
	return violations, nil
}
