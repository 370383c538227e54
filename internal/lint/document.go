package lint

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Document holds a Markdown document: its source, path, and line index.
// The syntax tree is built lazily on first use and cached, so documents
// checked only by line-based rules never pay for a parse.
type Document struct {
	Path   string
	Source []byte
	Lines  [][]byte

	tree   ast.Node
	parsed bool
}

// NewDocument returns a Document for the given source. It fails when the
// source is not valid UTF-8 text.
func NewDocument(path string, source []byte) (*Document, error) {
	if !utf8.Valid(source) {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("content is not valid UTF-8")}
	}
	return &Document{
		Path:   path,
		Source: source,
		Lines:  bytes.Split(source, []byte("\n")),
	}, nil
}

// Tree returns the root of the document's syntax tree, parsing the source
// on first call. The returned node is borrowed: rules must not retain it
// beyond the check call, and must not mutate it.
func (d *Document) Tree() (root ast.Node, err error) {
	if d.parsed {
		return d.tree, nil
	}

	// goldmark signals malformed input by panicking deep in the parser;
	// convert that into a per-document ParseError.
	defer func() {
		if r := recover(); r != nil {
			root = nil
			err = &ParseError{Path: d.Path, Err: fmt.Errorf("%v", r)}
		}
	}()

	reader := text.NewReader(d.Source)
	d.tree = goldmark.DefaultParser().Parse(reader)
	d.parsed = true
	return d.tree, nil
}

// LineOfOffset converts a byte offset in Source to a 1-based line number.
func (d *Document) LineOfOffset(offset int) int {
	line := 1
	for i := 0; i < offset && i < len(d.Source); i++ {
		if d.Source[i] == '\n' {
			line++
		}
	}
	return line
}

// ColumnOfOffset converts a byte offset in Source to a 1-based column
// number within its line.
func (d *Document) ColumnOfOffset(offset int) int {
	col := 1
	for i := offset - 1; i >= 0 && i < len(d.Source); i-- {
		if d.Source[i] == '\n' {
			break
		}
		col++
	}
	return col
}
