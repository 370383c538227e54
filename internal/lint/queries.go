package lint

import "github.com/yuin/goldmark/ast"

// Headings returns the heading nodes under root in document order. Both
// ATX (#) and setext (underline) headings appear as *ast.Heading.
func (d *Document) Headings(root ast.Node) []*ast.Heading {
	var headings []*ast.Heading
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			headings = append(headings, h)
		}
		return ast.WalkContinue, nil
	})
	return headings
}

// HeadingLevel returns the 1-6 depth of a heading node, or false when the
// node is not a heading.
func HeadingLevel(n ast.Node) (int, bool) {
	h, ok := n.(*ast.Heading)
	if !ok {
		return 0, false
	}
	return h.Level, true
}

// CodeBlock is a handle to a fenced or indented code block node.
type CodeBlock struct {
	Node   ast.Node
	Fenced bool
}

// CodeBlocks returns the code block nodes under root in document order.
func (d *Document) CodeBlocks(root ast.Node) []CodeBlock {
	var blocks []CodeBlock
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.FencedCodeBlock:
			blocks = append(blocks, CodeBlock{Node: n, Fenced: true})
		case *ast.CodeBlock:
			blocks = append(blocks, CodeBlock{Node: n, Fenced: false})
		}
		return ast.WalkContinue, nil
	})
	return blocks
}

// NodePosition maps a node back to its 1-based source position. It returns
// false for nodes with no recorded source segment (e.g. an empty document
// node).
func (d *Document) NodePosition(n ast.Node) (line, column int, ok bool) {
	if offset, found := d.nodeOffset(n); found {
		return d.LineOfOffset(offset), d.ColumnOfOffset(offset), true
	}
	return 0, 0, false
}

// nodeOffset finds the first source byte offset attributable to n.
func (d *Document) nodeOffset(n ast.Node) (int, bool) {
	// Fenced code blocks anchor on the opening fence line, which is the
	// line before the info string or the first content line.
	if fcb, ok := n.(*ast.FencedCodeBlock); ok {
		if fcb.Info != nil {
			return fcb.Info.Segment.Start, true
		}
	}

	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(0).Start, true
	}

	if t, ok := n.(*ast.Text); ok {
		return t.Segment.Start, true
	}

	// Inline nodes carry no segment of their own; use the first text
	// descendant.
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if offset, ok := d.nodeOffset(c); ok {
			return offset, true
		}
	}
	return 0, false
}

// NodeText returns the literal source text of a node by concatenating its
// recorded line segments. For inline nodes it concatenates text
// descendants.
func (d *Document) NodeText(n ast.Node) []byte {
	if t, ok := n.(*ast.Text); ok {
		return t.Segment.Value(d.Source)
	}

	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		var out []byte
		segs := n.Lines()
		for i := 0; i < segs.Len(); i++ {
			seg := segs.At(i)
			out = append(out, seg.Value(d.Source)...)
		}
		return out
	}

	var out []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, d.NodeText(c)...)
	}
	return out
}

// CodeBlockLines returns the set of 1-based line numbers covered by code
// blocks under root, including fence lines. Whitespace rules use this to
// skip content where literal whitespace is intentional.
func (d *Document) CodeBlockLines(root ast.Node) map[int]bool {
	lines := map[int]bool{}

	for _, cb := range d.CodeBlocks(root) {
		if cb.Fenced {
			d.addFencedLines(cb.Node.(*ast.FencedCodeBlock), lines)
		} else {
			d.addSegmentLines(cb.Node, lines)
		}
	}
	return lines
}

// addFencedLines marks the opening fence, content lines, and closing fence.
func (d *Document) addFencedLines(fcb *ast.FencedCodeBlock, set map[int]bool) {
	openLine := d.fencedOpenLine(fcb)
	if openLine > 0 {
		set[openLine] = true
	}

	segs := fcb.Lines()
	lastContent := 0
	for i := 0; i < segs.Len(); i++ {
		ln := d.LineOfOffset(segs.At(i).Start)
		set[ln] = true
		if ln > lastContent {
			lastContent = ln
		}
	}

	closeLine := 0
	if lastContent > 0 {
		closeLine = lastContent + 1
	} else if openLine > 0 {
		closeLine = openLine + 1
	}
	if closeLine > 0 && closeLine <= len(d.Lines) {
		set[closeLine] = true
	}
}

// FencePosition returns the 1-based position of a fenced code block's
// opening fence, defaulting to 1:1 when it cannot be determined (an empty
// block with no info string at the top of the document). Rules that flag
// fenced blocks anchor on this position so findings about the same block
// line up for deduplication.
func (d *Document) FencePosition(fcb *ast.FencedCodeBlock) (line, column int) {
	if fcb.Info != nil {
		offset := fcb.Info.Segment.Start
		return d.LineOfOffset(offset), d.ColumnOfOffset(offset)
	}
	if ln := d.fencedOpenLine(fcb); ln > 0 {
		return ln, 1
	}
	return 1, 1
}

// fencedOpenLine returns the 1-based line of the opening fence, or 0 when
// it cannot be determined.
func (d *Document) fencedOpenLine(fcb *ast.FencedCodeBlock) int {
	if fcb.Info != nil {
		return d.LineOfOffset(fcb.Info.Segment.Start)
	}
	if fcb.Lines().Len() > 0 {
		first := d.LineOfOffset(fcb.Lines().At(0).Start)
		if first > 1 {
			return first - 1
		}
		return 1
	}
	return 0
}

// addSegmentLines marks every content line of a block node.
func (d *Document) addSegmentLines(n ast.Node, set map[int]bool) {
	segs := n.Lines()
	for i := 0; i < segs.Len(); i++ {
		set[d.LineOfOffset(segs.At(i).Start)] = true
	}
}
