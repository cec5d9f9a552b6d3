package table

import (
	"bytes"
	"strings"

	"github.com/samsaffron/markplus/internal/textpos"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// gfm is a shared goldmark instance with the GFM table extension.
var gfm = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// ExtractAll parses markdown with a GFM table grammar and returns every
// table the grammar accepts, header row first. Pipe rows without a valid
// delimiter row are not tables here.
func ExtractAll(markdown string) []Located {
	source := []byte(markdown)
	doc := gfm.Parser().Parse(text.NewReader(source))

	var found []Located
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		tbl, ok := n.(*east.Table)
		if !ok {
			return ast.WalkContinue, nil
		}

		offset, ok := firstOffset(tbl)
		if !ok {
			return ast.WalkSkipChildren, nil
		}
		found = append(found, Located{
			Table:    tableRows(tbl, source),
			Position: textpos.OffsetToPosition(markdown, lineStart(source, offset)),
		})
		return ast.WalkSkipChildren, nil
	})

	return found
}

// HasTableElements reports whether markdown contains at least one table
// that a GFM renderer would accept.
func HasTableElements(markdown string) bool {
	if !strings.Contains(markdown, "|") {
		return false
	}
	return len(ExtractAll(markdown)) > 0
}

func tableRows(tbl *east.Table, source []byte) Table {
	var rows Table
	for row := tbl.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, cellText(cell, source))
		}
		rows = append(rows, cells)
	}
	return rows
}

// cellText concatenates the inline text below a cell. Emphasis and code
// span markers are dropped; their content is kept.
func cellText(cell ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(cell, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			sb.Write(node.Segment.Value(source))
		case *ast.String:
			sb.Write(node.Value)
		case *ast.AutoLink:
			sb.Write(node.Label(source))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// firstOffset finds the byte offset of the first source segment inside the
// table, which always lies on the header line.
func firstOffset(tbl *east.Table) (int, bool) {
	offset, found := 0, false
	_ = ast.Walk(tbl, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
			offset, found = n.Lines().At(0).Start, true
			return ast.WalkStop, nil
		}
		if t, ok := n.(*ast.Text); ok {
			offset, found = t.Segment.Start, true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return offset, found
}

// lineStart returns the offset where the table begins on the line containing
// offset: past indentation and any blockquote markers, so a table inside
// "> | a |" starts at its pipe.
func lineStart(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	start := bytes.LastIndexByte(source[:offset], '\n') + 1
	for start < offset {
		switch source[start] {
		case ' ', '\t', '>':
			start++
			continue
		}
		break
	}
	return start
}
