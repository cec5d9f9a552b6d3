// Package table locates pipe-delimited Markdown tables in a document and
// rewrites them in a canonical padded form.
//
// Two extractors coexist. ExtractAll uses goldmark's GFM table grammar and
// only reports tables a Markdown renderer would accept; it backs detection.
// ExtractWithSpans is a line heuristic that accepts any run of two or more
// pipe-framed lines, so broken tables can be repaired; it backs formatting
// and cursor queries. Every call re-parses its input. Nothing is cached.
package table

import (
	"regexp"
	"strings"

	"github.com/samsaffron/markplus/internal/textpos"
)

// Table is an ordered list of rows of trimmed cell text. Row 0 is the header.
type Table [][]string

// TableInfo is a table found by the line heuristic together with the lines
// it occupies. Position always equals Span.Start.
type TableInfo struct {
	Table    Table            `yaml:"rows"`
	Position textpos.Position `yaml:"position"`
	Span     textpos.Span     `yaml:"span"`
}

// Located is a table found by the structural parser and where it starts.
type Located struct {
	Table    Table            `yaml:"rows"`
	Position textpos.Position `yaml:"position"`
}

// Formatted pairs the canonical text of a table with the span it replaces.
type Formatted struct {
	Text string       `yaml:"text"`
	Span textpos.Span `yaml:"span"`
}

// Alignment is a column alignment read from a separator row.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "none"
	}
}

var separatorCellRe = regexp.MustCompile(`^:?-+:?$`)

// Columns returns the column count, which is the width of the header row.
func (t Table) Columns() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Header returns row 0, or nil for an empty table.
func (t Table) Header() []string {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// IsSeparator reports whether row i is the delimiter row, such as |---|:-:|.
// Only the row directly under the header can be one; dash-only rows further
// down are data.
func (t Table) IsSeparator(i int) bool {
	if i != 1 || len(t) < 2 {
		return false
	}
	return isSeparatorRow(t[1])
}

// Alignments returns one alignment per column, taken from the separator
// row. Without a separator, or past its last cell, columns are AlignNone.
func (t Table) Alignments() []Alignment {
	aligns := make([]Alignment, t.Columns())
	if !t.IsSeparator(1) {
		return aligns
	}
	for c, cell := range t[1] {
		if c < len(aligns) {
			aligns[c] = parseAlignment(cell)
		}
	}
	return aligns
}

func isSeparatorRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	for _, cell := range row {
		if !separatorCellRe.MatchString(cell) {
			return false
		}
	}
	return true
}

func parseAlignment(cell string) Alignment {
	left := strings.HasPrefix(cell, ":")
	right := strings.HasSuffix(cell, ":")
	switch {
	case left && right:
		return AlignCenter
	case right:
		return AlignRight
	case left:
		return AlignLeft
	default:
		return AlignNone
	}
}

// ParseRow splits a table line into trimmed cells. One leading and one
// trailing pipe are dropped before splitting, so "| a | b |" yields
// ["a" "b"] and "|||" yields two empty cells.
func ParseRow(line string) []string {
	row := strings.TrimSpace(line)
	row = strings.TrimPrefix(row, "|")
	row = strings.TrimSuffix(row, "|")

	cells := strings.Split(row, "|")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

// splitLines splits text into lines the way the extractor numbers them:
// a final newline does not start an extra empty line. Carriage returns are
// left on the lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
