package table

import (
	"strings"
)

// ColumnWidths returns, per header column, the widest cell in that column.
// Separator rows are skipped because Format regenerates them. Cells past
// the header width do not widen anything.
func (f *Formatter) ColumnWidths(t Table) []int {
	if len(t) == 0 {
		return nil
	}

	widths := make([]int, len(t[0]))
	for i, row := range t {
		if t.IsSeparator(i) {
			continue
		}
		for c, cell := range row {
			if c < len(widths) {
				widths[c] = max(widths[c], f.width.measure(cell))
			}
		}
	}
	return widths
}

// Format renders t as a header row, a separator row and the remaining
// non-separator rows, each cell padded to widths. Cells are never
// truncated. Rows shorter than the header render only the cells they have.
func (f *Formatter) Format(t Table, widths []int) string {
	if len(t) == 0 {
		return ""
	}

	var aligns []Alignment
	if f.keepAlignment {
		aligns = t.Alignments()
	}

	var sb strings.Builder
	f.writeRow(&sb, t[0], widths, aligns)

	for c, w := range widths {
		sb.WriteString(separatorCell(w, alignAt(aligns, c, f.keepAlignment)))
	}
	sb.WriteString("|\n")

	for i := 1; i < len(t); i++ {
		if t.IsSeparator(i) {
			continue
		}
		f.writeRow(&sb, t[i], widths, aligns)
	}

	return sb.String()
}

func (f *Formatter) writeRow(sb *strings.Builder, row []string, widths []int, aligns []Alignment) {
	for c, cell := range row {
		if c >= len(widths) {
			break
		}
		sb.WriteString("| ")
		sb.WriteString(f.pad(cell, widths[c], alignAt(aligns, c, f.keepAlignment)))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")
}

func (f *Formatter) pad(cell string, width int, align Alignment) string {
	gap := width - f.width.measure(cell)
	if gap <= 0 {
		return cell
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + cell
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", gap-left)
	default:
		return cell + strings.Repeat(" ", gap)
	}
}

// alignAt returns the alignment for column c. Without alignment
// preservation every column is left-aligned.
func alignAt(aligns []Alignment, c int, keep bool) Alignment {
	if !keep {
		return AlignLeft
	}
	if c < len(aligns) {
		return aligns[c]
	}
	return AlignNone
}

// separatorCell renders one column of the separator row, width+2 characters
// between pipes. An empty centered column still needs one dash to parse.
func separatorCell(width int, align Alignment) string {
	dashes := strings.Repeat("-", width)
	switch align {
	case AlignLeft:
		return "|:" + dashes + "-"
	case AlignRight:
		return "|-" + dashes + ":"
	case AlignCenter:
		if width == 0 {
			dashes = "-"
		}
		return "|:" + dashes + ":"
	default:
		return "|-" + dashes + "-"
	}
}

// ColumnWidths measures t with the default formatter.
func ColumnWidths(t Table) []int {
	return defaultFormatter.ColumnWidths(t)
}

// Format renders t with the default formatter.
func Format(t Table, widths []int) string {
	return defaultFormatter.Format(t, widths)
}
