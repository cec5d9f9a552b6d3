package table

import (
	"sort"
	"strings"
)

// FormatAllTables reformats every table found by ExtractWithSpans and
// leaves all other lines byte-for-byte as they were. A document without
// tables is returned unchanged.
func (f *Formatter) FormatAllTables(markdown string) string {
	tables := ExtractWithSpans(markdown)
	if len(tables) == 0 {
		return markdown
	}
	return f.rewrite(markdown, tables)
}

// FormattedTables returns the canonical text of every table together with
// the span it would replace, without touching the document.
func (f *Formatter) FormattedTables(markdown string) []Formatted {
	tables := ExtractWithSpans(markdown)
	out := make([]Formatted, 0, len(tables))
	for _, info := range tables {
		out = append(out, Formatted{
			Text: f.Format(info.Table, f.ColumnWidths(info.Table)),
			Span: info.Span,
		})
	}
	return out
}

// rewrite splices the formatted form of each table over its span.
// Replacements run from the last span to the first by start line, so a
// replacement that changes the line count never shifts a span that is
// still pending.
func (f *Formatter) rewrite(markdown string, tables []TableInfo) string {
	pending := make([]TableInfo, len(tables))
	copy(pending, tables)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Span.Start.Line > pending[j].Span.Start.Line
	})

	lines := splitLines(markdown)
	for _, info := range pending {
		start, end := info.Span.Start.Line-1, info.Span.End.Line
		if start < 0 || end > len(lines) || start >= end {
			continue
		}

		replacement := splitLines(f.Format(info.Table, f.ColumnWidths(info.Table)))
		if strings.HasSuffix(lines[start], "\r") {
			for i := range replacement {
				replacement[i] += "\r"
			}
		}
		lines = splice(lines, start, end, replacement)
	}

	out := strings.Join(lines, "\n")
	if strings.HasSuffix(markdown, "\n") {
		out += "\n"
	}
	return out
}

// splice returns lines with lines[start:end] replaced by replacement.
func splice(lines []string, start, end int, replacement []string) []string {
	out := make([]string, 0, len(lines)-(end-start)+len(replacement))
	out = append(out, lines[:start]...)
	out = append(out, replacement...)
	return append(out, lines[end:]...)
}

// FormatAllTables reformats every table with the default formatter.
func FormatAllTables(markdown string) string {
	return defaultFormatter.FormatAllTables(markdown)
}

// FormattedTables renders every table with the default formatter.
func FormattedTables(markdown string) []Formatted {
	return defaultFormatter.FormattedTables(markdown)
}
