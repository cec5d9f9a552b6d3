package table

// IsCursorInTable reports whether line falls inside the span of any table.
// The column is accepted for the editor interface but not checked: any
// column on a table line counts, including ones past the end of the line.
func IsCursorInTable(markdown string, line, col int) bool {
	_, ok := TableAt(markdown, line)
	return ok
}

// FormatAtPosition reformats tables when line is inside one and returns
// markdown unchanged otherwise. With ScopeDocument every table in the
// document is normalized, not only the one under the cursor; ScopeTable
// limits the rewrite to the containing span.
func (f *Formatter) FormatAtPosition(markdown string, line, col int) string {
	tables := ExtractWithSpans(markdown)
	for _, info := range tables {
		if !info.Span.ContainsLine(line) {
			continue
		}
		if f.scope == ScopeTable {
			return f.rewrite(markdown, []TableInfo{info})
		}
		return f.rewrite(markdown, tables)
	}
	return markdown
}

// FormatAtPosition uses the default formatter, which rewrites the whole
// document.
func FormatAtPosition(markdown string, line, col int) string {
	return defaultFormatter.FormatAtPosition(markdown, line, col)
}
