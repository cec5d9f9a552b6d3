package table

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samsaffron/markplus/internal/textpos"
)

var tableLineRe = regexp.MustCompile(`^\s*\|.*\|\s*$`)

// IsTableLine reports whether line, once trimmed, starts and ends with a pipe.
func IsTableLine(line string) bool {
	return tableLineRe.MatchString(line)
}

// ExtractWithSpans scans markdown line by line and returns every run of two
// or more consecutive table lines as a table. The separator row is not
// required, so tables with a missing or mangled delimiter row are still
// found. Spans are disjoint and in ascending line order.
func ExtractWithSpans(markdown string) []TableInfo {
	lines := splitLines(markdown)

	var tables []TableInfo
	i := 0
	for i < len(lines) {
		if !IsTableLine(lines[i]) {
			i++
			continue
		}

		start := i
		var rows Table
		for i < len(lines) && IsTableLine(lines[i]) {
			rows = append(rows, ParseRow(lines[i]))
			i++
		}
		if len(rows) < 2 {
			continue
		}

		last := strings.TrimSuffix(lines[i-1], "\r")
		span := textpos.Span{
			Start: textpos.Position{Line: start + 1, Column: 1},
			End:   textpos.Position{Line: i, Column: utf8.RuneCountInString(last)},
		}
		tables = append(tables, TableInfo{
			Table:    rows,
			Position: span.Start,
			Span:     span,
		})
	}

	return tables
}

// TableAt returns the table whose span contains line.
func TableAt(markdown string, line int) (TableInfo, bool) {
	for _, info := range ExtractWithSpans(markdown) {
		if info.Span.ContainsLine(line) {
			return info, true
		}
	}
	return TableInfo{}, false
}
