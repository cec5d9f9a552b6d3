package input

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CursorSpec is a file with a cursor position, as editors print it.
type CursorSpec struct {
	Path   string
	Line   int // 1-indexed
	Column int // 1-indexed, 1 when omitted
}

var cursorSpecRe = regexp.MustCompile(`^(.+?):(\d+)(?::(\d+))?$`)

// ParseCursorSpec parses a specification like "README.md:12:5"
// Supported formats:
//   - README.md:12   - line 12, column 1
//   - README.md:12:5 - line 12, column 5
func ParseCursorSpec(spec string) (CursorSpec, error) {
	matches := cursorSpecRe.FindStringSubmatch(spec)
	if matches == nil {
		return CursorSpec{}, fmt.Errorf("invalid cursor spec %q: want path:line[:col]", spec)
	}

	cs := CursorSpec{Path: matches[1], Column: 1}

	line, err := strconv.Atoi(matches[2])
	if err != nil || line < 1 {
		return CursorSpec{}, fmt.Errorf("invalid line: %s", matches[2])
	}
	cs.Line = line

	if matches[3] != "" {
		col, err := strconv.Atoi(matches[3])
		if err != nil || col < 1 {
			return CursorSpec{}, fmt.Errorf("invalid column: %s", matches[3])
		}
		cs.Column = col
	}

	return cs, nil
}

// String formats the spec back to path:line:col.
func (cs CursorSpec) String() string {
	return fmt.Sprintf("%s:%d:%d", cs.Path, cs.Line, cs.Column)
}

// ExtractLines extracts lines from content based on start and end line numbers.
// Line numbers are 1-indexed. 0 for start means from beginning, 0 for end means to end.
func ExtractLines(content string, startLine, endLine int) string {
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	start := 0
	if startLine > 0 {
		start = startLine - 1
	}
	if start >= totalLines {
		return ""
	}

	end := totalLines
	if endLine > 0 && endLine < totalLines {
		end = endLine
	}

	if start >= end {
		return ""
	}

	return strings.Join(lines[start:end], "\n")
}
