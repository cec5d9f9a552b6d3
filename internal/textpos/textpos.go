// Package textpos maps byte offsets in text to 1-based line/column positions
// as reported by editors.
package textpos

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position is a 1-based line and column. Column counts runes, not bytes.
type Position struct {
	Line   int `yaml:"line"`
	Column int `yaml:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is an inclusive range of lines. Start.Column is always 1 for spans
// produced by line scans; End.Column is the rune length of the last line.
type Span struct {
	Start Position `yaml:"start"`
	End   Position `yaml:"end"`
}

// ContainsLine reports whether line falls within [Start.Line, End.Line].
func (s Span) ContainsLine(line int) bool {
	return line >= s.Start.Line && line <= s.End.Line
}

// Lines returns the number of lines covered by the span.
func (s Span) Lines() int {
	return s.End.Line - s.Start.Line + 1
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// OffsetToPosition converts a byte offset into text to a Position.
// Offsets past the end clamp to len(text), negative offsets to 0, and an
// offset that lands inside a multi-byte rune backs up to the rune's start.
func OffsetToPosition(text string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	for offset > 0 && offset < len(text) && !utf8.RuneStart(text[offset]) {
		offset--
	}

	head := text[:offset]
	line := 1 + strings.Count(head, "\n")
	lineStart := strings.LastIndexByte(head, '\n') + 1

	return Position{
		Line:   line,
		Column: utf8.RuneCountInString(head[lineStart:]) + 1,
	}
}
