package table

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// WidthMode selects how cell widths are measured when padding columns.
type WidthMode int

const (
	// WidthChars counts runes.
	WidthChars WidthMode = iota
	// WidthDisplay counts terminal cells, so wide CJK and emoji count as two.
	WidthDisplay
	// WidthGraphemes counts user-perceived characters, so a base letter and
	// its combining marks count as one.
	WidthGraphemes
)

func (m WidthMode) String() string {
	switch m {
	case WidthDisplay:
		return "display"
	case WidthGraphemes:
		return "graphemes"
	default:
		return "chars"
	}
}

// ParseWidthMode parses "chars", "display" or "graphemes". The empty string
// selects chars.
func ParseWidthMode(s string) (WidthMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "chars":
		return WidthChars, nil
	case "display":
		return WidthDisplay, nil
	case "graphemes":
		return WidthGraphemes, nil
	}
	return WidthChars, fmt.Errorf("unknown width mode %q (want chars, display or graphemes)", s)
}

// displayCond is fixed so output does not depend on the caller's locale.
var displayCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

func (m WidthMode) measure(s string) int {
	switch m {
	case WidthDisplay:
		return displayCond.StringWidth(s)
	case WidthGraphemes:
		return uniseg.GraphemeClusterCount(s)
	default:
		return utf8.RuneCountInString(s)
	}
}

// CursorScope selects what FormatAtPosition rewrites when the cursor is
// inside a table.
type CursorScope int

const (
	// ScopeDocument reformats every table in the document.
	ScopeDocument CursorScope = iota
	// ScopeTable reformats only the table under the cursor.
	ScopeTable
)

func (s CursorScope) String() string {
	if s == ScopeTable {
		return "table"
	}
	return "document"
}

// ParseCursorScope parses "document" or "table". The empty string selects
// document.
func ParseCursorScope(s string) (CursorScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "document":
		return ScopeDocument, nil
	case "table":
		return ScopeTable, nil
	}
	return ScopeDocument, fmt.Errorf("unknown cursor scope %q (want document or table)", s)
}

// Formatter renders and rewrites tables. It is immutable once built and
// safe for concurrent use.
type Formatter struct {
	width         WidthMode
	keepAlignment bool
	scope         CursorScope
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithWidthMode sets how cell widths are measured.
func WithWidthMode(m WidthMode) Option {
	return func(f *Formatter) {
		f.width = m
	}
}

// WithKeepAlignment keeps the column alignment found in the source separator
// row instead of normalizing every column to left-aligned.
func WithKeepAlignment(keep bool) Option {
	return func(f *Formatter) {
		f.keepAlignment = keep
	}
}

// WithCursorScope sets what FormatAtPosition rewrites.
func WithCursorScope(s CursorScope) Option {
	return func(f *Formatter) {
		f.scope = s
	}
}

// New returns a Formatter. With no options it counts widths in runes,
// left-aligns every column and reformats the whole document on cursor
// requests.
func New(opts ...Option) *Formatter {
	f := &Formatter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WidthMode returns the configured width mode.
func (f *Formatter) WidthMode() WidthMode { return f.width }

// KeepAlignment reports whether source alignment is preserved.
func (f *Formatter) KeepAlignment() bool { return f.keepAlignment }

// CursorScope returns the configured cursor scope.
func (f *Formatter) CursorScope() CursorScope { return f.scope }

var defaultFormatter = New()
