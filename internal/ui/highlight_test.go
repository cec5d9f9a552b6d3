package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHighlight_PreservesText(t *testing.T) {
	source := "# Title\n\n| a | b |\n|:--|:--|\n| **1** | `2` |\n\n- [ ] task\n"

	h := NewHighlighter("notes.md")
	if h == nil {
		t.Fatalf("no highlighter for .md")
	}
	got := h.Highlight(source)
	if got == source {
		t.Fatalf("highlight produced no styling")
	}
	if stripped := ansi.Strip(got); stripped != source {
		t.Fatalf("stripped=%q, want %q", stripped, source)
	}
	if strings.Count(got, "\n") != strings.Count(source, "\n") {
		t.Fatalf("line count changed")
	}
}

func TestHighlight_UnknownExtensionUsesMarkdown(t *testing.T) {
	if NewHighlighter("README") == nil {
		t.Fatalf("expected markdown fallback highlighter")
	}
}

func TestHighlight_Nil(t *testing.T) {
	var h *Highlighter
	if got := h.Highlight("| a |"); got != "| a |" {
		t.Fatalf("nil highlighter changed text: %q", got)
	}
}
