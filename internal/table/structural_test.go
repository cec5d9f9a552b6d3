package table

import (
	"reflect"
	"testing"

	"github.com/samsaffron/markplus/internal/textpos"
)

func TestExtractAll(t *testing.T) {
	doc := "intro\n\n| a | b |\n| --- | --- |\n| 1 | **2** |\n| `x` | [link](http://example.com) |\n\n| x | y |\n| z | w |\n"

	got := ExtractAll(doc)
	if len(got) != 1 {
		t.Fatalf("got %d tables, want 1: %+v", len(got), got)
	}

	want := Table{{"a", "b"}, {"1", "2"}, {"x", "link"}}
	if !reflect.DeepEqual(got[0].Table, want) {
		t.Fatalf("rows=%q, want %q", got[0].Table, want)
	}
	if got[0].Position != (textpos.Position{Line: 3, Column: 1}) {
		t.Fatalf("position=%v, want 3:1", got[0].Position)
	}
}

func TestExtractAll_Positions(t *testing.T) {
	doc := "# T\n\n  | a |\n  |---|\n  | 1 |\n\ntext\n\n| é | b |\n|:-:|--:|\n"

	got := ExtractAll(doc)
	if len(got) != 2 {
		t.Fatalf("got %d tables, want 2", len(got))
	}
	if got[0].Position != (textpos.Position{Line: 3, Column: 3}) {
		t.Fatalf("first position=%v, want 3:3", got[0].Position)
	}
	if got[1].Position != (textpos.Position{Line: 9, Column: 1}) {
		t.Fatalf("second position=%v, want 9:1", got[1].Position)
	}
	if !reflect.DeepEqual(got[1].Table, Table{{"é", "b"}}) {
		t.Fatalf("header-only rows=%q", got[1].Table)
	}
}

func TestExtractAll_BlockquotePosition(t *testing.T) {
	doc := "quote\n\n> | q | r |\n> |---|---|\n> | 1 | 2 |\n"

	got := ExtractAll(doc)
	if len(got) != 1 {
		t.Fatalf("got %d tables, want 1", len(got))
	}
	if got[0].Position != (textpos.Position{Line: 3, Column: 3}) {
		t.Fatalf("position=%v, want 3:3 (the pipe after \"> \")", got[0].Position)
	}
	if !reflect.DeepEqual(got[0].Table, Table{{"q", "r"}, {"1", "2"}}) {
		t.Fatalf("rows=%q", got[0].Table)
	}
}

func TestExtractAll_IgnoresLooseRows(t *testing.T) {
	for _, doc := range []string{
		"",
		"no tables here",
		"| x | y |\n| z | w |\n",
		"|||\n|||\n",
		"| a | b |\n| --- |\n| 1 | 2 |\n",
	} {
		if got := ExtractAll(doc); len(got) != 0 {
			t.Fatalf("ExtractAll(%q) found %d tables, want 0", doc, len(got))
		}
	}
}

func TestHasTableElements(t *testing.T) {
	tests := []struct {
		doc  string
		want bool
	}{
		{"| a |\n|---|\n| 1 |\n", true},
		{"| a | b |\n| c | d |\n", false},
		{"plain text", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := HasTableElements(tt.doc); got != tt.want {
			t.Fatalf("HasTableElements(%q)=%v, want %v", tt.doc, got, tt.want)
		}
	}
}

func TestExtractors_DisagreeOnMissingSeparator(t *testing.T) {
	doc := "| a | b |\n| 1 | 2 |\n"
	if n := len(ExtractAll(doc)); n != 0 {
		t.Fatalf("structural extraction found %d tables, want 0", n)
	}
	if n := len(ExtractWithSpans(doc)); n != 1 {
		t.Fatalf("line extraction found %d tables, want 1", n)
	}
}
