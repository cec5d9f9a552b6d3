package table

import (
	"reflect"
	"testing"

	"github.com/samsaffron/markplus/internal/textpos"
)

func TestIsTableLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"| a | b |", true},
		{"  | a |  ", true},
		{"||", true},
		{"|---|---|", true},
		{"| a |\r", true},
		{"|", false},
		{"a | b", false},
		{"| a | b", false},
		{"a | b |", false},
		{"", false},
		{"text", false},
	}

	for _, tt := range tests {
		if got := IsTableLine(tt.line); got != tt.want {
			t.Fatalf("IsTableLine(%q)=%v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestParseRow(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"| a | bb |", []string{"a", "bb"}},
		{"|a|b|c|", []string{"a", "b", "c"}},
		{"  |  spaced  |  out |  ", []string{"spaced", "out"}},
		{"| |  |", []string{"", ""}},
		{"|||", []string{"", ""}},
		{"||", []string{""}},
		{"|---|:-:|", []string{"---", ":-:"}},
		{"| café | 表 |", []string{"café", "表"}},
	}

	for _, tt := range tests {
		if got := ParseRow(tt.line); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("ParseRow(%q)=%q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestExtractWithSpans(t *testing.T) {
	doc := "| a | bb |\n|---|----|\n| 1 | 22 |\n"

	tables := ExtractWithSpans(doc)
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}

	info := tables[0]
	wantRows := Table{{"a", "bb"}, {"---", "----"}, {"1", "22"}}
	if !reflect.DeepEqual(info.Table, wantRows) {
		t.Fatalf("rows=%q, want %q", info.Table, wantRows)
	}
	wantSpan := textpos.Span{
		Start: textpos.Position{Line: 1, Column: 1},
		End:   textpos.Position{Line: 3, Column: 10},
	}
	if info.Span != wantSpan {
		t.Fatalf("span=%v, want %v", info.Span, wantSpan)
	}
	if info.Position != info.Span.Start {
		t.Fatalf("position=%v, want span start %v", info.Position, info.Span.Start)
	}
}

func TestExtractWithSpans_Regions(t *testing.T) {
	doc := "| a |\n| b |\n| c |\n\n| lone |\nx\n| e |\n| f |"

	tables := ExtractWithSpans(doc)
	if len(tables) != 2 {
		t.Fatalf("got %d tables, want 2", len(tables))
	}

	want := [][2]int{{1, 3}, {7, 8}}
	for i, info := range tables {
		if info.Span.Start.Line != want[i][0] || info.Span.End.Line != want[i][1] {
			t.Fatalf("table %d span=%v, want lines %d-%d", i, info.Span, want[i][0], want[i][1])
		}
	}

	// Spans never overlap and come back in ascending order.
	for i := 1; i < len(tables); i++ {
		if tables[i].Span.Start.Line <= tables[i-1].Span.End.Line {
			t.Fatalf("span %v overlaps or precedes %v", tables[i].Span, tables[i-1].Span)
		}
	}
}

func TestExtractWithSpans_Edges(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantCount int
	}{
		{name: "empty", doc: "", wantCount: 0},
		{name: "no tables", doc: "just\ntext\n", wantCount: 0},
		{name: "single row", doc: "| only |\n", wantCount: 0},
		{name: "missing separator", doc: "| a |\n| b |", wantCount: 1},
		{name: "all pipes", doc: "|||\n|||\n||", wantCount: 1},
		{name: "only pipes no newline", doc: "||||||||", wantCount: 0},
		{name: "crlf", doc: "| a |\r\n| b |\r\n", wantCount: 1},
		{name: "multibyte", doc: "| café |\n| 表格 |\n", wantCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(ExtractWithSpans(tt.doc)); got != tt.wantCount {
				t.Fatalf("got %d tables, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestExtractWithSpans_EndColumnCountsRunes(t *testing.T) {
	tables := ExtractWithSpans("| a |\n| café |\r\n")
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	if got := tables[0].Span.End.Column; got != 8 {
		t.Fatalf("end column=%d, want 8", got)
	}
}

func TestTableAlignments(t *testing.T) {
	tbl := Table{{"a", "b", "c", "d", "e"}, {":--", ":-:", "--:", "---"}}
	want := []Alignment{AlignLeft, AlignCenter, AlignRight, AlignNone, AlignNone}
	if got := tbl.Alignments(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Alignments()=%v, want %v", got, want)
	}

	noSep := Table{{"a", "b"}, {"1", "2"}}
	if got := noSep.Alignments(); !reflect.DeepEqual(got, []Alignment{AlignNone, AlignNone}) {
		t.Fatalf("Alignments() without separator=%v", got)
	}
}

func TestTableIsSeparator(t *testing.T) {
	tbl := Table{{"a"}, {"---"}, {"-"}, {"x"}}
	if tbl.IsSeparator(0) {
		t.Fatalf("header must not be a separator")
	}
	if !tbl.IsSeparator(1) {
		t.Fatalf("row 1 should be a separator")
	}
	if tbl.IsSeparator(2) {
		t.Fatalf("dash-only data rows below the separator are data")
	}
	if (Table{{"a"}, {""}}).IsSeparator(1) {
		t.Fatalf("empty cell is not a separator")
	}
}
