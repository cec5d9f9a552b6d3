package input

import "testing"

func TestParseCursorSpec(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPath string
		wantLine int
		wantCol  int
		wantErr  bool
	}{
		{name: "line only", input: "README.md:12", wantPath: "README.md", wantLine: 12, wantCol: 1},
		{name: "line and column", input: "README.md:12:5", wantPath: "README.md", wantLine: 12, wantCol: 5},
		{name: "path with colon", input: "notes:draft.md:3", wantPath: "notes:draft.md", wantLine: 3, wantCol: 1},
		{name: "missing line", input: "README.md", wantErr: true},
		{name: "zero line", input: "README.md:0", wantErr: true},
		{name: "zero column", input: "README.md:2:0", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := ParseCursorSpec(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if spec.Path != tc.wantPath {
				t.Fatalf("path=%q, want %q", spec.Path, tc.wantPath)
			}
			if spec.Line != tc.wantLine || spec.Column != tc.wantCol {
				t.Fatalf("got line=%d col=%d, want line=%d col=%d", spec.Line, spec.Column, tc.wantLine, tc.wantCol)
			}
		})
	}
}

func TestCursorSpecString(t *testing.T) {
	if got := (CursorSpec{Path: "a.md", Line: 3, Column: 7}).String(); got != "a.md:3:7" {
		t.Fatalf("got %q, want %q", got, "a.md:3:7")
	}
}

func TestExtractLines(t *testing.T) {
	content := "line1\nline2\nline3\nline4\nline5"

	tests := []struct {
		name  string
		start int
		end   int
		want  string
	}{
		{name: "full content", start: 0, end: 0, want: "line1\nline2\nline3\nline4\nline5"},
		{name: "lines 2-4", start: 2, end: 4, want: "line2\nline3\nline4"},
		{name: "from line 3", start: 3, end: 0, want: "line3\nline4\nline5"},
		{name: "to line 2", start: 0, end: 2, want: "line1\nline2"},
		{name: "single line", start: 3, end: 3, want: "line3"},
		{name: "start beyond end", start: 10, end: 0, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractLines(content, tc.start, tc.end)
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
