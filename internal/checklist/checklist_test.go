package checklist

import "testing"

func TestIsCheckbox(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"- [ ] todo", true},
		{"- [x] done", true},
		{"- [X] done", true},
		{"  - [ ] nested", true},
		{"text - [x] inline", true},
		{"- [] missing space", false},
		{"- [y] wrong mark", false},
		{"* [ ] star bullet", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsCheckbox(tt.text); got != tt.want {
			t.Fatalf("IsCheckbox(%q)=%v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestToggle(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"- [ ] todo", "- [X] todo"},
		{"- [x] done", "- [ ] done"},
		{"- [X] done", "- [ ] done"},
		{"  - [ ] nested", "  - [X] nested"},
		{"- [ ] first - [ ] second", "- [X] first - [ ] second"},
		{"- [x] café ✓", "- [ ] café ✓"},
		{"no marker", "no marker"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Toggle(tt.line); got != tt.want {
			t.Fatalf("Toggle(%q)=%q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestToggleRoundTrip(t *testing.T) {
	for _, line := range []string{"- [ ] a", "  - [ ] nested item", "prefix - [ ] mid"} {
		if got := Toggle(Toggle(line)); got != line {
			t.Fatalf("Toggle(Toggle(%q))=%q", line, got)
		}
	}
}

func TestIsChecked(t *testing.T) {
	if IsChecked("- [ ] a") {
		t.Fatalf("unchecked reported as checked")
	}
	if !IsChecked("- [x] a") || !IsChecked("- [X] a") {
		t.Fatalf("checked not reported")
	}
	if IsChecked("plain") {
		t.Fatalf("plain text reported as checked")
	}
}
