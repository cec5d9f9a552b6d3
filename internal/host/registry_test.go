package host

import (
	"errors"
	"strings"
	"testing"

	"github.com/samsaffron/markplus/internal/table"
)

func TestDefaultRegistry_Call(t *testing.T) {
	r := DefaultRegistry(nil)
	doc := "|a|bb|\n|-|-|\n|1|22|\n"
	formatted := "| a | bb |\n|:--|:---|\n| 1 | 22 |\n"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"is-checkbox?", []string{"- [ ] x"}, "true"},
		{"is-checkbox?", []string{"plain"}, "false"},
		{"change-checkbox-state!", []string{"- [ ] x"}, "- [X] x"},
		{"create-link!", []string{" text "}, "[text]()"},
		{"itemize-text!", []string{"a\n  b"}, "- a\n  - b"},
		{"has-table-elements", []string{doc}, "true"},
		{"is-table-line", []string{"| a |"}, "true"},
		{"is-table-line", []string{"a | b"}, "false"},
		{"format-tables-in-buffer", []string{doc}, formatted},
		{"format-current-table-at-cursor", []string{doc, "1", "1"}, formatted},
		{"format-current-table-at-cursor", []string{"text\n" + doc, "1", "1"}, "text\n" + doc},
		{"detect-table-at-cursor", []string{doc, "3", "99"}, "true"},
		{"detect-table-at-cursor", []string{doc, "4", "1"}, "false"},
	}

	for _, tt := range tests {
		got, err := r.Call(tt.name, tt.args)
		if err != nil {
			t.Fatalf("Call(%s, %q) error: %v", tt.name, tt.args, err)
		}
		if got != tt.want {
			t.Fatalf("Call(%s, %q)=%q, want %q", tt.name, tt.args, got, tt.want)
		}
	}
}

func TestRegistry_Errors(t *testing.T) {
	r := DefaultRegistry(nil)

	if _, err := r.Call("no-such-op", nil); !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("unknown op error=%v, want ErrUnknownOperation", err)
	}
	if _, err := r.Call("create-link!", nil); !errors.Is(err, ErrArgs) {
		t.Fatalf("arity error=%v, want ErrArgs", err)
	}
	if _, err := r.Call("detect-table-at-cursor", []string{"", "x", "1"}); !errors.Is(err, ErrArgs) {
		t.Fatalf("bad line error=%v, want ErrArgs", err)
	}
	if _, err := r.Call("detect-table-at-cursor", []string{"", "1", "y"}); !errors.Is(err, ErrArgs) {
		t.Fatalf("bad column error=%v, want ErrArgs", err)
	}
}

func TestDefaultRegistry_UsesFormatter(t *testing.T) {
	f := table.New(table.WithKeepAlignment(true))
	r := DefaultRegistry(f)

	got, err := r.Call("format-tables-in-buffer", []string{"|a|b|\n|--:|:-:|\n|1|2|\n"})
	if err != nil {
		t.Fatalf("Call error: %v", err)
	}
	want := "| a | b |\n|--:|:-:|\n| 1 | 2 |\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRegistry_Names(t *testing.T) {
	names := DefaultRegistry(nil).Names()
	if len(names) != 9 {
		t.Fatalf("got %d names, want 9: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestRegistry_Suggest(t *testing.T) {
	r := DefaultRegistry(nil)

	got := r.Suggest("fmtbuf")
	if len(got) == 0 || got[0] != "format-tables-in-buffer" {
		t.Fatalf("Suggest(fmtbuf)=%v", got)
	}
	if got := r.Suggest("zzz"); len(got) != 0 {
		t.Fatalf("Suggest(zzz)=%v, want none", got)
	}

	_, err := r.Call("createlink", []string{"x"})
	if !errors.Is(err, ErrUnknownOperation) || !strings.Contains(err.Error(), "create-link!") {
		t.Fatalf("err=%v, want suggestion for create-link!", err)
	}
}
