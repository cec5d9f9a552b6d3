package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samsaffron/markplus/internal/host"
	"github.com/samsaffron/markplus/internal/table"
	"github.com/samsaffron/markplus/internal/textpos"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func TestCollectTables(t *testing.T) {
	doc := "intro\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n| x | y |\n| z | w |\n"

	loose := collectTables(doc, false)
	if len(loose) != 2 {
		t.Fatalf("line extraction found %d tables, want 2", len(loose))
	}
	if loose[0].Span == nil || loose[0].Span.Start.Line != 3 || loose[0].Span.End.Line != 5 {
		t.Fatalf("first span=%v", loose[0].Span)
	}
	if loose[1].Columns != 2 || loose[1].Position != (textpos.Position{Line: 7, Column: 1}) {
		t.Fatalf("second table=%+v", loose[1])
	}

	strict := collectTables(doc, true)
	if len(strict) != 1 {
		t.Fatalf("structural extraction found %d tables, want 1", len(strict))
	}
	if strict[0].Span != nil {
		t.Fatalf("structural report has a span")
	}
}

func TestWriteTablesYAML(t *testing.T) {
	reports := collectTables("| a | b |\n|---|---|\n| 1 | 2 |\n", false)

	var out bytes.Buffer
	if err := writeTablesYAML(&out, reports); err != nil {
		t.Fatalf("writeTablesYAML: %v", err)
	}

	var decoded []tableReport
	if err := yaml.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out.String())
	}
	if len(decoded) != 1 || decoded[0].Columns != 2 || len(decoded[0].Rows) != 3 {
		t.Fatalf("decoded=%+v", decoded)
	}

	out.Reset()
	if err := writeTablesYAML(&out, nil); err != nil {
		t.Fatalf("writeTablesYAML(nil): %v", err)
	}
	if strings.TrimSpace(out.String()) != "[]" {
		t.Fatalf("empty output=%q", out.String())
	}
}

func TestWriteTablesText(t *testing.T) {
	doc := "x\n| h1 | h2 |\n| a | b |\n"
	reports := collectTables(doc, false)

	var out bytes.Buffer
	if err := writeTablesText(&out, doc, reports, true, false); err != nil {
		t.Fatalf("writeTablesText: %v", err)
	}
	want := "2:1-3:9  2×2  h1 | h2\n| h1 | h2 |\n| a | b |\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestWriteTablesText_Formatted(t *testing.T) {
	doc := "|a|bb|\n|-|-|\n|1|22|\n"
	reports := collectTables(doc, false)
	attachFormatted(table.New(), doc, reports)

	if reports[0].Formatted != "| a | bb |\n|:--|:---|\n| 1 | 22 |\n" {
		t.Fatalf("formatted=%q", reports[0].Formatted)
	}

	var out bytes.Buffer
	if err := writeTablesText(&out, doc, reports, true, false); err != nil {
		t.Fatalf("writeTablesText: %v", err)
	}
	want := "1:1-3:6  3×2  a | bb\n| a | bb |\n|:--|:---|\n| 1 | 22 |\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestCallOperation(t *testing.T) {
	reg := host.DefaultRegistry(nil)

	var out bytes.Buffer
	if err := callOperation(&out, reg, "create-link!", []string{"docs"}); err != nil {
		t.Fatalf("callOperation: %v", err)
	}
	if out.String() != "[docs]()\n" {
		t.Fatalf("got %q", out.String())
	}

	out.Reset()
	if err := callOperation(&out, reg, "format-tables-in-buffer", []string{"|a|\n|-|\n"}); err != nil {
		t.Fatalf("callOperation: %v", err)
	}
	if out.String() != "| a |\n|:--|\n" {
		t.Fatalf("got %q", out.String())
	}

	if err := callOperation(&out, reg, "nope", nil); !errors.Is(err, host.ErrUnknownOperation) {
		t.Fatalf("err=%v, want ErrUnknownOperation", err)
	}
}

func TestListOperations(t *testing.T) {
	var out bytes.Buffer
	if err := listOperations(&out, host.DefaultRegistry(nil)); err != nil {
		t.Fatalf("listOperations: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "change-checkbox-state!") || !strings.HasSuffix(lines[0], "line") {
		t.Fatalf("first line=%q", lines[0])
	}
}

func TestReadCursorDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	os.WriteFile(path, []byte("| a |\n"), 0644)

	cmd := &cobra.Command{}
	doc, spec, err := readCursorDocument(cmd, cursorOptions{at: path + ":1:4"})
	if err != nil {
		t.Fatalf("readCursorDocument: %v", err)
	}
	if doc != "| a |\n" || spec.Path != path || spec.Line != 1 || spec.Column != 4 {
		t.Fatalf("doc=%q spec=%+v", doc, spec)
	}

	cmd.SetIn(strings.NewReader("stdin doc"))
	doc, spec, err = readCursorDocument(cmd, cursorOptions{line: 2, col: 1})
	if err != nil {
		t.Fatalf("readCursorDocument: %v", err)
	}
	if doc != "stdin doc" || spec.Path != "" || spec.Line != 2 {
		t.Fatalf("doc=%q spec=%+v", doc, spec)
	}

	if _, _, err := readCursorDocument(cmd, cursorOptions{at: "no-line"}); err == nil {
		t.Fatalf("expected error for bad --at")
	}
}
