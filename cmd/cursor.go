package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/samsaffron/markplus/internal/input"
	"github.com/samsaffron/markplus/internal/table"
	"github.com/spf13/cobra"
)

// cursorOptions mirrors the cursor flags of fmt-at and in-table.
type cursorOptions struct {
	line  int
	col   int
	at    string
	file  string
	write bool
}

var (
	fmtAtOpts   cursorOptions
	inTableOpts cursorOptions
)

var fmtAtCmd = &cobra.Command{
	Use:   "fmt-at",
	Short: "Format tables when the cursor is inside one",
	Long: `Read a document and a cursor position. If the cursor line belongs to a
table, print the document with tables formatted (every table, or only the
one under the cursor with --scope table). Otherwise print it unchanged.

Examples:
  markplus fmt-at --line 12 < README.md
  markplus fmt-at --at README.md:12:3 -w
  markplus fmt-at --scope table --at notes.md:40`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, f, err := loadFormatter(cmd)
		if err != nil {
			return err
		}
		doc, pos, err := readCursorDocument(cmd, fmtAtOpts)
		if err != nil {
			return err
		}
		formatted := f.FormatAtPosition(doc, pos.Line, pos.Column)
		slog.Debug("format at cursor", "at", pos.String(), "changed", formatted != doc)
		if fmtAtOpts.write {
			if pos.Path == "" {
				return fmt.Errorf("-w needs --at or --file")
			}
			if formatted == doc {
				return nil
			}
			return input.WriteFile(pos.Path, formatted)
		}
		_, err = io.WriteString(cmd.OutOrStdout(), formatted)
		return err
	},
}

var inTableCmd = &cobra.Command{
	Use:   "in-table",
	Short: "Report whether the cursor line is inside a table",
	Long: `Print true when the cursor line falls within a table span and false
otherwise. The exit status is 0 either way.

Examples:
  markplus in-table --line 3 < README.md
  markplus in-table --at README.md:3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, pos, err := readCursorDocument(cmd, inTableOpts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(table.IsCursorInTable(doc, pos.Line, pos.Column)))
		return err
	},
}

func init() {
	rootCmd.AddCommand(fmtAtCmd)
	rootCmd.AddCommand(inTableCmd)
	for _, c := range []struct {
		cmd  *cobra.Command
		opts *cursorOptions
	}{{fmtAtCmd, &fmtAtOpts}, {inTableCmd, &inTableOpts}} {
		AddCursorFlags(c.cmd, &c.opts.line, &c.opts.col, &c.opts.at)
		AddFileFlag(c.cmd, &c.opts.file, "Read the document from a file instead of stdin")
		c.cmd.MarkFlagsMutuallyExclusive("at", "file")
		c.cmd.MarkFlagsOneRequired("at", "line")
	}
	fmtAtCmd.Flags().BoolVarP(&fmtAtOpts.write, "write", "w", false, "Write the result back to the file")
}

// readCursorDocument resolves the document and cursor from --at, or from
// --line/--col with --file or stdin. The returned Path is empty for stdin.
func readCursorDocument(cmd *cobra.Command, o cursorOptions) (string, input.CursorSpec, error) {
	if o.at != "" {
		spec, err := input.ParseCursorSpec(o.at)
		if err != nil {
			return "", input.CursorSpec{}, err
		}
		data, err := os.ReadFile(spec.Path)
		if err != nil {
			return "", input.CursorSpec{}, fmt.Errorf("failed to read %q: %w", spec.Path, err)
		}
		return string(data), spec, nil
	}

	spec := input.CursorSpec{Path: o.file, Line: o.line, Column: o.col}
	if o.file != "" {
		data, err := os.ReadFile(o.file)
		if err != nil {
			return "", spec, fmt.Errorf("failed to read %q: %w", o.file, err)
		}
		return string(data), spec, nil
	}
	doc, err := input.ReadAll(cmd.InOrStdin())
	return doc, spec, err
}
