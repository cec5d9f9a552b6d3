package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/samsaffron/markplus/internal/input"
	"github.com/samsaffron/markplus/internal/table"
	"github.com/samsaffron/markplus/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// fmtOptions mirrors the fmt command flags.
type fmtOptions struct {
	write   bool
	list    bool
	diff    bool
	exclude []string
	color   bool
}

var fmtFlags fmtOptions

var fmtCmd = &cobra.Command{
	Use:   "fmt [path...]",
	Short: "Format every table in Markdown documents",
	Long: `Normalize pipe tables: pad cells to a common column width and rebuild
the separator row. Text outside tables is left byte for byte.

With no paths the document is read from stdin and written to stdout.
Paths may be files, directories (all *.md and *.markdown beneath them),
globs such as 'docs/**/*.md', or "clipboard".

Examples:
  markplus fmt README.md               # print formatted README.md
  markplus fmt -w .                    # rewrite every Markdown file in place
  markplus fmt -l 'docs/**/*.md'       # list files whose tables would change
  markplus fmt -d --exclude 'vendor/**' .`,
	RunE: runFmtCmd,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtFlags.write, "write", "w", false, "Write result to the source file instead of stdout")
	fmtCmd.Flags().BoolVarP(&fmtFlags.list, "list", "l", false, "List files whose formatting differs")
	fmtCmd.Flags().BoolVarP(&fmtFlags.diff, "diff", "d", false, "Print a unified diff instead of the document")
	fmtCmd.Flags().StringArrayVar(&fmtFlags.exclude, "exclude", nil, "Glob pattern to skip (repeatable, added to fmt.exclude)")
}

func runFmtCmd(cmd *cobra.Command, args []string) error {
	cfg, f, err := loadFormatter(cmd)
	if err != nil {
		return err
	}

	opts := fmtFlags
	opts.exclude = append(append([]string{}, cfg.Fmt.Exclude...), fmtFlags.exclude...)
	opts.color = useColor(cfg.Fmt.Color, cmd.OutOrStdout())

	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return formatStream(f, cmd.InOrStdin(), cmd.OutOrStdout(), opts)
	}
	_, err = formatPaths(f, args, cmd.OutOrStdout(), opts)
	return err
}

// formatStream formats a document from r. -w and -l have no file to act on
// so they are rejected.
func formatStream(f *table.Formatter, r io.Reader, w io.Writer, opts fmtOptions) error {
	if opts.write || opts.list {
		return fmt.Errorf("-w and -l need file arguments")
	}
	doc, err := input.ReadAll(r)
	if err != nil {
		return err
	}
	formatted := f.FormatAllTables(doc)
	if opts.diff {
		return ui.WriteUnifiedDiff(w, "<stdin>", doc, formatted, opts.color)
	}
	_, err = io.WriteString(w, formatted)
	return err
}

// formatPaths formats every document named by paths and returns the paths
// whose content changed.
func formatPaths(f *table.Formatter, paths []string, w io.Writer, opts fmtOptions) ([]string, error) {
	ex, err := input.NewExcluder(opts.exclude)
	if err != nil {
		return nil, err
	}
	docs, err := input.ReadDocuments(paths, ex)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		slog.Warn("no documents matched", "paths", paths)
	}

	var changed []string
	for _, doc := range docs {
		formatted := f.FormatAllTables(doc.Content)
		differs := ui.HasDiff(doc.Content, formatted)
		slog.Debug("formatted document", "path", doc.Path, "tables", len(table.ExtractWithSpans(doc.Content)), "changed", differs)
		if differs {
			changed = append(changed, doc.Path)
		}

		if opts.list && differs {
			fmt.Fprintln(w, doc.Path)
		}
		if opts.diff {
			if err := ui.WriteUnifiedDiff(w, doc.Path, doc.Content, formatted, opts.color); err != nil {
				return changed, err
			}
		}
		if opts.write {
			if differs {
				if err := writeDocument(doc.Path, formatted); err != nil {
					return changed, err
				}
			}
			continue
		}
		if !opts.list && !opts.diff {
			if _, err := io.WriteString(w, formatted); err != nil {
				return changed, err
			}
		}
	}
	return changed, nil
}

func writeDocument(path, content string) error {
	if path == input.ClipboardPath {
		return copyClipboard(content)
	}
	return input.WriteFile(path, content)
}

// useColor resolves fmt.color against the output stream.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
