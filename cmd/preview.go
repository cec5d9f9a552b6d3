package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/samsaffron/markplus/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	previewSource bool
	previewWidth  int
)

var previewCmd = &cobra.Command{
	Use:   "preview [path]",
	Short: "Render a document with its tables formatted",
	Long: `Format the document's tables and render it for the terminal.
With --source, print the formatted Markdown with syntax highlighting instead.

Examples:
  markplus preview README.md
  markplus preview --source --keep-alignment notes.md
  cat table.md | markplus preview`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, f, err := loadFormatter(cmd)
		if err != nil {
			return err
		}

		var opts textOptions
		if len(args) == 1 && args[0] != "-" {
			opts.file = args[0]
		}
		doc, err := readText(cmd, nil, opts)
		if err != nil {
			return err
		}
		formatted := f.FormatAllTables(doc)

		w := cmd.OutOrStdout()
		if previewSource {
			name := opts.file
			if name == "" {
				name = "stdin.md"
			}
			_, err := io.WriteString(w, ui.NewHighlighter(name).Highlight(formatted))
			return err
		}

		rendered, err := ui.RenderPreview(formatted, previewWidthFor(w))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, rendered)
		return err
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().BoolVar(&previewSource, "source", false, "Print highlighted Markdown source instead of rendering")
	previewCmd.Flags().IntVar(&previewWidth, "wrap", 0, "Wrap width (default: terminal width, or 80)")
}

// previewWidthFor picks the wrap width: --wrap, then the terminal, then 80.
func previewWidthFor(w io.Writer) int {
	if previewWidth > 0 {
		return previewWidth
	}
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
