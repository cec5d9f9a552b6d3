package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/samsaffron/markplus/internal/input"
	"github.com/samsaffron/markplus/internal/table"
	"github.com/samsaffron/markplus/internal/textpos"
	"github.com/samsaffron/markplus/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	tablesStrict    bool
	tablesOutput    string
	tablesSource    bool
	tablesFormatted bool
	tablesFile      string
)

// tableReport is one extracted table as printed by the tables command.
// Span is nil for structural extraction, which only knows the start.
type tableReport struct {
	Position  textpos.Position `yaml:"position"`
	Span      *textpos.Span    `yaml:"span,omitempty"`
	Columns   int              `yaml:"columns"`
	Rows      table.Table      `yaml:"rows"`
	Formatted string           `yaml:"formatted,omitempty"`
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables found in a document",
	Long: `Extract tables and print their positions and cells.

By default tables are found line by line (any run of |...| lines), the same
way fmt sees them. --strict uses a CommonMark/GFM parser instead, which only
accepts tables with a delimiter row.

Examples:
  markplus tables < README.md
  markplus tables --strict -o yaml -f README.md
  markplus tables --source -f notes.md
  markplus tables --formatted --source < notes.md   # show each table as fmt would write it`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, f, err := loadFormatter(cmd)
		if err != nil {
			return err
		}
		if tablesFormatted && tablesStrict {
			return fmt.Errorf("--formatted works on line extraction; drop --strict")
		}
		doc, err := readText(cmd, nil, textOptions{file: tablesFile})
		if err != nil {
			return err
		}
		reports := collectTables(doc, tablesStrict)
		if tablesFormatted {
			attachFormatted(f, doc, reports)
		}

		switch tablesOutput {
		case "yaml":
			return writeTablesYAML(cmd.OutOrStdout(), reports)
		case "text":
			return writeTablesText(cmd.OutOrStdout(), doc, reports, tablesSource, useColor(cfg.Fmt.Color, cmd.OutOrStdout()))
		default:
			return fmt.Errorf("unknown output format %q (want text or yaml)", tablesOutput)
		}
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.Flags().BoolVar(&tablesStrict, "strict", false, "Use the GFM parser; require a delimiter row")
	tablesCmd.Flags().BoolVar(&tablesSource, "source", false, "Print the source lines of each table (text output)")
	tablesCmd.Flags().BoolVar(&tablesFormatted, "formatted", false, "Include each table as it would be formatted")
	AddOutputFlag(tablesCmd, &tablesOutput)
	AddFileFlag(tablesCmd, &tablesFile, "Read the document from a file instead of stdin")
}

func collectTables(doc string, strict bool) []tableReport {
	var reports []tableReport
	if strict {
		for _, loc := range table.ExtractAll(doc) {
			reports = append(reports, tableReport{
				Position: loc.Position,
				Columns:  loc.Table.Columns(),
				Rows:     loc.Table,
			})
		}
		return reports
	}
	for _, info := range table.ExtractWithSpans(doc) {
		span := info.Span
		reports = append(reports, tableReport{
			Position: info.Position,
			Span:     &span,
			Columns:  info.Table.Columns(),
			Rows:     info.Table,
		})
	}
	return reports
}

// attachFormatted fills in the formatted text of each line-extracted report.
// FormattedTables scans the same way as collectTables, so reports pair up
// by index.
func attachFormatted(f *table.Formatter, doc string, reports []tableReport) {
	for i, ft := range f.FormattedTables(doc) {
		if i < len(reports) {
			reports[i].Formatted = ft.Text
		}
	}
}

func writeTablesYAML(w io.Writer, reports []tableReport) error {
	if reports == nil {
		reports = []tableReport{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("failed to encode tables: %w", err)
	}
	return enc.Close()
}

func writeTablesText(w io.Writer, doc string, reports []tableReport, source, color bool) error {
	styles := ui.NewStyles(w, color)
	var hl *ui.Highlighter
	if color {
		hl = ui.NewHighlighter("table.md")
	}

	for i, r := range reports {
		where := r.Position.String()
		if r.Span != nil {
			where = r.Span.String()
		}
		header := strings.Join(r.Rows.Header(), " | ")
		fmt.Fprintf(w, "%s  %s  %s\n",
			styles.Span.Render(where),
			styles.Muted.Render(fmt.Sprintf("%d×%d", len(r.Rows), r.Columns)),
			styles.Bold.Render(header))

		if source && r.Span != nil {
			lines := input.ExtractLines(doc, r.Span.Start.Line, r.Span.End.Line)
			if r.Formatted != "" {
				lines = strings.TrimSuffix(r.Formatted, "\n")
			}
			fmt.Fprintln(w, hl.Highlight(lines))
			if i < len(reports)-1 {
				fmt.Fprintln(w)
			}
		}
	}
	return nil
}
