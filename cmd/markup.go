package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samsaffron/markplus/internal/checklist"
	"github.com/samsaffron/markplus/internal/markup"
	"github.com/spf13/cobra"
)

var (
	linkOpts     textOptions
	itemizeOpts  textOptions
	checkboxOpts textOptions
	checkOnly    bool
)

var linkCmd = &cobra.Command{
	Use:   "link [text...]",
	Short: "Wrap text in an empty Markdown link",
	Long: `Wrap the selection in [text]() so the URL can be typed next.

Examples:
  markplus link "release notes"        # [release notes]()
  markplus link --clipboard --copy     # rewrite the clipboard in place`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd, args, linkOpts)
		if err != nil {
			return err
		}
		return writeText(cmd.OutOrStdout(), markup.CreateLink(text), linkOpts)
	},
}

var itemizeCmd = &cobra.Command{
	Use:   "itemize",
	Short: "Turn lines into a nested bullet list",
	Long: `Prefix every non-blank line with "- ", nesting by indentation
(two spaces or one tab per level).

Examples:
  printf 'a\n  b\n' | markplus itemize    # - a / - b nested
  markplus itemize -f outline.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd, args, itemizeOpts)
		if err != nil {
			return err
		}
		return writeText(cmd.OutOrStdout(), markup.Itemize(text), itemizeOpts)
	},
}

var checkboxCmd = &cobra.Command{
	Use:   "checkbox [line...]",
	Short: "Toggle the first task-list checkbox on each line",
	Long: `Toggle "- [ ]" to "- [X]" and "- [x]"/"- [X]" back to "- [ ]".
Only the first marker on each line changes; lines without one pass through.
With --check, print true or false for each line instead.

Examples:
  markplus checkbox "- [ ] write docs"
  markplus checkbox --check < todo.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd, args, checkboxOpts)
		if err != nil {
			return err
		}
		if checkOnly {
			return checkLines(cmd.OutOrStdout(), text)
		}
		return writeText(cmd.OutOrStdout(), toggleLines(text), checkboxOpts)
	},
}

func init() {
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(itemizeCmd)
	rootCmd.AddCommand(checkboxCmd)
	AddTextFlags(linkCmd, linkOpts.flags())
	AddTextFlags(itemizeCmd, itemizeOpts.flags())
	AddTextFlags(checkboxCmd, checkboxOpts.flags())
	checkboxCmd.Flags().BoolVar(&checkOnly, "check", false, "Report whether each line has a checkbox instead of toggling")
}

// toggleLines applies checklist.Toggle to every line, keeping line endings.
func toggleLines(text string) string {
	lines := strings.SplitAfter(text, "\n")
	for i, line := range lines {
		lines[i] = checklist.Toggle(line)
	}
	return strings.Join(lines, "")
}

func checkLines(w io.Writer, text string) error {
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		if _, err := fmt.Fprintln(w, strconv.FormatBool(checklist.IsCheckbox(line))); err != nil {
			return err
		}
	}
	return nil
}
