package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samsaffron/markplus/internal/host"
	"github.com/spf13/cobra"
)

var callStdin bool

var callCmd = &cobra.Command{
	Use:   "call <operation> [args...]",
	Short: "Run an editor operation by its host name",
	Long: `Invoke one of the operations an editor binds to markplus, passing
string arguments and printing the string result. With --stdin the first
argument (the line, text, or document) is read from stdin.

Operations:
  is-checkbox? LINE                          true/false
  change-checkbox-state! LINE                toggled line
  create-link! TEXT                          [TEXT]()
  itemize-text! TEXT                         bullet list
  has-table-elements TEXT                    true/false (GFM parser)
  is-table-line LINE                         true/false
  format-tables-in-buffer DOC                formatted document
  format-current-table-at-cursor DOC L C     formatted document
  detect-table-at-cursor DOC L C             true/false

Examples:
  markplus call create-link! "docs"
  markplus call --stdin format-current-table-at-cursor 4 1 < README.md
  markplus call list`,
	Args: cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}
		return append(host.DefaultRegistry(nil).Names(), "list"), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, f, err := loadFormatter(cmd)
		if err != nil {
			return err
		}
		reg := host.DefaultRegistry(f)

		if args[0] == "list" {
			return listOperations(cmd.OutOrStdout(), reg)
		}

		opArgs := args[1:]
		if callStdin {
			text, err := readText(cmd, nil, textOptions{})
			if err != nil {
				return err
			}
			opArgs = append([]string{text}, opArgs...)
		}
		return callOperation(cmd.OutOrStdout(), reg, args[0], opArgs)
	},
}

func init() {
	rootCmd.AddCommand(callCmd)
	callCmd.Flags().BoolVar(&callStdin, "stdin", false, "Read the first operation argument from stdin")
}

func callOperation(w io.Writer, reg *host.Registry, name string, args []string) error {
	result, err := reg.Call(name, args)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, result); err != nil {
		return err
	}
	if !strings.HasSuffix(result, "\n") {
		fmt.Fprintln(w)
	}
	return nil
}

func listOperations(w io.Writer, reg *host.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range reg.Names() {
		op, _ := reg.Get(name)
		fmt.Fprintf(tw, "%s\t%s\n", name, op.Usage)
	}
	return tw.Flush()
}
