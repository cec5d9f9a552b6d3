package cmd

import (
	"github.com/spf13/cobra"
)

// TextFlags holds pointers to the input and output flags shared by the text
// transform commands. Each command creates its own instance.
type TextFlags struct {
	File      *string
	Clipboard *bool
	Selection *bool
	Copy      *bool
}

// AddWidthFlag adds the persistent --width flag with completion
func AddWidthFlag(cmd *cobra.Command, dest *string) {
	cmd.PersistentFlags().StringVar(dest, "width", "", "Cell width measure: chars, display, or graphemes (overrides config)")
	if err := cmd.RegisterFlagCompletionFunc("width", fixedCompletion("chars", "display", "graphemes")); err != nil {
		panic("failed to register width completion: " + err.Error())
	}
}

// AddScopeFlag adds the persistent --scope flag with completion
func AddScopeFlag(cmd *cobra.Command, dest *string) {
	cmd.PersistentFlags().StringVar(dest, "scope", "", "Cursor formatting scope: document or table (overrides config)")
	if err := cmd.RegisterFlagCompletionFunc("scope", fixedCompletion("document", "table")); err != nil {
		panic("failed to register scope completion: " + err.Error())
	}
}

// AddKeepAlignmentFlag adds the persistent --keep-alignment flag
func AddKeepAlignmentFlag(cmd *cobra.Command, dest *bool) {
	cmd.PersistentFlags().BoolVar(dest, "keep-alignment", false, "Preserve :--, --: and :-: column alignment (overrides config)")
}

// AddFileFlag adds the --file/-f flag
func AddFileFlag(cmd *cobra.Command, dest *string, description string) {
	cmd.Flags().StringVarP(dest, "file", "f", "", description)
}

// AddClipboardFlag adds the --clipboard flag
func AddClipboardFlag(cmd *cobra.Command, dest *bool) {
	cmd.Flags().BoolVar(dest, "clipboard", false, "Read input from the system clipboard")
}

// AddSelectionFlag adds the --selection flag
func AddSelectionFlag(cmd *cobra.Command, dest *bool) {
	cmd.Flags().BoolVar(dest, "selection", false, "Read input from the primary selection (X11/Wayland; clipboard on macOS)")
}

// AddCopyFlag adds the --copy/-c flag
func AddCopyFlag(cmd *cobra.Command, dest *bool) {
	cmd.Flags().BoolVarP(dest, "copy", "c", false, "Also copy the result to the system clipboard")
}

// AddTextFlags adds --file, --clipboard, --selection and --copy
func AddTextFlags(cmd *cobra.Command, f TextFlags) {
	AddFileFlag(cmd, f.File, "Read input from a file instead of arguments or stdin")
	AddClipboardFlag(cmd, f.Clipboard)
	AddSelectionFlag(cmd, f.Selection)
	AddCopyFlag(cmd, f.Copy)
	cmd.MarkFlagsMutuallyExclusive("file", "clipboard", "selection")
}

// AddCursorFlags adds --line, --col and --at
func AddCursorFlags(cmd *cobra.Command, line, col *int, at *string) {
	cmd.Flags().IntVar(line, "line", 0, "Cursor line (1-based)")
	cmd.Flags().IntVar(col, "col", 1, "Cursor column (1-based, accepted but not used for detection)")
	cmd.Flags().StringVar(at, "at", "", "Cursor as path:line[:col]; reads the document from path")
	cmd.MarkFlagsMutuallyExclusive("at", "line")
}

// AddOutputFlag adds the --output/-o flag with completion
func AddOutputFlag(cmd *cobra.Command, dest *string) {
	cmd.Flags().StringVarP(dest, "output", "o", "text", "Output format: text or yaml")
	if err := cmd.RegisterFlagCompletionFunc("output", fixedCompletion("text", "yaml")); err != nil {
		panic("failed to register output completion: " + err.Error())
	}
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
