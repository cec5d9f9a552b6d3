package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/samsaffron/markplus/internal/clipboard"
	"github.com/samsaffron/markplus/internal/input"
	"github.com/spf13/cobra"
)

// textOptions selects where a text transform reads from and whether the
// result is copied back.
type textOptions struct {
	file      string
	clipboard bool
	selection bool
	copy      bool
}

func (o *textOptions) flags() TextFlags {
	return TextFlags{File: &o.file, Clipboard: &o.clipboard, Selection: &o.selection, Copy: &o.copy}
}

// readClipboard, readSelection and copyClipboard are swapped out in tests.
var (
	readClipboard = clipboard.ReadText
	readSelection = clipboard.ReadPrimarySelection
	copyClipboard = clipboard.CopyText
)

// readText returns the command input: --file, --clipboard, --selection, the
// positional arguments joined by spaces, or stdin ("-" or no arguments).
func readText(cmd *cobra.Command, args []string, o textOptions) (string, error) {
	switch {
	case o.file != "":
		data, err := os.ReadFile(o.file)
		if err != nil {
			return "", fmt.Errorf("failed to read %q: %w", o.file, err)
		}
		return string(data), nil
	case o.clipboard:
		text, err := readClipboard()
		if err != nil {
			return "", fmt.Errorf("failed to read clipboard: %w", err)
		}
		return text, nil
	case o.selection:
		text, err := readSelection()
		if err != nil {
			return "", fmt.Errorf("failed to read primary selection: %w", err)
		}
		return text, nil
	case len(args) > 0 && !(len(args) == 1 && args[0] == "-"):
		return strings.Join(args, " "), nil
	default:
		in := cmd.InOrStdin()
		if in != os.Stdin {
			return input.ReadAll(in)
		}
		if !input.HasStdin() {
			return "", fmt.Errorf("no input: pass text as arguments, use --file, or pipe it on stdin")
		}
		return input.ReadStdin()
	}
}

// writeText prints result and copies it to the clipboard when asked.
func writeText(w io.Writer, result string, o textOptions) error {
	if _, err := io.WriteString(w, result); err != nil {
		return err
	}
	if !strings.HasSuffix(result, "\n") {
		fmt.Fprintln(w)
	}
	if o.copy {
		if err := copyClipboard(result); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		slog.Debug("copied result to clipboard", "bytes", len(result))
	}
	return nil
}
