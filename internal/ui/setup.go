package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/samsaffron/markplus/internal/config"
)

// getTTY opens /dev/tty for direct terminal access (bypasses redirections)
func getTTY() (*os.File, error) {
	return os.OpenFile("/dev/tty", os.O_RDWR, 0)
}

// SetupForm builds the interactive form behind "config init". Answers are
// written into cfg when the form completes.
func SetupForm(cfg *config.Config, exclude *string) *huh.Form {
	*exclude = strings.Join(cfg.Fmt.Exclude, ", ")

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How should cell widths be measured?").
				Options(
					huh.NewOption("Characters (code points)", "chars"),
					huh.NewOption("Display columns (CJK and emoji count as 2)", "display"),
					huh.NewOption("Graphemes (combining marks join their base)", "graphemes"),
				).
				Value(&cfg.Table.Width),
			huh.NewSelect[string]().
				Title("What should formatting at the cursor rewrite?").
				Options(
					huh.NewOption("Every table in the document", "document"),
					huh.NewOption("Only the table under the cursor", "table"),
				).
				Value(&cfg.Table.CursorScope),
			huh.NewConfirm().
				Title("Keep column alignment markers (:--, --:, :-:)?").
				Value(&cfg.Table.KeepAlignment),
			huh.NewInput().
				Title("Paths for fmt to skip (comma separated globs)").
				Placeholder("vendor/**, CHANGELOG.md").
				Value(exclude),
		),
	)
}

// RunSetup asks for table settings on the terminal and returns the updated
// config. The form reads from /dev/tty when available so it works with
// redirected stdio.
func RunSetup(cfg *config.Config, status io.Writer) (*config.Config, error) {
	var exclude string
	form := SetupForm(cfg, &exclude)

	if tty, err := getTTY(); err == nil {
		defer tty.Close()
		form = form.WithInput(tty).WithOutput(tty)
	}

	fmt.Fprintln(status, "Configure markplus table formatting.")
	if err := form.Run(); err != nil {
		return nil, err
	}

	cfg.Fmt.Exclude = splitPatterns(exclude)
	return cfg, nil
}

func splitPatterns(s string) []string {
	patterns := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}
