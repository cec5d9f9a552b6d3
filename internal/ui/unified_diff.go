package ui

import (
	"fmt"
	"io"
	"strings"

	diff "github.com/shogoki/gotextdiff"
)

// WriteUnifiedDiff writes a unified diff between old and new content for
// filePath. Nothing is written when the contents are equal. With color the
// diff lines are styled; without it the output can be fed to patch.
func WriteUnifiedDiff(w io.Writer, filePath, oldContent, newContent string, color bool) error {
	if oldContent == newContent {
		return nil
	}

	diffBytes := diff.Diff("a/"+filePath, []byte(oldContent), "b/"+filePath, []byte(newContent))
	if len(diffBytes) == 0 {
		return nil
	}
	if !color {
		_, err := w.Write(diffBytes)
		return err
	}

	styles := NewStyles(w, true)
	lines := strings.Split(strings.TrimSuffix(string(diffBytes), "\n"), "\n")
	for _, line := range lines {
		var styled string
		switch {
		case strings.HasPrefix(line, "diff "),
			strings.HasPrefix(line, "--- "),
			strings.HasPrefix(line, "+++ "):
			styled = styles.Bold.Render(line)
		case strings.HasPrefix(line, "@@"):
			styled = styles.DiffHeader.Render(line)
		case strings.HasPrefix(line, "-"):
			styled = styles.DiffRemove.Render(line)
		case strings.HasPrefix(line, "+"):
			styled = styles.DiffAdd.Render(line)
		default:
			styled = styles.Muted.Render(line)
		}
		if _, err := fmt.Fprintln(w, styled); err != nil {
			return err
		}
	}
	return nil
}

// HasDiff returns true if old and new content are different
func HasDiff(oldContent, newContent string) bool {
	return oldContent != newContent
}
