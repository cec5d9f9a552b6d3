// Package clipboard moves text between markplus and the system clipboard
// using the platform's command line tools.
package clipboard

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// selection names an X11/Wayland selection buffer.
type selection int

const (
	selClipboard selection = iota
	selPrimary
)

// readCommands lists the commands tried, in order, to read a selection on
// Linux. Wayland comes first.
func readCommands(sel selection) [][]string {
	if sel == selPrimary {
		return [][]string{
			{"wl-paste", "--primary", "--no-newline"},
			{"xclip", "-selection", "primary", "-o"},
		}
	}
	return [][]string{
		{"wl-paste", "--no-newline"},
		{"xclip", "-selection", "clipboard", "-o"},
	}
}

// writeCommands lists the commands tried, in order, to write the clipboard
// on Linux.
func writeCommands() [][]string {
	return [][]string{
		{"wl-copy"},
		{"xclip", "-selection", "clipboard"},
	}
}

// ReadText reads text content from the system clipboard
func ReadText() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		return readMacOS()
	case "linux":
		return readLinux(selClipboard)
	default:
		return "", fmt.Errorf("clipboard read not supported on %s", runtime.GOOS)
	}
}

// ReadPrimarySelection reads from the PRIMARY selection (middle-click buffer on Linux).
// On macOS, falls back to the regular clipboard since there's no primary selection.
func ReadPrimarySelection() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		return readMacOS()
	case "linux":
		return readLinux(selPrimary)
	default:
		return "", fmt.Errorf("primary selection not supported on %s", runtime.GOOS)
	}
}

func readMacOS() (string, error) {
	out, err := output("pbpaste")
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	return out, nil
}

func readLinux(sel selection) (string, error) {
	for _, argv := range readCommands(sel) {
		if _, err := exec.LookPath(argv[0]); err != nil {
			continue
		}
		if out, err := output(argv[0], argv[1:]...); err == nil {
			return out, nil
		}
	}
	return "", fmt.Errorf("no clipboard utility found (install wl-paste or xclip)")
}

func output(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return out.String(), nil
}

// CopyText copies text to the system clipboard
func CopyText(text string) error {
	switch runtime.GOOS {
	case "darwin":
		cmd := exec.Command("pbcopy")
		cmd.Stdin = strings.NewReader(text)
		return cmd.Run()
	case "linux":
		for _, argv := range writeCommands() {
			if _, err := exec.LookPath(argv[0]); err != nil {
				continue
			}
			cmd := exec.Command(argv[0], argv[1:]...)
			cmd.Stdin = strings.NewReader(text)
			return cmd.Run()
		}
		return fmt.Errorf("no clipboard utility found (install wl-copy or xclip)")
	default:
		return fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}
}
