// Package markup holds small stateless Markdown rewrites applied to an
// editor selection.
package markup

import "strings"

// CreateLink wraps the trimmed selection in an empty inline link.
func CreateLink(text string) string {
	return "[" + strings.TrimSpace(text) + "]()"
}

var bulletPrefixes = []string{"- ", "* ", "+ "}

// Itemize turns every non-blank line into a bullet. Leading indentation is
// read in steps of two spaces (a tab counts as one step) and each step
// becomes one nesting level of two spaces. Lines that already start with a
// bullet are re-indented but not bulleted again. Blank lines and a trailing
// newline are kept.
func Itemize(text string) string {
	trailing := strings.HasSuffix(text, "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	for i, line := range lines {
		content := strings.TrimSpace(line)
		if content == "" {
			continue
		}
		if !hasBullet(content) {
			content = "- " + content
		}
		item := strings.Repeat("  ", indentLevel(line)) + content
		if strings.HasSuffix(line, "\r") {
			item += "\r"
		}
		lines[i] = item
	}

	out := strings.Join(lines, "\n")
	if trailing {
		out += "\n"
	}
	return out
}

func indentLevel(line string) int {
	spaces := 0
	for _, r := range line {
		switch r {
		case ' ':
			spaces++
		case '\t':
			spaces += 2
		default:
			return spaces / 2
		}
	}
	return spaces / 2
}

func hasBullet(s string) bool {
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
