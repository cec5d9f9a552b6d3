// Package checklist detects and toggles Markdown task-list markers.
package checklist

import "regexp"

// markerRe matches "- [ ]", "- [x]" and "- [X]".
var markerRe = regexp.MustCompile(`- \[( |x|X)\]`)

const (
	Unchecked = "- [ ]"
	Checked   = "- [X]"
)

// IsCheckbox reports whether text contains a checkbox marker anywhere.
func IsCheckbox(text string) bool {
	return markerRe.MatchString(text)
}

// IsChecked reports whether the first marker in text is checked. It returns
// false when there is no marker.
func IsChecked(text string) bool {
	m := markerRe.FindStringSubmatch(text)
	return m != nil && m[1] != " "
}

// Toggle flips the first checkbox marker in line. An unchecked box becomes
// "- [X]"; "- [x]" and "- [X]" both become "- [ ]". Lines without a marker
// are returned unchanged.
func Toggle(line string) string {
	loc := markerRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return line
	}

	replacement := Unchecked
	if line[loc[2]:loc[3]] == " " {
		replacement = Checked
	}
	return line[:loc[0]] + replacement + line[loc[1]:]
}
