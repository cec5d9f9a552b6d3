package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
	"github.com/samsaffron/markplus/internal/clipboard"
	"golang.org/x/term"
)

// ClipboardPath is the special path that reads the system clipboard.
const ClipboardPath = "clipboard"

// markdownGlob selects documents when a directory is given.
const markdownGlob = "**/*.{md,markdown}"

// Document is text read from a file or other source
type Document struct {
	Path    string // File path or ClipboardPath
	Content string
}

// Excluder skips paths matching any of its patterns. Patterns are matched
// against the slash-separated path and against the base name.
type Excluder struct {
	globs []glob.Glob
}

// NewExcluder compiles exclude patterns such as "vendor/**" or "CHANGELOG.md".
func NewExcluder(patterns []string) (*Excluder, error) {
	e := &Excluder{}
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		e.globs = append(e.globs, g)
	}
	return e, nil
}

// Excluded reports whether path matches an exclude pattern. A nil Excluder
// excludes nothing.
func (e *Excluder) Excluded(path string) bool {
	if e == nil {
		return false
	}
	slashed := filepath.ToSlash(filepath.Clean(path))
	base := filepath.Base(path)
	for _, g := range e.globs {
		if g.Match(slashed) || g.Match(base) {
			return true
		}
	}
	return false
}

// ExpandPaths resolves command line paths to a sorted, de-duplicated list of
// files. Globs may use ** and {a,b}; directories expand to the Markdown files
// beneath them; excluded paths are dropped.
func ExpandPaths(paths []string, ex *Excluder) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	add := func(p string) {
		if seen[p] || ex.Excluded(p) {
			return
		}
		seen[p] = true
		result = append(result, p)
	}

	for _, path := range paths {
		expanded := expandPath(path)

		if !containsGlobChars(path) {
			info, err := os.Stat(expanded)
			if err != nil {
				return nil, fmt.Errorf("failed to stat %q: %w", path, err)
			}
			if !info.IsDir() {
				add(expanded)
				continue
			}
			expanded = filepath.Join(expanded, markdownGlob)
		}

		matches, err := doublestar.FilepathGlob(expanded, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", path, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}

	return result, nil
}

// ReadDocuments reads every path. The special value "clipboard" reads the
// system clipboard; everything else goes through ExpandPaths.
func ReadDocuments(paths []string, ex *Excluder) ([]Document, error) {
	var result []Document
	var files []string

	for _, path := range paths {
		if strings.ToLower(path) == ClipboardPath {
			content, err := clipboard.ReadText()
			if err != nil {
				return nil, fmt.Errorf("failed to read clipboard: %w", err)
			}
			result = append(result, Document{Path: ClipboardPath, Content: content})
			continue
		}
		files = append(files, path)
	}

	expanded, err := ExpandPaths(files, ex)
	if err != nil {
		return nil, err
	}
	for _, path := range expanded {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", path, err)
		}
		result = append(result, Document{Path: path, Content: string(content)})
	}

	return result, nil
}

// WriteFile replaces path with content through a temp file and rename so a
// failed write never leaves a truncated document. The original mode is kept.
func WriteFile(path, content string) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("failed to chmod %q: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %q: %w", path, err)
	}
	return nil
}

// HasStdin returns true if stdin has data available (not a TTY)
func HasStdin() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode()&os.ModeCharDevice) == 0 || fi.Size() > 0
}

// ReadStdin reads all content from stdin
// Returns empty string if stdin is a TTY or has no data
func ReadStdin() (string, error) {
	if !HasStdin() {
		return "", nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", nil
	}
	return ReadAll(os.Stdin)
}

// ReadAll reads r to the end as text.
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// containsGlobChars returns true if the path contains glob metacharacters
func containsGlobChars(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}
