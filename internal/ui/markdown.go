package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderPreview renders a formatted document for the terminal, wrapped at
// width. Tables come out with box-drawing column separators so alignment
// problems are visible.
func RenderPreview(doc string, width int) (string, error) {
	if strings.TrimSpace(doc) == "" {
		return "", nil
	}

	style := GlamourStyleFromTheme(DefaultTheme())
	var noMargin uint
	style.Document.Margin = &noMargin
	style.CodeBlock.Margin = &noMargin

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(doc)
	if err != nil {
		return "", fmt.Errorf("failed to render: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}
