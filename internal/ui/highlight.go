package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter colors Markdown source for terminal output
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// NewHighlighter creates a highlighter for the given file path, falling back
// to the Markdown lexer when the path has no recognized extension.
func NewHighlighter(filePath string) *Highlighter {
	lexer := lexers.Match(filePath)
	if lexer == nil {
		lexer = lexers.Get("markdown")
	}
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("gruvbox")
	if style == nil {
		style = styles.Fallback
	}

	return &Highlighter{
		lexer: lexer,
		style: style,
	}
}

// Highlight applies syntax highlighting to a whole document. A nil
// highlighter or a lexer failure returns the source unchanged.
func (h *Highlighter) Highlight(source string) string {
	if h == nil {
		return source
	}

	iterator, err := h.lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf strings.Builder
	formatter := &fgFormatter{style: h.style}
	if err := formatter.Format(&buf, iterator); err != nil {
		return source
	}
	return buf.String()
}

// fgFormatter is a Chroma formatter that applies only foreground colors.
// Newlines pass through unstyled so escapes never span lines.
type fgFormatter struct {
	style *chroma.Style
}

func (f *fgFormatter) Format(w io.Writer, iterator chroma.Iterator) error {
	for token := iterator(); token != chroma.EOF; token = iterator() {
		entry := f.style.Get(token.Type)

		var codes []string
		if entry.Colour.IsSet() {
			codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
		}
		if entry.Bold == chroma.Yes {
			codes = append(codes, "1")
		}
		if entry.Italic == chroma.Yes {
			codes = append(codes, "3")
		}
		if entry.Underline == chroma.Yes {
			codes = append(codes, "4")
		}

		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				fmt.Fprint(w, "\n")
			}
			if part == "" {
				continue
			}
			if len(codes) > 0 {
				fmt.Fprintf(w, "\x1b[%sm%s\x1b[0m", strings.Join(codes, ";"), part)
			} else {
				fmt.Fprint(w, part)
			}
		}
	}
	return nil
}
