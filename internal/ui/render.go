package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// RenderMarkdown converts markdown to styled ANSI output sized to the
// current terminal. It falls back to the raw text when rendering fails.
func RenderMarkdown(md string) string {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	return renderMarkdownWidth(md, width)
}

func renderMarkdownWidth(md string, width int) string {
	if width < 40 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4), // small margin for safety
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	// glamour often adds trailing newlines; trim for tighter display.
	return strings.TrimRight(out, "\n")
}
