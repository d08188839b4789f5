package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewMarkdownRenderer returns a function that renders markdown using glamour.
func NewMarkdownRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
