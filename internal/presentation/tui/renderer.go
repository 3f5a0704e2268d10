package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// PlainProfile reports whether the terminal cannot render styled output.
// Reports fall back to the reporter's plain-text mode in that case.
func PlainProfile() bool {
	return termenv.ColorProfile() == termenv.Ascii
}

// NewRenderer returns a function that renders markdown using glamour.
// When the terminal is plain, the renderer is the identity function so
// reports stay pipeable.
func NewRenderer() func(string) (string, error) {
	if PlainProfile() {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
