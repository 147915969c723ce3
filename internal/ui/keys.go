package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit      key.Binding
	NextTheme key.Binding
	PrevTheme key.Binding
	Layout    key.Binding
}

// ShortHelp is the set of bindings advertised in the header.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.NextTheme, k.Layout}
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
	NextTheme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "Theme")),
	PrevTheme: key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "Prev Theme")),
	Layout:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "Layout")),
}

// hint renders bindings as "[q] Quit [t] Theme ...".
func hint(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return strings.Join(parts, " ")
}
