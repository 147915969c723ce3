package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// sanitizeName makes an untrusted string (process name, mount point) safe to
// draw: escape sequences are removed and remaining control characters,
// including newlines and tabs, are dropped.
func sanitizeName(input string) string {
	stripped := ansi.Strip(input)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, stripped)
}
