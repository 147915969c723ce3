package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PaletteSize is the number of colors in every theme.
const PaletteSize = 16

// Palette slots with a fixed meaning.
const (
	SlotBackground = 0
	SlotForeground = 7
	SlotMuted      = 8
)

// Theme is a named 16-color palette. Slot 0 is the background, 7 the
// foreground, 1-6 accents for graphs and gauges, 8 a muted separator color.
type Theme struct {
	Name    string
	Palette [PaletteSize]lipgloss.TerminalColor
}

// Color returns palette slot i. Unset or out of range slots yield no color.
func (t Theme) Color(i int) lipgloss.TerminalColor {
	if i < 0 || i >= PaletteSize || t.Palette[i] == nil {
		return lipgloss.NoColor{}
	}
	return t.Palette[i]
}

func (t Theme) Background() lipgloss.TerminalColor { return t.Color(SlotBackground) }

func (t Theme) Foreground() lipgloss.TerminalColor { return t.Color(SlotForeground) }

func (t Theme) Muted() lipgloss.TerminalColor { return t.Color(SlotMuted) }

// Accent cycles through slots 1-6: index 0 maps to slot 1, index 6 back to slot 1.
func (t Theme) Accent(i int) lipgloss.TerminalColor {
	if i < 0 {
		i = -i
	}
	return t.Color(1 + i%6)
}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// ParseHex reads "#RRGGBB" (case-insensitive). Each channel that is missing
// or not valid hex is 0; parsing never fails.
func ParseHex(s string) RGB {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	return RGB{
		R: hexChannel(s, 0),
		G: hexChannel(s, 2),
		B: hexChannel(s, 4),
	}
}

func hexChannel(s string, at int) uint8 {
	if len(s) < at+2 {
		return 0
	}
	v, err := strconv.ParseUint(s[at:at+2], 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// Hex formats the color as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color converts to a lipgloss color.
func (c RGB) Color() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// New builds a theme from hex strings. Colors past PaletteSize are ignored;
// missing slots stay unset.
func New(name string, hexes []string) Theme {
	t := Theme{Name: name}
	for i, h := range hexes {
		if i >= PaletteSize {
			break
		}
		t.Palette[i] = ParseHex(h).Color()
	}
	return t
}
