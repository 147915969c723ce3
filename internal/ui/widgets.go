package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Box-drawing characters for panel borders.
const (
	borderTopLeft     = "┌"
	borderTopRight    = "┐"
	borderBottomLeft  = "└"
	borderBottomRight = "┘"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// fitLine truncates or pads s to exactly width cells. Padding is painted
// with fill so the theme background reaches the edge.
func fitLine(s string, width int, fill lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "")
	}
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += fill.Render(strings.Repeat(" ", pad))
	}
	return s
}

// fitBlock returns exactly height lines of exactly width cells.
func fitBlock(lines []string, width, height int, fill lipgloss.Style) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = fitLine(line, width, fill)
	}
	return out
}

// blank is a width x height area of background.
func blank(width, height int, fill lipgloss.Style) []string {
	return fitBlock(nil, width, height, fill)
}

// box draws a bordered panel with title set into the top edge. Body lines
// are clipped to the interior. Areas too small for a border are filled
// with background.
func (v *view) box(title string, body []string, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	if width < 2 || height < 2 {
		return blank(width, height, v.styles.Base)
	}

	inner := width - 2
	b := v.styles.Border

	title = ansi.Truncate(title, inner, "")
	rule := inner - ansi.StringWidth(title)
	top := b.Render(borderTopLeft) +
		v.styles.Title.Render(title) +
		b.Render(strings.Repeat(borderHorizontal, rule)) +
		b.Render(borderTopRight)

	lines := make([]string, 0, height)
	lines = append(lines, top)
	fitted := fitBlock(body, inner, height-2, v.styles.Base)
	for i := 0; i < height-2; i++ {
		var l string
		if i < len(fitted) {
			l = fitted[i]
		}
		lines = append(lines, b.Render(borderVertical)+l+b.Render(borderVertical))
	}
	lines = append(lines, b.Render(borderBottomLeft+strings.Repeat(borderHorizontal, inner)+borderBottomRight))
	return lines
}

// gauge draws a horizontal bar height rows tall. The filled share is
// painted in color and label is centred on the middle row.
func (v *view) gauge(label string, percent float64, color lipgloss.TerminalColor, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	if math.IsNaN(percent) {
		percent = 0
	}
	percent = math.Floor(min(max(percent, 0), 100))
	filled := int(math.Round(float64(width) * percent / 100))

	filledStyle := lipgloss.NewStyle().Foreground(v.styles.Background).Background(color)
	emptyStyle := lipgloss.NewStyle().Foreground(color).Background(v.styles.Background)

	label = ansi.Truncate(label, width, "")
	labelStart := max((width-ansi.StringWidth(label))/2, 0)
	labelRow := fitLine(strings.Repeat(" ", labelStart)+label, width, lipgloss.NewStyle())
	blankRow := strings.Repeat(" ", width)

	lines := make([]string, height)
	for row := range lines {
		cells := blankRow
		if row == height/2 {
			cells = labelRow
		}
		line := filledStyle.Render(ansi.Truncate(cells, filled, "")) +
			emptyStyle.Render(ansi.TruncateLeft(cells, filled, ""))
		lines[row] = fitLine(line, width, v.styles.Base)
	}
	return lines
}

// joinColumns places blocks of equal height side by side.
func joinColumns(blocks ...[]string) []string {
	height := 0
	for _, b := range blocks {
		height = max(height, len(b))
	}
	out := make([]string, height)
	for i := range out {
		var sb strings.Builder
		for _, b := range blocks {
			if i < len(b) {
				sb.WriteString(b[i])
			}
		}
		out[i] = sb.String()
	}
	return out
}
