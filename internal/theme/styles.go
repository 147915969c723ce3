package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles derived from one theme.
type Styles struct {
	Base        lipgloss.Style
	Border      lipgloss.Style
	Title       lipgloss.Style
	Separator   lipgloss.Style
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style

	Background lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor
	Muted      lipgloss.TerminalColor
}

func BuildStyles(t Theme) Styles {
	s := Styles{
		Background: t.Background(),
		Foreground: t.Foreground(),
		Muted:      t.Muted(),
	}

	s.Base = lipgloss.NewStyle().Foreground(s.Foreground).Background(s.Background)
	s.Border = lipgloss.NewStyle().Foreground(s.Foreground).Background(s.Background)
	s.Title = lipgloss.NewStyle().Foreground(s.Foreground).Background(s.Background).Bold(true)
	s.Separator = lipgloss.NewStyle().Foreground(s.Muted).Background(s.Background)
	s.TableHeader = lipgloss.NewStyle().Foreground(t.Color(6)).Background(s.Background).Bold(true)
	s.TableCell = lipgloss.NewStyle().Foreground(s.Foreground).Background(s.Background)

	return s
}

// Fill returns a style painting color on the theme background.
func (s Styles) Fill(color lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color).Background(s.Background)
}
