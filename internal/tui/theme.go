package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// palette is the color set the styles are built from.
type palette struct {
	Text    string
	Muted   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Select  string
}

// mercado is yellow on dark, after the marketplace's branding.
var mercado = palette{
	Text:    "#E6E6E6",
	Muted:   "#8A8A8A",
	Accent:  "#FFE600",
	Success: "#00A650",
	Warning: "#FF7733",
	Danger:  "#F23D4F",
	Select:  "#2D3277",
}

// Styles are the lipgloss styles shared by every screen.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Price     lipgloss.Style
	New       lipgloss.Style
	Used      lipgloss.Style
	Error     lipgloss.Style
	Selected  lipgloss.Style
	Help      lipgloss.Style
	InputBox  lipgloss.Style
	Paragraph lipgloss.Style
}

func newStyles(p palette) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Bold(true).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Price: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)).
			Bold(true),
		New: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)),
		Used: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Danger)).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Select)).
			Foreground(lipgloss.Color(p.Accent)).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			MarginTop(1),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Accent)).
			Padding(0, 1),
		Paragraph: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)),
	}
}

// conditionLabel renders a product condition with its color.
func (s Styles) conditionLabel(c string, used bool) string {
	if used {
		return s.Used.Render(c)
	}
	return s.New.Render(c)
}
