package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tesla-buddy/pkg/mdview"
)

var (
	colorAccent  = lipgloss.Color("#E31937") // Tesla red
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
)

// Styles holds every lipgloss style used by the terminal views.
type Styles struct {
	Title     lipgloss.Style
	Heading   lipgloss.Style
	Subhead   lipgloss.Style
	Text      lipgloss.Style
	Link      lipgloss.Style
	Muted     lipgloss.Style
	Checked   lipgloss.Style
	Unchecked lipgloss.Style
	Cursor    lipgloss.Style
	Progress  lipgloss.Style
	Help      lipgloss.Style
	Error     lipgloss.Style
	Box       lipgloss.Style
}

// NewStyles builds styles from the palette of theme.
func NewStyles(theme mdview.Theme) Styles {
	p := theme.Palette()
	text := lipgloss.Color(p.Text)
	link := lipgloss.Color(p.Link)
	muted := lipgloss.Color(p.Muted)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),
		Subhead: lipgloss.NewStyle().
			Bold(true).
			Foreground(link),
		Text: lipgloss.NewStyle().
			Foreground(text),
		Link: lipgloss.NewStyle().
			Underline(true).
			Foreground(link),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		Checked: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(muted),
		Unchecked: lipgloss.NewStyle().
			Foreground(text),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent),
		Progress: lipgloss.NewStyle().
			Foreground(colorSuccess),
		Help: lipgloss.NewStyle().
			Foreground(muted),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
	}
}
