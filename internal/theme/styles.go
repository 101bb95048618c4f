package theme

import "github.com/charmbracelet/lipgloss"

// Status colors are mode-independent.
var (
	colorSuccess = lipgloss.Color("#2ECC71")
	colorError   = lipgloss.Color("#E74C3C")
)

// Styles is the lipgloss style set every view renders with. It is rebuilt
// from the palette whenever the mode changes.
type Styles struct {
	// Tabs
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	// Panels
	Panel       lipgloss.Style
	ActivePanel lipgloss.Style

	// Text
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style

	// Hero
	HeroName lipgloss.Style
	Badge    lipgloss.Style

	// Header/footer
	Header lipgloss.Style
	Footer lipgloss.Style

	// List items
	SelectedItem lipgloss.Style
	NormalItem   lipgloss.Style
}

func newStyles(p Palette) Styles {
	return Styles{
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.Primary).
			Padding(0, 2),

		InactiveTab: lipgloss.NewStyle().
			Foreground(p.TextMuted).
			Padding(0, 2),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.CardBorder).
			Padding(1, 2),

		ActivePanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.TextMuted),

		Muted: lipgloss.NewStyle().
			Foreground(p.TextMuted),

		Highlight: lipgloss.NewStyle().
			Foreground(p.Primary),

		Success: lipgloss.NewStyle().
			Foreground(colorSuccess),

		Error: lipgloss.NewStyle().
			Foreground(colorError),

		HeroName: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.Primary).
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(p.TextMuted).
			Padding(0, 1),

		SelectedItem: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		NormalItem: lipgloss.NewStyle().
			Foreground(p.Text),
	}
}
