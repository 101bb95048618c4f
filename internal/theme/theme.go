package theme

import "github.com/charmbracelet/lipgloss"

// Mode is the visual mode of the app, persisted across sessions.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Palette holds the color tokens every view renders with. All tokens are
// derived from the mode via the fixed two-entry table below.
type Palette struct {
	Primary       lipgloss.Color
	PrimaryDark   lipgloss.Color
	PrimaryLight  lipgloss.Color
	Text          lipgloss.Color
	TextMuted     lipgloss.Color
	Background    lipgloss.Color
	BackgroundAlt lipgloss.Color
	Card          lipgloss.Color
	CardBorder    lipgloss.Color
}

var palettes = map[Mode]Palette{
	ModeLight: {
		Primary:       lipgloss.Color("#8B5CF6"),
		PrimaryDark:   lipgloss.Color("#7C3AED"),
		PrimaryLight:  lipgloss.Color("#A78BFA"),
		Text:          lipgloss.Color("#1F2937"),
		TextMuted:     lipgloss.Color("#6B7280"),
		Background:    lipgloss.Color("#FFFFFF"),
		BackgroundAlt: lipgloss.Color("#F3F4F6"),
		Card:          lipgloss.Color("#FFFFFF"),
		CardBorder:    lipgloss.Color("#E5E7EB"),
	},
	ModeDark: {
		Primary:       lipgloss.Color("#A78BFA"),
		PrimaryDark:   lipgloss.Color("#8B5CF6"),
		PrimaryLight:  lipgloss.Color("#C4B5FD"),
		Text:          lipgloss.Color("#F9FAFB"),
		TextMuted:     lipgloss.Color("#D1D5DB"),
		Background:    lipgloss.Color("#111827"),
		BackgroundAlt: lipgloss.Color("#1F2937"),
		Card:          lipgloss.Color("#1F2937"),
		CardBorder:    lipgloss.Color("#374151"),
	},
}

// PaletteFor returns the color tokens for a mode.
func PaletteFor(m Mode) Palette {
	return palettes[m]
}

func parseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeLight:
		return ModeLight, true
	case ModeDark:
		return ModeDark, true
	}
	return "", false
}
