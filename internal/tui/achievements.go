package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexmorgan/folio/internal/content"
	"github.com/alexmorgan/folio/internal/theme"
)

// achievementsModel renders the career highlights. Purely static.
type achievementsModel struct {
	themes *theme.Controller
	width  int
	height int
}

func newAchievementsModel(tc *theme.Controller) achievementsModel {
	return achievementsModel{themes: tc}
}

func (a *achievementsModel) setSize(w, h int) {
	a.width = w
	a.height = h
}

func (a achievementsModel) view() string {
	st := a.themes.Styles()
	w := a.width - 4
	textWidth := min(w-8, 76)

	header := lipgloss.JoinVertical(lipgloss.Left,
		st.Badge.Render("ACHIEVEMENTS"),
		st.Title.Render("Career Highlights"),
		st.Subtitle.Render("Recognitions and accomplishments that demonstrate my impact in the marketing industry"),
	)

	rows := []string{header, ""}
	for _, ach := range content.Achievements() {
		line := fmt.Sprintf("%s  %s  %s",
			ach.Icon,
			st.Title.Render(ach.Title),
			st.Highlight.Render(fmt.Sprintf("%d", ach.Year)),
		)
		rows = append(rows, line)
		rows = append(rows, "    "+st.Muted.Width(textWidth).Render(ach.Description))
		rows = append(rows, "")
	}

	return st.Panel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
