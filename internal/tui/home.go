package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexmorgan/folio/internal/content"
	"github.com/alexmorgan/folio/internal/theme"
)

// homeModel renders the hero section. Purely static.
type homeModel struct {
	themes *theme.Controller
	width  int
	height int
}

func newHomeModel(tc *theme.Controller) homeModel {
	return homeModel{themes: tc}
}

func (h *homeModel) setSize(w, hgt int) {
	h.width = w
	h.height = hgt
}

func (h homeModel) view() string {
	st := h.themes.Styles()
	me := content.Me()
	w := h.width - 4

	textWidth := min(w-6, 72)

	badge := st.Badge.Render(me.Role)
	name := st.HeroName.Render(me.Name)
	tagline := st.Title.Render(me.Tagline)
	bio := st.Subtitle.Width(textWidth).Render(me.Bio)

	cta := st.Highlight.Render("Explore My Work") + st.Muted.Render(" (2)") +
		"   " +
		st.Highlight.Render("Let's Collaborate") + st.Muted.Render(" (5)")

	var social []string
	for _, s := range content.SocialLinks() {
		social = append(social, st.Highlight.Render(s.Name)+" "+st.Muted.Render(s.URL))
	}

	rows := []string{
		badge,
		"",
		name,
		tagline,
		"",
		bio,
		"",
		cta,
		"",
		st.Muted.Render(strings.Join([]string{me.Email, me.Phone, me.Location}, "  ·  ")),
		"",
	}
	rows = append(rows, social...)

	return st.Panel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
