package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexmorgan/folio/internal/content"
	"github.com/alexmorgan/folio/internal/theme"
)

// projectsModel renders the showcase cards. Selecting a card asks the app
// to open the detail overlay.
type projectsModel struct {
	themes *theme.Controller
	width  int
	height int

	cursor int
}

func newProjectsModel(tc *theme.Controller) projectsModel {
	return projectsModel{themes: tc}
}

func (p *projectsModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

func (p projectsModel) update(msg tea.Msg) (projectsModel, tea.Cmd) {
	all := content.Projects()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, keys.Down):
			if p.cursor < len(all)-1 {
				p.cursor++
			}
		case key.Matches(msg, keys.Enter):
			id := all[p.cursor].ID
			return p, func() tea.Msg { return openProjectMsg{id: id} }
		}
	}
	return p, nil
}

func (p projectsModel) view() string {
	st := p.themes.Styles()
	w := p.width - 4

	header := lipgloss.JoinVertical(lipgloss.Left,
		st.Badge.Render("PROJECTS"),
		st.Title.Render("Featured Campaigns"),
		st.Subtitle.Render("A showcase of strategic marketing initiatives that drove exceptional results for leading brands"),
	)

	var cards []string
	for i, proj := range content.Projects() {
		cards = append(cards, p.renderCard(proj, i == p.cursor, w-4))
	}

	hint := st.Muted.Render("  ↑/↓: select  enter: view details")

	rows := append([]string{header, ""}, cards...)
	rows = append(rows, hint)
	return st.Panel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (p projectsModel) renderCard(proj content.Project, selected bool, w int) string {
	st := p.themes.Styles()

	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(proj.Accent)).Render("●")
	title := st.NormalItem.Render(proj.Title)
	cursor := "  "
	if selected {
		cursor = "> "
		title = st.SelectedItem.Render(proj.Title)
	}

	category := st.Highlight.Render("[" + proj.Category + "]")
	desc := st.Muted.Width(min(w-6, 76)).Render(proj.Description)

	return strings.Join([]string{
		fmt.Sprintf("%s%s %s %s", cursor, dot, title, category),
		"    " + desc,
	}, "\n")
}
