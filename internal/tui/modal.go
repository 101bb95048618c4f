package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexmorgan/folio/internal/content"
	"github.com/alexmorgan/folio/internal/theme"
)

// modalModel is the project detail overlay. Two states: closed, or open on
// a project that resolves in the catalog. It holds no project data itself,
// only the selected id.
type modalModel struct {
	themes *theme.Controller
	width  int
	height int

	open      bool
	projectID string
}

func newModalModel(tc *theme.Controller) modalModel {
	return modalModel{themes: tc}
}

func (m *modalModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// openWith opens the overlay on the given project, or swaps the selection
// if already open. An id that does not resolve is a no-op and reports false.
func (m *modalModel) openWith(id string) bool {
	if _, ok := content.FindProject(id); !ok {
		return false
	}
	m.open = true
	m.projectID = id
	return true
}

// close is idempotent; the selection is always cleared.
func (m *modalModel) close() {
	m.open = false
	m.projectID = ""
}

func (m modalModel) isOpen() bool {
	return m.open
}

func (m modalModel) selected() string {
	return m.projectID
}

func (m modalModel) view() string {
	proj, ok := content.FindProject(m.projectID)
	if !ok {
		return ""
	}

	st := m.themes.Styles()
	w := m.width - 8
	textWidth := min(w-4, 80)

	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(proj.Accent)).Render("●")
	title := fmt.Sprintf("%s %s  %s", dot, st.Title.Render(proj.Title), st.Badge.Render(proj.Category))

	sectionTitle := func(s string) string { return st.Highlight.Render(s) }
	body := func(s string) string { return st.Muted.Width(textWidth).Render(s) }

	details := []string{
		fmt.Sprintf("  %s %s", st.Muted.Render("Category:"), st.NormalItem.Render(proj.Category)),
		fmt.Sprintf("  %s %s", st.Muted.Render("Client:  "), st.NormalItem.Render(proj.Client)),
		fmt.Sprintf("  %s %s", st.Muted.Render("Year:    "), st.NormalItem.Render(fmt.Sprintf("%d", proj.Year))),
	}

	var gallery []string
	for i, img := range proj.Images {
		gallery = append(gallery, st.Muted.Render(fmt.Sprintf("  [%d] %s", i+1, img)))
	}

	rows := []string{
		title,
		"",
		sectionTitle("Challenge"),
		body(proj.Challenge),
		"",
		sectionTitle("Solution"),
		body(proj.Solution),
		"",
		sectionTitle("Results"),
		body(proj.Results),
		"",
		sectionTitle("Project Details"),
	}
	rows = append(rows, details...)
	rows = append(rows, "", sectionTitle("Gallery"))
	rows = append(rows, gallery...)
	rows = append(rows, "", st.Muted.Render("  esc/x: close  ←/→: other projects"))

	panel := st.ActivePanel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}
