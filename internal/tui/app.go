package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexmorgan/folio/internal/content"
	"github.com/alexmorgan/folio/internal/export"
	"github.com/alexmorgan/folio/internal/theme"
)

// App is the root Bubble Tea model. It owns section navigation, the
// quick-nav menu, the project detail overlay, the toast, and the theme
// controller that every view renders with.
type App struct {
	themes *theme.Controller
	width  int
	height int

	activeSection section
	menuOpen      bool
	menuCursor    int
	showHelp      bool
	exportPicking bool
	exportCursor  int

	home         homeModel
	projects     projectsModel
	achievements achievementsModel
	skills       skillsModel
	contact      contactModel
	modal        modalModel

	help      help.Model
	toast     string
	toastKind toastKind
	toastSeq  int
}

func NewApp(tc *theme.Controller) App {
	h := help.New()
	h.ShowAll = false

	return App{
		themes:        tc,
		activeSection: sectionHome,
		home:          newHomeModel(tc),
		projects:      newProjectsModel(tc),
		achievements:  newAchievementsModel(tc),
		skills:        newSkillsModel(tc),
		contact:       newContactModel(tc),
		modal:         newModalModel(tc),
		help:          h,
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

// ActiveSection reports the section the nav currently highlights. It only
// changes on explicit navigation, never on its own.
func (a App) ActiveSection() string {
	return sectionNames[a.activeSection]
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.home.setSize(a.width, contentHeight)
		a.projects.setSize(a.width, contentHeight)
		a.achievements.setSize(a.width, contentHeight)
		a.skills.setSize(a.width, contentHeight)
		a.contact.setSize(a.width, contentHeight)
		a.modal.setSize(a.width, contentHeight)
		return a, nil

	case toastMsg:
		a.toast = msg.text
		a.toastKind = msg.kind
		a.toastSeq++
		seq := a.toastSeq
		return a, tea.Tick(toastAutoClose, func(time.Time) tea.Msg {
			return toastExpiredMsg{seq: seq}
		})

	case toastExpiredMsg:
		if msg.seq == a.toastSeq {
			a.toast = ""
		}
		return a, nil

	case openProjectMsg:
		a.modal.openWith(msg.id)
		return a, nil

	case progress.FrameMsg:
		// Skill bar animation frames, routed regardless of the active
		// section so bars finish after navigating away.
		var cmd tea.Cmd
		a.skills, cmd = a.skills.update(msg)
		return a, cmd

	case tea.KeyMsg:
		if a.modal.isOpen() {
			return a.updateModal(msg)
		}
		if a.menuOpen {
			return a.updateMenu(msg)
		}
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// The contact form captures input while active.
		if a.contact.formActive {
			var cmd tea.Cmd
			a.contact, cmd = a.contact.update(msg)
			return a, cmd
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Theme):
			a.themes.Toggle()
			a.skills.applyTheme()
			return a, nil
		case key.Matches(msg, keys.Menu):
			a.menuOpen = !a.menuOpen
			a.menuCursor = int(a.activeSection)
			return a, nil
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Nav1):
			return a.navigateTo(sectionHome)
		case key.Matches(msg, keys.Nav2):
			return a.navigateTo(sectionProjects)
		case key.Matches(msg, keys.Nav3):
			return a.navigateTo(sectionAchievements)
		case key.Matches(msg, keys.Nav4):
			return a.navigateTo(sectionSkills)
		case key.Matches(msg, keys.Nav5):
			return a.navigateTo(sectionContact)
		case key.Matches(msg, keys.Next):
			return a.navigateTo((a.activeSection + 1) % sectionCount)
		}
	}

	return a.updateActiveSection(msg)
}

// navigateTo switches to a section and closes the quick-nav menu. Entering
// the skills section kicks off the bar animation.
func (a App) navigateTo(s section) (tea.Model, tea.Cmd) {
	a.activeSection = s
	a.menuOpen = false
	if s == sectionSkills {
		var cmd tea.Cmd
		a.skills, cmd = a.skills.start()
		return a, cmd
	}
	return a, nil
}

func (a App) updateActiveSection(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeSection {
	case sectionProjects:
		a.projects, cmd = a.projects.update(msg)
	case sectionSkills:
		a.skills, cmd = a.skills.update(msg)
	case sectionContact:
		a.contact, cmd = a.contact.update(msg)
	}
	return a, cmd
}

func (a App) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Close):
		a.modal.close()
	case key.Matches(msg, keys.Left):
		a.modal.openWith(neighborProject(a.modal.selected(), -1))
	case key.Matches(msg, keys.Right):
		a.modal.openWith(neighborProject(a.modal.selected(), 1))
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit
	}
	return a, nil
}

// neighborProject returns the id of the project delta positions away in the
// catalog, wrapping around.
func neighborProject(id string, delta int) string {
	all := content.Projects()
	for i, p := range all {
		if p.ID == id {
			j := (i + delta + len(all)) % len(all)
			return all[j].ID
		}
	}
	return id
}

func (a App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.menuCursor > 0 {
			a.menuCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.menuCursor < sectionCount-1 {
			a.menuCursor++
		}
	case key.Matches(msg, keys.Enter):
		return a.navigateTo(section(a.menuCursor))
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Menu):
		a.menuOpen = false
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit
	}
	return a, nil
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	return func() tea.Msg {
		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		var err error
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("folio-portfolio-%s.csv", dateStr))
			err = export.ToCSV(content.Projects(), path)
		} else {
			path = filepath.Join(home, fmt.Sprintf("folio-portfolio-%s.json", dateStr))
			err = export.ToJSON(content.Me(), content.Projects(), content.Achievements(), content.Skills(), path)
		}
		if err != nil {
			return toastMsg{text: fmt.Sprintf("Export error: %v", err), kind: toastError}
		}
		return toastMsg{text: "Exported to " + path, kind: toastSuccess}
	}
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var body string
	switch a.activeSection {
	case sectionHome:
		body = a.home.view()
	case sectionProjects:
		body = a.projects.view()
	case sectionAchievements:
		body = a.achievements.view()
	case sectionSkills:
		body = a.skills.view()
	case sectionContact:
		body = a.contact.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	// Overlays replace the section body.
	if a.modal.isOpen() {
		body = a.modal.view()
	} else if a.menuOpen {
		body = a.renderMenu()
	} else if a.exportPicking {
		body = a.renderExportPicker()
	}

	body = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (a App) renderHeader() string {
	st := a.themes.Styles()

	var tabs []string
	for i, name := range sectionNames {
		if section(i) == a.activeSection {
			tabs = append(tabs, st.ActiveTab.Render(name))
		} else {
			tabs = append(tabs, st.InactiveTab.Render(name))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := st.HeroName.Render(content.Me().Name)

	mode := "☾"
	if a.themes.Mode() == theme.ModeDark {
		mode = "☀"
	}
	modeHint := st.Muted.Render(mode + " t")

	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - lipgloss.Width(modeHint) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return st.Header.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow, modeHint),
	)
}

func (a App) renderFooter() string {
	st := a.themes.Styles()
	helpView := a.help.View(keys)

	status := ""
	if a.toast != "" {
		if a.toastKind == toastError {
			status = st.Error.Render(" ✗ " + a.toast)
		} else {
			status = st.Success.Render(" ✓ " + a.toast)
		}
	}

	left := st.Footer.Render(helpView)

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status)
}

func (a App) renderMenu() string {
	st := a.themes.Styles()
	title := st.Title.Render("Go to")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, name := range sectionNames {
		cursor := "  "
		style := st.NormalItem
		if i == a.menuCursor {
			cursor = "> "
			style = st.SelectedItem
		}
		marker := " "
		if section(i) == a.activeSection {
			marker = "·"
		}
		rows = append(rows, style.Render(cursor+name)+" "+st.Muted.Render(marker))
	}
	rows = append(rows, "")
	rows = append(rows, st.Muted.Render("  enter: go  esc: close"))

	w := a.width - 4
	return st.ActivePanel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) renderExportPicker() string {
	st := a.themes.Styles()
	title := st.Title.Render("Export Format")
	formats := []string{"CSV", "JSON"}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := st.NormalItem
		if i == a.exportCursor {
			cursor = "> "
			style = st.SelectedItem
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, st.Muted.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return st.ActivePanel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
