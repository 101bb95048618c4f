package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexmorgan/folio/internal/content"
	"github.com/alexmorgan/folio/internal/theme"
)

// skillsModel renders one animated bar per skill plus an expertise chart.
// The animation is cosmetic: the expertise values themselves never change.
type skillsModel struct {
	themes *theme.Controller
	width  int
	height int

	bars  []progress.Model
	chart barchart.Model
}

func newSkillsModel(tc *theme.Controller) skillsModel {
	s := skillsModel{themes: tc}
	s.applyTheme()
	return s
}

func (s *skillsModel) setSize(w, h int) {
	s.width = w
	s.height = h
	barWidth := min(w-10, 60)
	if barWidth < 10 {
		barWidth = 10
	}
	for i := range s.bars {
		s.bars[i].Width = barWidth
	}
	s.buildChart()
}

// applyTheme rebuilds the gradient bars and the chart from the current
// palette. Called after every theme toggle.
func (s *skillsModel) applyTheme() {
	p := s.themes.Palette()
	s.bars = s.bars[:0]
	for range content.Skills() {
		b := progress.New(
			progress.WithGradient(string(p.PrimaryLight), string(p.Primary)),
			progress.WithoutPercentage(),
		)
		s.bars = append(s.bars, b)
	}
	if s.width > 0 {
		s.setSize(s.width, s.height)
	} else {
		s.buildChart()
	}
}

// start kicks off the bar animation toward each skill's expertise level.
func (s skillsModel) start() (skillsModel, tea.Cmd) {
	var cmds []tea.Cmd
	for i, sk := range content.Skills() {
		cmds = append(cmds, s.bars[i].SetPercent(float64(sk.Expertise)/100))
	}
	return s, tea.Batch(cmds...)
}

func (s skillsModel) update(msg tea.Msg) (skillsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case progress.FrameMsg:
		// Each bar filters frames by its own id, so broadcast is safe.
		var cmds []tea.Cmd
		for i := range s.bars {
			m, cmd := s.bars[i].Update(msg)
			s.bars[i] = m.(progress.Model)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return s, tea.Batch(cmds...)
	}
	return s, nil
}

func (s *skillsModel) buildChart() {
	chartWidth := s.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 8

	s.chart = barchart.New(chartWidth, chartHeight)

	p := s.themes.Palette()
	style := lipgloss.NewStyle().Foreground(p.Primary)

	var bars []barchart.BarData
	for _, sk := range content.Skills() {
		bars = append(bars, barchart.BarData{
			Label: abbreviate(sk.Name),
			Values: []barchart.BarValue{
				{Name: sk.Name, Value: float64(sk.Expertise), Style: style},
			},
		})
	}
	s.chart.PushAll(bars)
	s.chart.Draw()
}

// abbreviate turns "Digital Marketing" into "DM" for chart labels.
func abbreviate(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		b.WriteString(word[:1])
	}
	return b.String()
}

func (s skillsModel) view() string {
	st := s.themes.Styles()
	w := s.width - 4
	textWidth := min(w-6, 76)

	header := lipgloss.JoinVertical(lipgloss.Left,
		st.Badge.Render("SKILLS"),
		st.Title.Render("Marketing Expertise"),
		st.Subtitle.Render("Comprehensive skill set in digital marketing, strategy development, and campaign execution"),
	)

	rows := []string{header, ""}
	for i, sk := range content.Skills() {
		label := fmt.Sprintf("%s  %s",
			st.Title.Render(sk.Name),
			st.Highlight.Render(fmt.Sprintf("%d%%", sk.Expertise)),
		)
		rows = append(rows, label)
		rows = append(rows, s.bars[i].View())
		rows = append(rows, st.Muted.Width(textWidth).Render(sk.Description))
		rows = append(rows, "")
	}

	rows = append(rows, s.chart.View())

	return st.Panel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
