package tui

import "time"

// section is one of the five navigable regions of the page.
type section int

const (
	sectionHome section = iota
	sectionProjects
	sectionAchievements
	sectionSkills
	sectionContact
)

var sectionNames = []string{"Home", "Projects", "Achievements", "Skills", "Contact"}

const sectionCount = 5

// toastAutoClose is how long a toast stays up before clearing itself.
const toastAutoClose = 5 * time.Second

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

// --- Messages ---

// toastMsg asks the app to show a footer notification.
type toastMsg struct {
	text string
	kind toastKind
}

// toastExpiredMsg clears the toast identified by seq; stale ticks are
// ignored so a newer toast keeps its full display time.
type toastExpiredMsg struct {
	seq int
}

// openProjectMsg asks the app to open the detail overlay for a project.
type openProjectMsg struct {
	id string
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
