package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText(fileMode bool) string {
	s := "v mode"
	if fileMode {
		s += "  space pause"
	}
	return s + "  q quit"
}
