package ui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(m.modes[m.active].Name()))
	if m.paused {
		b.WriteString("  ")
		b.WriteString(statusStyle.Render("⏸ paused"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.modes[m.active].View())
	b.WriteString("\n\n")

	b.WriteString(" ")
	if m.cfg.FileMode() {
		var ratio float64
		if m.duration > 0 {
			ratio = float64(m.elapsed) / float64(m.duration)
		}
		b.WriteString(m.progress.ViewAs(ratio))
		b.WriteString(timeStyle.Render(fmt.Sprintf("  %s / %s",
			formatDuration(m.elapsed), formatDuration(m.duration))))
	} else {
		b.WriteString(statusStyle.Render(fmt.Sprintf("%d Hz · block %d",
			m.cfg.SampleRate, m.cfg.BlockSize)))
	}
	b.WriteString("\n ")
	b.WriteString(helpStyle.Render(helpText(m.cfg.FileMode())))

	return b.String()
}
