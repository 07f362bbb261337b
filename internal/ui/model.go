// Package ui drives the pipeline: once per display tick it polls the source
// for the newest block, feeds the active visualizer, and renders a frame.
package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lajordan/vizor/internal/config"
	"github.com/lajordan/vizor/internal/source"
	"github.com/lajordan/vizor/internal/visual"
)

// tickInterval paces the render loop at roughly 30 frames per second,
// cooperative with the terminal event loop rather than a dedicated thread.
const tickInterval = 33 * time.Millisecond

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// transport is implemented by sources backed by a finite playing stream.
type transport interface {
	TogglePause()
	Paused() bool
	Position() time.Duration
	Duration() time.Duration
}

// Model is the Bubble Tea model for the visualizer window.
type Model struct {
	cfg    config.Config
	src    source.Source
	modes  []visual.Visualizer
	active int
	title  string

	width    int
	height   int
	progress progress.Model
	elapsed  time.Duration
	duration time.Duration
	paused   bool
	quitting bool
}

// New builds the model around an already started source. title is the track
// title in file mode and the device name in live mode.
func New(cfg config.Config, src source.Source, title string) Model {
	p := progress.New(
		progress.WithScaledGradient("#24C88C", "#FAD246"),
		progress.WithoutPercentage(),
	)

	m := Model{
		cfg:      cfg,
		src:      src,
		modes:    visual.Modes(cfg),
		active:   visual.IndexOf(cfg.Mode),
		title:    title,
		progress: p,
	}
	if t, ok := src.(transport); ok {
		m.duration = t.Duration()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.SetWindowTitle("vizor - "+m.title))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := msg.Width - 22
		if barWidth < 10 {
			barWidth = 10
		}
		m.progress.Width = barWidth
		return m, nil

	case tea.KeyMsg:
		if isQuit(msg) {
			return m.quit()
		}
		switch msg.String() {
		case "v":
			m.active = (m.active + 1) % len(m.modes)
		case " ":
			if t, ok := m.src.(transport); ok {
				t.TogglePause()
				m.paused = t.Paused()
			}
		}
		return m, nil

	case tickMsg:
		block, fresh, err := m.src.Next()
		if errors.Is(err, source.ErrExhausted) {
			// Playback finished; stop the loop cleanly.
			return m.quit()
		}

		m.modes[m.active].Update(block, fresh, m.width, m.vizHeight())
		if t, ok := m.src.(transport); ok {
			m.elapsed = t.Position()
			m.paused = t.Paused()
		}
		return m, tickCmd()
	}

	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.src.Close()
	return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
}

// vizHeight is the rows left for the visualizer after header and footer.
func (m Model) vizHeight() int {
	h := m.height - 5
	if h < 3 {
		h = 3
	}
	return h
}
