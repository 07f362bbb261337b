package visual

import (
	"strings"

	"github.com/lajordan/vizor/internal/analyzer"
	"github.com/lajordan/vizor/internal/config"
	"github.com/lajordan/vizor/internal/source"
)

const peakFall = 0.008 // per frame, slower than the bar decay

// Meter renders overall loudness as one thick horizontal bar with a
// peak-hold marker.
type Meter struct {
	amp    *analyzer.Amplitude
	bars   *Bars
	drive  []float64
	peak   float64
	output string
}

// NewMeter builds the amplitude-mode visualizer.
func NewMeter(t config.Tuning) *Meter {
	return &Meter{
		amp:   analyzer.NewAmplitude(t),
		bars:  NewBars(1, t),
		drive: []float64{0},
	}
}

func (m *Meter) Name() string { return "amplitude" }

func (m *Meter) Update(block source.Block, fresh bool, width, height int) {
	if fresh {
		m.drive = m.amp.Analyze(block)
	}
	level := m.bars.Step(m.drive)[0]

	if level > m.peak {
		m.peak = level
	} else {
		m.peak -= peakFall
		if m.peak < 0 {
			m.peak = 0
		}
	}

	m.output = m.render(level, width, height)
}

func (m *Meter) render(level float64, width, height int) string {
	barWidth := width - 4
	if barWidth < 10 {
		barWidth = 10
	}
	thickness := height / 4
	if thickness < 1 {
		thickness = 1
	}
	if thickness > 5 {
		thickness = 5
	}

	line := renderLevelBar(level, m.peak, barWidth)

	var sb strings.Builder
	pad := (height - thickness) / 2
	for range pad {
		sb.WriteByte('\n')
	}
	for i := range thickness {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("  ")
		sb.WriteString(line)
	}
	for r := pad + thickness; r < height; r++ {
		sb.WriteByte('\n')
	}
	return sb.String()
}

// renderLevelBar draws a filled bar with a held peak marker, colored green
// through red by position.
func renderLevelBar(level, peak float64, width int) string {
	filled := int(level * float64(width))
	peakPos := int(peak * float64(width))
	if peakPos >= width {
		peakPos = width - 1
	}

	var sb strings.Builder
	color := newANSIState()
	for i := range width {
		var ch rune
		switch {
		case i == peakPos && peakPos >= filled && peak > 0:
			ch = '│'
			color.set(&sb, colorRGB{R: 255, G: 250, B: 205})
		case i < filled:
			ch = '█'
			color.set(&sb, heatColor(float64(i)/float64(width)))
		default:
			ch = '─'
			color.set(&sb, colorRGB{R: 70, G: 74, B: 82})
		}
		sb.WriteRune(ch)
	}
	color.reset(&sb)
	return sb.String()
}

func (m *Meter) View() string { return m.output }
