package visual

import (
	"math"
	"strings"

	"github.com/lajordan/vizor/internal/source"
)

// Wave renders the raw sample trace, spring-smoothed per column.
type Wave struct {
	field  springField
	output string
}

// NewWave builds the waveform visualizer.
func NewWave() *Wave {
	return &Wave{field: newSpringField(30, 14.0, 0.8)}
}

func (w *Wave) Name() string { return "wave" }

func (w *Wave) View() string { return w.output }

func (w *Wave) Update(block source.Block, fresh bool, width, height int) {
	if width < 4 || height < 1 {
		w.output = ""
		return
	}

	cols := width - 2
	if cols < 8 {
		cols = 8
	}
	w.field.resize(cols)

	if len(block.Samples) > 0 {
		spc := float64(len(block.Samples)) / float64(cols)
		for c := range cols {
			lo := int(float64(c) * spc)
			hi := int(float64(c+1) * spc)
			if hi > len(block.Samples) {
				hi = len(block.Samples)
			}
			if hi <= lo {
				continue
			}
			sum := 0.0
			for i := lo; i < hi; i++ {
				sum += block.Samples[i]
			}
			w.field.step(c, sum/float64(hi-lo))
		}
	}

	w.output = w.render(cols, height)
}

func (w *Wave) render(cols, height int) string {
	mask := make([][]bool, height)
	for r := range height {
		mask[r] = make([]bool, cols)
	}

	prev := ampToRow(w.field.pos[0], height)
	mask[prev][0] = true
	for c := 1; c < cols; c++ {
		row := ampToRow(w.field.pos[c], height)
		// Connect vertically so steep transitions stay a line.
		lo, hi := prev, row
		if lo > hi {
			lo, hi = hi, lo
		}
		for r := lo; r <= hi; r++ {
			mask[r][c] = true
		}
		prev = row
	}

	mid := height / 2
	var out strings.Builder
	color := newANSIState()
	for r := range height {
		if r > 0 {
			out.WriteByte('\n')
		}
		for c := range cols {
			switch {
			case mask[r][c]:
				color.set(&out, traceColor(c))
				out.WriteRune('●')
			case r == mid:
				color.set(&out, colorRGB{R: 60, G: 66, B: 90})
				out.WriteRune('·')
			default:
				out.WriteByte(' ')
			}
		}
		color.reset(&out)
	}
	return out.String()
}

// ampToRow maps a sample in [-1, 1] to a display row, top row first.
func ampToRow(amp float64, height int) int {
	if height <= 1 {
		return 0
	}
	amp = clamp01((amp + 1) / 2)
	row := int(math.Round((1 - amp) * float64(height-1)))
	if row < 0 {
		row = 0
	}
	if row >= height {
		row = height - 1
	}
	return row
}
