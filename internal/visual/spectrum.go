package visual

import (
	"strings"

	"github.com/lajordan/vizor/internal/analyzer"
	"github.com/lajordan/vizor/internal/config"
	"github.com/lajordan/vizor/internal/source"
)

var barChars = []rune(" ▁▂▃▄▅▆▇█")

// Spectrum renders per-band energy as vertical bars, low frequencies on the
// left.
type Spectrum struct {
	freq   *analyzer.Frequency
	bars   *Bars
	drive  []float64
	output string
}

// NewSpectrum builds the frequency-mode visualizer.
func NewSpectrum(bars, blockSize int, t config.Tuning) *Spectrum {
	return &Spectrum{
		freq:  analyzer.NewFrequency(bars, blockSize, t),
		bars:  NewBars(bars, t),
		drive: make([]float64, bars),
	}
}

func (s *Spectrum) Name() string { return "frequency" }

func (s *Spectrum) Update(block source.Block, fresh bool, width, height int) {
	if fresh {
		s.drive = s.freq.Analyze(block)
	}
	heights := s.bars.Step(s.drive)
	s.output = renderColumns(heights, width, height)
}

func (s *Spectrum) View() string { return s.output }

// renderColumns draws one column group per bar, using partial-block runes
// for the fractional top cell and a heat ramp from base to tip.
func renderColumns(heights []float64, width, height int) string {
	if height < 1 || len(heights) == 0 {
		return ""
	}

	cols := len(heights)
	colWidth := (width - 2) / cols
	if colWidth < 1 {
		colWidth = 1
	}
	gap := 1
	if colWidth <= 1 {
		gap = 0
	}

	rows := make([]string, height)
	for row := range height {
		var line strings.Builder
		color := newANSIState()
		line.WriteByte(' ')
		rowFromBottom := float64(height - 1 - row)
		for b, h := range heights {
			if b > 0 && gap > 0 {
				line.WriteByte(' ')
			}
			level := h * float64(height)
			charIdx := 0
			if level > rowFromBottom+1 {
				charIdx = len(barChars) - 1
			} else if level > rowFromBottom {
				charIdx = int((level - rowFromBottom) * float64(len(barChars)-1))
			}
			ch := barChars[charIdx]
			if charIdx > 0 {
				color.set(&line, heatColor(rowFromBottom/float64(height)))
			}
			for range colWidth - gap {
				line.WriteRune(ch)
			}
		}
		color.reset(&line)
		rows[row] = line.String()
	}
	return strings.Join(rows, "\n")
}
