package analyzer

import (
	"math"

	"github.com/lajordan/vizor/internal/config"
	"github.com/lajordan/vizor/internal/source"
)

// Amplitude maps a block's RMS onto [0, 1] through a dB scale. The
// logarithmic mapping compresses the dynamic range so quiet and loud
// material both land in a usable visual band.
type Amplitude struct {
	dbFloor float64
}

// NewAmplitude builds an amplitude analyzer with the given tuning.
func NewAmplitude(t config.Tuning) *Amplitude {
	return &Amplitude{dbFloor: t.DBFloor}
}

func (a *Amplitude) Analyze(block source.Block) []float64 {
	return []float64{a.Level(RMS(block.Samples))}
}

// Level converts an RMS value to a bar level. Silence maps to exactly 0.
func (a *Amplitude) Level(rms float64) float64 {
	if rms < 1e-9 {
		return 0
	}
	db := 20.0 * math.Log10(rms)
	if db < a.dbFloor {
		return 0
	}
	return clamp01((db - a.dbFloor) / -a.dbFloor)
}
