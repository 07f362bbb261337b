package visual

import "github.com/lajordan/vizor/internal/config"

// Bars smooths raw drive values into displayed heights with asymmetric
// attack and decay: a fast blend upward, a bounded linear fall. Each bar is
// independent. Heights stay in [0, 1].
type Bars struct {
	heights []float64
	attack  float64
	decay   float64
}

// NewBars builds a smoother for n bars.
func NewBars(n int, t config.Tuning) *Bars {
	return &Bars{
		heights: make([]float64, n),
		attack:  t.Attack,
		decay:   t.Decay,
	}
}

// Step advances every bar one frame toward its drive value and returns the
// updated heights. The returned slice is owned by the model; callers must
// not retain it across frames.
func (b *Bars) Step(drive []float64) []float64 {
	for i := range b.heights {
		d := 0.0
		if i < len(drive) {
			d = clamp01(drive[i])
		}

		h := b.heights[i]
		if d >= h {
			h += b.attack * (d - h)
			if d-h < 1e-3 {
				h = d
			}
		} else {
			h -= b.decay
			if h < d {
				h = d
			}
		}
		b.heights[i] = clamp01(h)
	}
	return b.heights
}

// Heights returns the current displayed heights without advancing.
func (b *Bars) Heights() []float64 { return b.heights }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
