// Package visual renders sample blocks as text frames. Each visualizer owns
// its analysis and smoothing state; the render loop feeds it the latest
// block once per frame and asks for the current view.
package visual

import (
	"github.com/lajordan/vizor/internal/config"
	"github.com/lajordan/vizor/internal/source"
)

// Visualizer consumes one block per display frame. fresh is false when the
// block is a reread of the previous one; smoothing still advances so the
// display keeps moving at frame cadence.
type Visualizer interface {
	Name() string
	Update(block source.Block, fresh bool, width, height int)
	View() string
}

// Modes builds all visualizers for the given pipeline configuration, in
// cycle order.
func Modes(cfg config.Config) []Visualizer {
	return []Visualizer{
		NewMeter(cfg.Tuning),
		NewSpectrum(cfg.Bars, cfg.BlockSize, cfg.Tuning),
		NewWave(),
	}
}

// IndexOf maps a configured mode to its position in Modes.
func IndexOf(mode config.Mode) int {
	switch mode {
	case config.ModeFrequency:
		return 1
	case config.ModeWave:
		return 2
	default:
		return 0
	}
}
