// Package analyzer reduces sample blocks to drive values. Both analyzers are
// pure: the same block always yields the same output, and no I/O or shared
// state is involved.
package analyzer

import (
	"math"

	"github.com/lajordan/vizor/internal/source"
)

// Analyzer turns one sample block into a drive vector with every value in
// [0, 1]. Amplitude mode yields a single scalar, frequency mode one value
// per bar.
type Analyzer interface {
	Analyze(block source.Block) []float64
}

// RMS returns the root-mean-square of the samples. An empty or all-zero
// slice yields exactly 0.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
