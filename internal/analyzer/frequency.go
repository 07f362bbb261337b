package analyzer

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/lajordan/vizor/internal/config"
	"github.com/lajordan/vizor/internal/source"
)

// Frequency buckets FFT magnitudes into logarithmically spaced bars. Low
// bins get fine-grained bars while the sparse high end shares them, so a
// bass line and a hi-hat both read on the display.
type Frequency struct {
	bars        int
	fftSize     int
	compression float64
	window      []float64
	edges       []int // edges[b]..edges[b+1] is bar b's bin range
	padded      []float64
}

// NewFrequency builds a frequency analyzer for the given bar count and
// block size. The transform length is the block size rounded up to a power
// of two; shorter blocks are zero-padded.
func NewFrequency(bars, blockSize int, t config.Tuning) *Frequency {
	n := nextPow2(blockSize)

	window := make([]float64, n)
	for i := range window {
		window[i] = 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/float64(n-1)))
	}

	return &Frequency{
		bars:        bars,
		fftSize:     n,
		compression: t.Compression,
		window:      window,
		edges:       bandEdges(bars, n/2),
		padded:      make([]float64, n),
	}
}

func (f *Frequency) Analyze(block source.Block) []float64 {
	for i := range f.padded {
		if i < len(block.Samples) {
			f.padded[i] = block.Samples[i] * f.window[i]
		} else {
			f.padded[i] = 0
		}
	}

	spectrum := fft.FFTReal(f.padded)

	// A full-scale Hann-windowed sine peaks near n/4 in magnitude; use that
	// as the reference so typical material lands inside [0, 1].
	ref := float64(f.fftSize) / 4.0

	out := make([]float64, f.bars)
	for b := range f.bars {
		lo, hi := f.edges[b], f.edges[b+1]
		sum := 0.0
		for i := lo; i < hi; i++ {
			sum += cmplx.Abs(spectrum[i])
		}
		mean := sum / float64(hi-lo) / ref
		out[b] = clamp01(f.compress(mean))
	}
	return out
}

// compress applies log10(1+g*x)/log10(1+g), which maps [0,1] onto [0,1]
// while lifting small magnitudes into view.
func (f *Frequency) compress(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log10(1+f.compression*x) / math.Log10(1+f.compression)
}

// BarOfBin returns which bar the given FFT bin lands in.
func (f *Frequency) BarOfBin(bin int) int {
	for b := range f.bars {
		if bin < f.edges[b+1] {
			return b
		}
	}
	return f.bars - 1
}

// BarOfFreq returns which bar the given frequency lands in at the given
// sample rate.
func (f *Frequency) BarOfFreq(hz float64, sampleRate int) int {
	bin := int(hz * float64(f.fftSize) / float64(sampleRate))
	return f.BarOfBin(bin)
}

// bandEdges returns bars+1 strictly increasing bin boundaries following a
// logarithmic curve from bin 1 to maxBin. Strict monotonicity guarantees
// every bar owns at least one bin and the bin-to-bar mapping never
// decreases.
func bandEdges(bars, maxBin int) []int {
	edges := make([]int, bars+1)
	edges[0] = 1
	for b := 1; b <= bars; b++ {
		e := int(math.Pow(float64(maxBin), float64(b)/float64(bars)))
		if e <= edges[b-1] {
			e = edges[b-1] + 1
		}
		if e > maxBin {
			e = maxBin
		}
		edges[b] = e
	}
	// Re-assert strictness in case the cap flattened the tail.
	for b := bars; b > 0; b-- {
		if edges[b] <= edges[b-1] {
			edges[b-1] = edges[b] - 1
		}
	}
	return edges
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
