package analyzer

import (
	"math"
	"testing"

	"github.com/lajordan/vizor/internal/config"
	"github.com/lajordan/vizor/internal/source"
)

func sineBlock(freq float64, amp float64, rate, n int) source.Block {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
	}
	return source.Block{Samples: samples, SampleRate: rate}
}

func TestRMSOfSine(t *testing.T) {
	block := sineBlock(1000, 0.5, 44100, 4410) // whole number of cycles
	got := RMS(block.Samples)
	want := 0.5 / math.Sqrt2
	if math.Abs(got-want) > 0.01 {
		t.Fatalf("RMS = %v, want %v ± 0.01", got, want)
	}
}

func TestAmplitudeZeroBlockIsExactlyZero(t *testing.T) {
	a := NewAmplitude(config.DefaultTuning())
	out := a.Analyze(source.Block{Samples: make([]float64, 1024), SampleRate: 44100})
	if len(out) != 1 {
		t.Fatalf("drive vector length = %d, want 1", len(out))
	}
	if out[0] != 0 {
		t.Fatalf("zero block level = %v, want exactly 0", out[0])
	}
}

func TestAmplitudeRange(t *testing.T) {
	a := NewAmplitude(config.DefaultTuning())
	amps := []float64{0.001, 0.01, 0.1, 0.5, 1.0, 2.0}
	prev := -1.0
	for _, amp := range amps {
		out := a.Analyze(sineBlock(440, amp, 44100, 1024))
		level := out[0]
		if level < 0 || level > 1 {
			t.Fatalf("amp %v: level %v out of [0,1]", amp, level)
		}
		if level < prev {
			t.Fatalf("amp %v: level %v fell below quieter signal's %v", amp, level, prev)
		}
		prev = level
	}
}

func TestAmplitudeSineMatchesExpectedLevel(t *testing.T) {
	tuning := config.DefaultTuning()
	a := NewAmplitude(tuning)
	out := a.Analyze(sineBlock(1000, 0.5, 44100, 4410))

	rms := 0.5 / math.Sqrt2
	db := 20 * math.Log10(rms)
	want := (db - tuning.DBFloor) / -tuning.DBFloor
	if math.Abs(out[0]-want) > 0.02 {
		t.Fatalf("level = %v, want %v ± 0.02", out[0], want)
	}
}

func TestFrequencyZeroBlockIsAllZero(t *testing.T) {
	f := NewFrequency(16, 1024, config.DefaultTuning())
	out := f.Analyze(source.Block{Samples: make([]float64, 1024), SampleRate: 44100})
	if len(out) != 16 {
		t.Fatalf("drive vector length = %d, want 16", len(out))
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("bar %d = %v on zero block, want exactly 0", i, v)
		}
		if math.IsNaN(v) {
			t.Fatalf("bar %d is NaN", i)
		}
	}
}

func TestFrequencyOutputRange(t *testing.T) {
	for _, bars := range []int{2, 8, 16, 64} {
		f := NewFrequency(bars, 1024, config.DefaultTuning())
		out := f.Analyze(sineBlock(1000, 1.0, 44100, 1024))
		if len(out) != bars {
			t.Fatalf("bars=%d: drive vector length = %d", bars, len(out))
		}
		for i, v := range out {
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("bars=%d: bar %d = %v out of [0,1]", bars, i, v)
			}
		}
	}
}

func TestFrequencySineExcitesContainingBar(t *testing.T) {
	f := NewFrequency(16, 1024, config.DefaultTuning())
	out := f.Analyze(sineBlock(1000, 0.8, 44100, 1024))

	hot := f.BarOfFreq(1000, 44100)
	if out[hot] <= 0 {
		t.Fatalf("bar %d containing 1 kHz is silent", hot)
	}
	for b, v := range out {
		if b >= hot-2 && b <= hot+2 {
			continue // spectral leakage into neighbors is expected
		}
		if v >= out[hot]/2 {
			t.Fatalf("distant bar %d = %v, not materially below hot bar %d = %v", b, v, hot, out[hot])
		}
	}
}

func TestFrequencyShortBlockIsZeroPadded(t *testing.T) {
	f := NewFrequency(16, 1024, config.DefaultTuning())
	// Final file block shorter than the transform length.
	out := f.Analyze(sineBlock(1000, 0.8, 44100, 300))
	for i, v := range out {
		if math.IsNaN(v) || v < 0 || v > 1 {
			t.Fatalf("bar %d = %v on short block", i, v)
		}
	}
}

func TestBandEdgesMonotonic(t *testing.T) {
	for _, tc := range []struct{ bars, blockSize int }{
		{16, 1024}, {2, 256}, {32, 256}, {64, 1024}, {128, 1024}, {128, 16384},
	} {
		f := NewFrequency(tc.bars, tc.blockSize, config.DefaultTuning())

		if f.edges[0] < 1 {
			t.Fatalf("bars=%d block=%d: first edge %d below bin 1", tc.bars, tc.blockSize, f.edges[0])
		}
		for b := 1; b <= tc.bars; b++ {
			if f.edges[b] <= f.edges[b-1] {
				t.Fatalf("bars=%d block=%d: edges not strictly increasing at %d: %v", tc.bars, tc.blockSize, b, f.edges)
			}
		}

		// Increasing bin index never maps to a lower bar.
		prev := 0
		for bin := 1; bin < f.fftSize/2; bin++ {
			bar := f.BarOfBin(bin)
			if bar < prev {
				t.Fatalf("bars=%d block=%d: bin %d maps to bar %d after bar %d", tc.bars, tc.blockSize, bin, bar, prev)
			}
			prev = bar
		}
	}
}
