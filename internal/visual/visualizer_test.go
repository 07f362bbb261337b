package visual

import (
	"math"
	"strings"
	"testing"

	"github.com/lajordan/vizor/internal/config"
	"github.com/lajordan/vizor/internal/source"
)

func toneBlock(n int) source.Block {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = 0.7 * math.Sin(2*math.Pi*440*float64(i)/44100)
	}
	return source.Block{Samples: samples, SampleRate: 44100}
}

func TestModesOrderMatchesIndexOf(t *testing.T) {
	modes := Modes(config.Default())
	if len(modes) != 3 {
		t.Fatalf("Modes() returned %d visualizers, want 3", len(modes))
	}
	for _, tc := range []struct {
		mode config.Mode
		name string
	}{
		{config.ModeAmplitude, "amplitude"},
		{config.ModeFrequency, "frequency"},
		{config.ModeWave, "wave"},
	} {
		if got := modes[IndexOf(tc.mode)].Name(); got != tc.name {
			t.Fatalf("IndexOf(%s) points at %q", tc.mode, got)
		}
	}
}

func TestVisualizersRenderRequestedHeight(t *testing.T) {
	for _, v := range Modes(config.Default()) {
		t.Run(v.Name(), func(t *testing.T) {
			for range 5 {
				v.Update(toneBlock(1024), true, 80, 20)
			}
			view := v.View()
			if view == "" {
				t.Fatal("empty view after updates")
			}
			if rows := strings.Count(view, "\n") + 1; rows > 20 {
				t.Fatalf("view has %d rows, budget was 20", rows)
			}
		})
	}
}

func TestVisualizersSurviveDegenerateGeometry(t *testing.T) {
	for _, v := range Modes(config.Default()) {
		t.Run(v.Name(), func(t *testing.T) {
			v.Update(toneBlock(1024), true, 0, 0)
			v.Update(toneBlock(1024), true, 3, 1)
			v.Update(source.Block{}, false, 80, 10)
		})
	}
}

func TestSpectrumDecaysOnSilence(t *testing.T) {
	s := NewSpectrum(16, 1024, config.DefaultTuning())
	s.Update(toneBlock(1024), true, 80, 10)
	driven := make([]float64, 16)
	copy(driven, s.bars.Heights())

	// A silent signal drives every bar back down through the decay ramp.
	silence := source.Block{Samples: make([]float64, 1024), SampleRate: 44100}
	for range 200 {
		s.Update(silence, true, 80, 10)
	}
	for i, h := range s.bars.Heights() {
		if h != 0 {
			t.Fatalf("bar %d = %v after long silence, want 0 (was %v)", i, h, driven[i])
		}
	}
}
