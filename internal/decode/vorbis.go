package decode

import (
	"fmt"
	"os"

	"github.com/jfreymuth/oggvorbis"
)

func decodeVorbis(f *os.File) ([]float64, int, int, error) {
	data, format, err := oggvorbis.ReadAll(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("reading Vorbis stream: %w", err)
	}

	samples := make([]float64, len(data))
	for i, s := range data {
		samples[i] = float64(s)
	}
	return samples, format.SampleRate, format.Channels, nil
}
