package decode

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

var errNotWAV = errors.New("not a valid WAV file")

func decodeWAV(f *os.File) ([]float64, int, int, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, 0, errNotWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("reading WAV PCM data: %w", err)
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = int(dec.BitDepth)
	}
	scale := float64(int64(1) << (bitDepth - 1))

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) / scale
	}
	return samples, buf.Format.SampleRate, buf.Format.NumChannels, nil
}
