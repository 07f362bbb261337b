package decode

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mewkiz/flac"
)

func decodeFLAC(f *os.File) ([]float64, int, int, error) {
	stream, err := flac.New(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("parsing FLAC stream: %w", err)
	}
	defer stream.Close()

	info := stream.Info
	channels := int(info.NChannels)
	scale := float64(int64(1) << (info.BitsPerSample - 1))

	samples := make([]float64, 0, int(info.NSamples)*channels)
	for {
		frame, err := stream.ParseNext()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, 0, 0, fmt.Errorf("parsing FLAC frame: %w", err)
		}

		n := int(frame.Subframes[0].NSamples)
		for i := range n {
			for ch := range channels {
				samples = append(samples, float64(frame.Subframes[ch].Samples[i])/scale)
			}
		}
	}

	return samples, int(info.SampleRate), channels, nil
}
