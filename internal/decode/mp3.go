package decode

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/hajimehoshi/go-mp3"
)

// decodeMP3 decodes the whole stream. go-mp3 always emits 16-bit LE stereo
// at the stream's native rate.
func decodeMP3(f *os.File) ([]float64, int, int, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, 0, err
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, 0, err
	}

	samples := make([]float64, len(raw)/2)
	for i := range samples {
		s := int16(binary.LittleEndian.Uint16(raw[i*2:]))
		samples[i] = float64(s) / 32768.0
	}
	return samples, dec.SampleRate(), 2, nil
}
