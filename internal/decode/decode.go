// Package decode turns supported audio files into flat in-memory sample
// buffers. Files are decoded fully up front; playback and analysis both
// read from the result.
package decode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var ErrUnsupported = errors.New("unsupported audio format")

// Track is one fully decoded audio file.
type Track struct {
	Samples    []float64 // interleaved, scaled to [-1, 1]
	SampleRate int
	Channels   int
	Title      string
}

// decodeFunc decodes an open file into interleaved samples.
type decodeFunc func(f *os.File) ([]float64, int, int, error)

var decoders = map[string]decodeFunc{
	".mp3":  decodeMP3,
	".wav":  decodeWAV,
	".flac": decodeFLAC,
	".ogg":  decodeVorbis,
}

// SupportedExtsList returns a human-readable list of supported formats.
func SupportedExtsList() string {
	return ".mp3, .wav, .flac, .ogg"
}

// ReadTrack opens and fully decodes the file at path, detecting the format
// by extension.
func ReadTrack(path string) (*Track, error) {
	ext := strings.ToLower(filepath.Ext(path))
	dec, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s (supported: %s)", ErrUnsupported, ext, SupportedExtsList())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, rate, channels, err := dec(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	if rate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("decoding %s: bad stream parameters (rate=%d channels=%d)", filepath.Base(path), rate, channels)
	}

	return &Track{
		Samples:    samples,
		SampleRate: rate,
		Channels:   channels,
		Title:      ReadTitle(path),
	}, nil
}

// Frames returns the number of sample frames in the track.
func (t *Track) Frames() int {
	if t.Channels == 0 {
		return 0
	}
	return len(t.Samples) / t.Channels
}

// Duration returns the playing time of the track.
func (t *Track) Duration() time.Duration {
	if t.SampleRate == 0 {
		return 0
	}
	secs := float64(t.Frames()) / float64(t.SampleRate)
	return time.Duration(secs * float64(time.Second))
}

// Mono collapses the track to a single channel by averaging.
func (t *Track) Mono() []float64 {
	return FoldMono(t.Samples, t.Channels)
}

// PCM16Stereo returns the track as 16-bit little-endian stereo PCM for the
// playback engine. Mono tracks are upmixed by duplication.
func (t *Track) PCM16Stereo() []byte {
	return pcm16Stereo(t.Samples, t.Channels)
}
