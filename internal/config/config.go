package config

import (
	"errors"
	"fmt"
)

// Mode selects which analysis drives the bars.
type Mode string

const (
	ModeAmplitude Mode = "amplitude"
	ModeFrequency Mode = "frequency"
	ModeWave      Mode = "wave"
)

var (
	ErrUnknownMode    = errors.New("unknown mode")
	ErrBadSampleRate  = errors.New("sample rate must be positive")
	ErrBadBlockSize   = errors.New("block size must be a power of two, 256..16384")
	ErrBadBarCount    = errors.New("bar count must be between 2 and 128 and at most blocksize/8")
	ErrDeviceWithFile = errors.New("--device applies to live capture only")
	ErrRateWithFile   = errors.New("--samplerate applies to live capture only")
)

// Tuning holds the visual calibration constants. They have no derivation
// beyond looking right on typical program material, so they are configuration
// rather than hardcoded values.
type Tuning struct {
	DBFloor     float64 // silence threshold for amplitude mode, in dB
	Compression float64 // gain g of the log10(1+g*x) band compressor
	Attack      float64 // rise blend per frame, 0..1
	Decay       float64 // fall per frame in bar-height units
}

// DefaultTuning returns the stock calibration.
func DefaultTuning() Tuning {
	return Tuning{
		DBFloor:     -48.0,
		Compression: 9.0,
		Attack:      0.6,
		Decay:       0.04,
	}
}

// Config is the immutable pipeline configuration created once at startup.
type Config struct {
	Path       string // audio file; empty means live capture
	Device     string // capture device index or name substring
	Mode       Mode
	SampleRate int // capture rate; file mode uses the file's native rate
	BlockSize  int // samples per analysis block
	Bars       int // frequency-mode bar count
	Tuning     Tuning
}

// Default returns a Config with the stock settings applied.
func Default() Config {
	return Config{
		Mode:       ModeAmplitude,
		SampleRate: 44100,
		BlockSize:  1024,
		Bars:       16,
		Tuning:     DefaultTuning(),
	}
}

// FileMode reports whether the pipeline reads from a decoded file.
func (c Config) FileMode() bool { return c.Path != "" }

// Validate rejects configurations the pipeline cannot run with.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeAmplitude, ModeFrequency, ModeWave:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, c.Mode)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrBadSampleRate, c.SampleRate)
	}
	if c.BlockSize < 256 || c.BlockSize > 16384 || c.BlockSize&(c.BlockSize-1) != 0 {
		return fmt.Errorf("%w: %d", ErrBadBlockSize, c.BlockSize)
	}
	if c.Bars < 2 || c.Bars > 128 || c.Bars > c.BlockSize/8 {
		return fmt.Errorf("%w: %d", ErrBadBarCount, c.Bars)
	}
	if c.FileMode() && c.Device != "" {
		return ErrDeviceWithFile
	}
	return nil
}
