// Package source normalizes live capture devices and decoded files into one
// abstraction: a producer that keeps the most recent block of mono samples
// available to the render loop.
package source

import "errors"

var (
	// ErrExhausted signals that a file source has played through its
	// samples. Live capture never returns it.
	ErrExhausted = errors.New("audio source exhausted")

	// ErrNoInputDevice signals that no capture device matched the request.
	ErrNoInputDevice = errors.New("no matching input device")
)

// Block is one fixed-length window of mono samples.
type Block struct {
	Samples    []float64
	SampleRate int
}

// Source delivers sample blocks to the render loop. Next never blocks: when
// no new block has arrived since the previous call it hands back the latest
// one with fresh=false so the caller can keep its frame cadence.
type Source interface {
	Start() error
	Next() (block Block, fresh bool, err error)
	SampleRate() int
	Close() error
}
