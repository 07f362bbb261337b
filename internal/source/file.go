package source

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/lajordan/vizor/internal/decode"
)

// countingReader wraps the PCM stream fed to the playback engine and tracks
// how many bytes it has consumed. The playback engine reads on its own
// goroutine, so position access is mutex-guarded.
type countingReader struct {
	reader io.Reader
	pos    int64
	eof    bool
	mu     sync.Mutex
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.reader.Read(p)
	cr.mu.Lock()
	cr.pos += int64(n)
	if err == io.EOF {
		cr.eof = true
	}
	cr.mu.Unlock()
	return n, err
}

func (cr *countingReader) Pos() int64 {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	return cr.pos
}

func (cr *countingReader) EOF() bool {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	return cr.eof
}

const pcmFrameSize = 4 // 16-bit stereo

// File plays a fully decoded track through the audio output and exposes the
// block of samples around the playback cursor. The cursor is derived from
// how much PCM the playback engine has pulled, which keeps bars and sound in
// step without a synchronization barrier.
type File struct {
	track     *decode.Track
	mono      []float64
	blockSize int
	counter   *countingReader
	otoCtx    *oto.Context
	player    *oto.Player
	lastFrame int64
	paused    bool
}

// NewFile decodes nothing itself; the caller supplies a fully decoded track.
// Audio output initialization happens here so failures surface before any
// frame is rendered.
func NewFile(track *decode.Track, blockSize int) (*File, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   track.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio output: %w", err)
	}
	<-ready

	return &File{
		track:     track,
		mono:      track.Mono(),
		blockSize: blockSize,
		counter:   &countingReader{reader: bytes.NewReader(track.PCM16Stereo())},
		otoCtx:    ctx,
		lastFrame: -1,
	}, nil
}

func (f *File) SampleRate() int { return f.track.SampleRate }

// Title returns the display title of the playing track.
func (f *File) Title() string { return f.track.Title }

// Duration returns the total playing time.
func (f *File) Duration() time.Duration { return f.track.Duration() }

// Position returns how far playback has advanced.
func (f *File) Position() time.Duration {
	frame := f.counter.Pos() / pcmFrameSize
	secs := float64(frame) / float64(f.track.SampleRate)
	return time.Duration(secs * float64(time.Second))
}

// Start begins playback.
func (f *File) Start() error {
	f.player = f.otoCtx.NewPlayer(f.counter)
	f.player.Play()
	return nil
}

// TogglePause flips between playing and paused.
func (f *File) TogglePause() {
	if f.player == nil {
		return
	}
	if f.paused {
		f.player.Play()
	} else {
		f.player.Pause()
	}
	f.paused = !f.paused
}

// Paused reports whether playback is paused.
func (f *File) Paused() bool { return f.paused }

// Next returns the block of mono samples trailing the playback cursor. Once
// the stream is fully consumed it returns ErrExhausted.
func (f *File) Next() (Block, bool, error) {
	frame := f.counter.Pos() / pcmFrameSize
	if f.counter.EOF() && frame >= int64(len(f.mono)) {
		return Block{}, false, ErrExhausted
	}

	fresh := frame != f.lastFrame
	f.lastFrame = frame
	return blockAt(f.mono, frame, f.blockSize, f.track.SampleRate), fresh, nil
}

func (f *File) Close() error {
	if f.player != nil {
		return f.player.Close()
	}
	return nil
}

// blockAt extracts the window of size samples ending at frame, zero-padded
// when the window runs past either edge of the buffer.
func blockAt(mono []float64, frame int64, size, rate int) Block {
	out := make([]float64, size)

	start := frame - int64(size)
	if start < 0 {
		start = 0
	}
	end := start + int64(size)
	if end > int64(len(mono)) {
		end = int64(len(mono))
	}
	if start < end {
		copy(out, mono[start:end])
	}
	return Block{Samples: out, SampleRate: rate}
}
