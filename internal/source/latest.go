package source

import "sync"

// Latest is a single-slot handoff between one producer and one consumer.
// The producer overwrites the slot with each new block; only the newest
// survives. The critical section is a pair of copies, short enough to sit
// inside an audio callback.
type Latest struct {
	mu      sync.Mutex
	samples []float64
	rate    int
	seq     uint64
}

// Store replaces the slot contents with a copy of samples. The internal
// buffer is reused between calls so steady-state stores do not allocate.
func (l *Latest) Store(samples []float64, rate int) {
	l.mu.Lock()
	if cap(l.samples) < len(samples) {
		l.samples = make([]float64, len(samples))
	}
	l.samples = l.samples[:len(samples)]
	copy(l.samples, samples)
	l.rate = rate
	l.seq++
	l.mu.Unlock()
}

// Load copies out the newest block along with its sequence number. Callers
// compare sequence numbers across calls to tell a fresh block from a reread.
// Before the first Store it returns sequence 0 and an empty block.
func (l *Latest) Load() (Block, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.seq == 0 {
		return Block{}, 0
	}
	out := make([]float64, len(l.samples))
	copy(out, l.samples)
	return Block{Samples: out, SampleRate: l.rate}, l.seq
}
