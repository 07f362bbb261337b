package source

import (
	"sync"
	"testing"
)

func TestLatestEmptyBeforeFirstStore(t *testing.T) {
	var l Latest
	block, seq := l.Load()
	if seq != 0 {
		t.Fatalf("seq = %d before any store, want 0", seq)
	}
	if len(block.Samples) != 0 {
		t.Fatalf("unexpected samples before any store: %v", block.Samples)
	}
}

func TestLatestRereadIsIdempotent(t *testing.T) {
	var l Latest
	l.Store([]float64{0.1, 0.2, 0.3}, 44100)

	first, seq1 := l.Load()
	second, seq2 := l.Load()

	if seq1 != seq2 {
		t.Fatalf("sequence advanced without a store: %d then %d", seq1, seq2)
	}
	if len(first.Samples) != len(second.Samples) {
		t.Fatalf("reread length mismatch: %d vs %d", len(first.Samples), len(second.Samples))
	}
	for i := range first.Samples {
		if first.Samples[i] != second.Samples[i] {
			t.Fatalf("reread sample %d differs: %v vs %v", i, first.Samples[i], second.Samples[i])
		}
	}
	if first.SampleRate != 44100 {
		t.Fatalf("SampleRate = %d, want 44100", first.SampleRate)
	}
}

func TestLatestOnlyNewestSurvives(t *testing.T) {
	var l Latest
	l.Store([]float64{1, 1, 1}, 48000) // block A
	l.Store([]float64{2, 2}, 48000)    // block B overwrites before any read

	block, seq := l.Load()
	if seq != 2 {
		t.Fatalf("seq = %d after two stores, want 2", seq)
	}
	if len(block.Samples) != 2 {
		t.Fatalf("block length = %d, want 2 (block B)", len(block.Samples))
	}
	for i, v := range block.Samples {
		if v != 2 {
			t.Fatalf("sample %d = %v, want 2 (block B)", i, v)
		}
	}
}

func TestLatestLoadCopiesOut(t *testing.T) {
	var l Latest
	l.Store([]float64{0.5}, 44100)
	block, _ := l.Load()
	block.Samples[0] = 99
	again, _ := l.Load()
	if again.Samples[0] != 0.5 {
		t.Fatal("Load must hand out a copy, not the internal buffer")
	}
}

func TestLatestConcurrentStoreLoad(t *testing.T) {
	var l Latest
	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		buf := make([]float64, 512)
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			for j := range buf {
				buf[j] = float64(i)
			}
			l.Store(buf, 44100)
		}
	}()

	for range 1000 {
		block, seq := l.Load()
		if seq == 0 {
			continue
		}
		// Every sample in a block must come from the same store.
		first := block.Samples[0]
		for _, v := range block.Samples {
			if v != first {
				t.Errorf("torn read: %v and %v in one block", first, v)
				break
			}
		}
	}
	close(stop)
	wg.Wait()
}
