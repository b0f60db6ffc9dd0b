package worker

import (
	"sync/atomic"
	"testing"
)

func TestRunVisitsEveryIndexOnce(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	for _, n := range []int{0, 1, 3, 4, 5, 100} {
		visits := make([]int32, n)
		if err := p.Run(n, func(i int) {
			atomic.AddInt32(&visits[i], 1)
		}); err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		for i, v := range visits {
			if v != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, v)
			}
		}
	}
}

func TestRunRecoversPanics(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	var done atomic.Int32
	err := p.Run(10, func(i int) {
		if i == 3 {
			panic("boom")
		}
		done.Add(1)
	})
	if err == nil {
		t.Fatalf("expected the panic to be reported")
	}
	if done.Load() != 9 {
		t.Fatalf("expected the other tasks to finish, got %d", done.Load())
	}

	// The pool must still work after a panic.
	if err := p.Run(4, func(int) {}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewPoolDefaultsToCPUs(t *testing.T) {
	p := NewPool(0)
	defer p.Close()
	if p.Size() <= 0 {
		t.Fatalf("expected a positive pool size, got %d", p.Size())
	}
}
