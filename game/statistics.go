package game

import (
	"math"
	"slices"
)

// Sum ...
func Sum(data []float64) (result float64) {
	for _, v := range data {
		result += v
	}
	return result
}

// Mean ...
func Mean(data []float64) float64 {
	count := float64(len(data))
	if count == 0 {
		return 0
	}
	return Sum(data) / count
}

// Variance ...
func Variance(data []float64) (variance float64) {
	count := float64(len(data))
	if count == 0 {
		return 0.0
	}
	mean := Sum(data) / count

	for _, number := range data {
		variance += math.Pow(number-mean, 2)
	}
	return variance / count
}

// StandardDeviation ...
func StandardDeviation(data []float64) float64 {
	return math.Sqrt(Variance(data))
}

// Window keeps the last N samples pushed into it.
type Window struct {
	samples []float64
	next    int
	full    bool
}

// NewWindow returns a window holding at most size samples.
func NewWindow(size int) *Window {
	if size <= 0 {
		size = 1
	}
	return &Window{samples: make([]float64, size)}
}

// Push adds a sample, overwriting the oldest one once the window is full.
func (w *Window) Push(v float64) {
	w.samples[w.next] = v
	w.next++
	if w.next == len(w.samples) {
		w.next, w.full = 0, true
	}
}

// Samples returns the samples currently held, oldest first.
func (w *Window) Samples() []float64 {
	if !w.full {
		return slices.Clone(w.samples[:w.next])
	}
	return append(slices.Clone(w.samples[w.next:]), w.samples[:w.next]...)
}
