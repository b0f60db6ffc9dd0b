package entity

import (
	"github.com/go-gl/mathgl/mgl64"
)

// HistoricalPosition is a position of a body that was recorded at a certain tick.
type HistoricalPosition struct {
	Position mgl64.Vec3
	Tick     int64
}

// History is a fixed-size circular buffer of the positions a body had at the end of previous ticks.
type History struct {
	buffer   []HistoricalPosition
	capacity int
	head     int // Points to the next write position
	size     int
}

// NewHistory creates a new history holding up to capacity positions.
func NewHistory(capacity int) *History {
	return &History{
		buffer:   make([]HistoricalPosition, capacity),
		capacity: capacity,
	}
}

// Add records a new position, overwriting the oldest one once the history is full.
func (h *History) Add(pos HistoricalPosition) {
	h.buffer[h.head] = pos
	h.head = (h.head + 1) % h.capacity
	if h.size < h.capacity {
		h.size++
	}
}

// Rewind looks back in the history and returns the position recorded at the tick passed, or the closest
// position recorded if there is no exact match.
func (h *History) Rewind(tick int64) (HistoricalPosition, bool) {
	if h.size == 0 {
		return HistoricalPosition{}, false
	}

	var (
		result HistoricalPosition
		delta  int64 = 1<<63 - 1
	)
	for i := 0; i < h.size; i++ {
		hp := h.buffer[(h.head-1-i+h.capacity)%h.capacity]
		if hp.Tick == tick {
			return hp, true
		}
		currentDelta := hp.Tick - tick
		if currentDelta < 0 {
			currentDelta = -currentDelta
		}
		if currentDelta < delta {
			result, delta = hp, currentDelta
		}
	}
	return result, true
}

// Latest returns the most recently recorded position.
func (h *History) Latest() (HistoricalPosition, bool) {
	if h.size == 0 {
		return HistoricalPosition{}, false
	}
	return h.buffer[(h.head-1+h.capacity)%h.capacity], true
}

// Len returns the amount of positions currently recorded.
func (h *History) Len() int {
	return h.size
}
