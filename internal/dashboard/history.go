package dashboard

import "sync"

// DefaultHistorySize is the default number of weight samples retained.
const DefaultHistorySize = 60

// History keeps recent weight samples for the sparkline in a ring buffer.
type History struct {
	mu    sync.RWMutex
	data  []float64
	head  int
	count int
}

// NewHistory creates a history with room for size samples.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{data: make([]float64, size)}
}

// Push appends a sample, overwriting the oldest one when full.
func (h *History) Push(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.data[h.head] = v
	h.head = (h.head + 1) % len(h.data)
	if h.count < len(h.data) {
		h.count++
	}
}

// Last returns up to n of the most recent samples, oldest first.
func (h *History) Last(n int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if n <= 0 || h.count == 0 {
		return nil
	}
	if n > h.count {
		n = h.count
	}

	out := make([]float64, n)
	start := (h.head - n + len(h.data)) % len(h.data)
	for i := 0; i < n; i++ {
		out[i] = h.data[(start+i)%len(h.data)]
	}
	return out
}

// All returns every stored sample, oldest first.
func (h *History) All() []float64 {
	return h.Last(h.Cap())
}

// Len returns the number of stored samples.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Cap returns the buffer capacity.
func (h *History) Cap() int {
	return len(h.data)
}
