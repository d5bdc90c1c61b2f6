package model

// DefaultHistoryDepth is how many recent generation hashes a History keeps.
const DefaultHistoryDepth = 5

// History remembers recent generation hashes to detect still lifes and short cycles.
type History struct {
	depth  int
	hashes []string
}

// NewHistory returns a History keeping the last depth hashes.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Record appends hash, dropping the oldest entry once the history is full.
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
}

// Stagnant reports whether hash repeats one of the last three recorded
// generations, i.e. the grid is static or cycling with period 1 to 3.
// Call it before recording hash.
func (h *History) Stagnant(hash string) bool {
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-3; i-- {
		if h.hashes[i] == hash {
			return true
		}
	}
	return false
}

// Reset forgets every recorded hash.
func (h *History) Reset() {
	h.hashes = nil
}
