package rules

import (
	"strings"
)

// MaxNeighbors is the size of the Moore neighborhood.
const MaxNeighbors = 8

// RuleSet holds the neighbor counts that create life in a dead cell (Born) and
// keep a live cell alive (Survive). Each set is a bit mask over counts 0..8.
// The zero value is a valid rule set in which every cell dies.
type RuleSet struct {
	born    uint16
	survive uint16
}

// New builds a RuleSet from explicit neighbor counts. Duplicates collapse.
func New(born, survive []int) (RuleSet, error) {
	var rs RuleSet
	for _, n := range born {
		if n < 0 || n > MaxNeighbors {
			return RuleSet{}, countOutOfRange("born", n)
		}
		rs.born |= 1 << n
	}
	for _, n := range survive {
		if n < 0 || n > MaxNeighbors {
			return RuleSet{}, countOutOfRange("survive", n)
		}
		rs.survive |= 1 << n
	}
	return rs, nil
}

// Born reports whether a dead cell with n live neighbors comes to life.
func (r RuleSet) Born(n int) bool {
	return n >= 0 && n <= MaxNeighbors && r.born&(1<<n) != 0
}

// Survives reports whether a live cell with n live neighbors stays alive.
func (r RuleSet) Survives(n int) bool {
	return n >= 0 && n <= MaxNeighbors && r.survive&(1<<n) != 0
}

// Next returns the next state of a cell given its liveness and live neighbor count.
func (r RuleSet) Next(alive bool, neighbors int) bool {
	if alive {
		return r.Survives(neighbors)
	}
	return r.Born(neighbors)
}

// BornCounts returns the birth counts in ascending order.
func (r RuleSet) BornCounts() []int { return maskCounts(r.born) }

// SurviveCounts returns the survival counts in ascending order.
func (r RuleSet) SurviveCounts() []int { return maskCounts(r.survive) }

// String renders the canonical rule string, e.g. "s23b3".
func (r RuleSet) String() string {
	var sb strings.Builder
	sb.WriteByte('s')
	writeCounts(&sb, r.survive)
	sb.WriteByte('b')
	writeCounts(&sb, r.born)
	return sb.String()
}

func maskCounts(mask uint16) []int {
	counts := make([]int, 0, MaxNeighbors+1)
	for n := 0; n <= MaxNeighbors; n++ {
		if mask&(1<<n) != 0 {
			counts = append(counts, n)
		}
	}
	return counts
}

func writeCounts(sb *strings.Builder, mask uint16) {
	for n := 0; n <= MaxNeighbors; n++ {
		if mask&(1<<n) != 0 {
			sb.WriteByte(byte('0' + n))
		}
	}
}
