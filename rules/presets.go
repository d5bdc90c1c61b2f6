package rules

import "strings"

// Well known life-like rules.
var (
	// Conway is Conway's Game of Life: (alive && neighbors in {2,3}) || neighbors == 3.
	Conway = MustParse("s23b3")
	// Coral grows slowly spreading coral-like structures.
	Coral       = MustParse("s45678b3")
	// HighLife is Conway plus birth on 6, home of the replicator.
	HighLife = MustParse("s23b36")
	// Seeds has no survivors; every live cell dies each generation.
	Seeds = MustParse("sb2")
	// DayAndNight is symmetric under swapping live and dead cells.
	DayAndNight = MustParse("s34678b3678")
)

var presets = map[string]RuleSet{
	"conway":      Conway,
	"life":        Conway,
	"coral":       Coral,
	"highlife":    HighLife,
	"seeds":       Seeds,
	"dayandnight": DayAndNight,
}

// Lookup returns a preset rule set by name, ignoring case.
func Lookup(name string) (RuleSet, bool) {
	rs, ok := presets[strings.ToLower(name)]
	return rs, ok
}
