package rules

import (
	"strings"

	"github.com/pkg/errors"
)

/*
Parse reads a rule string of the form "s<digits>b<digits>" or "b<digits>s<digits>".

Markers are case-insensitive and may come in either order. The first marker's
digits run up to the other marker, the last marker's digits run to the end of
the string. Every digit is a separate neighbor count, so "b12" means born on 1
or 2 neighbors, never 12. An empty run is an empty set.

A '9' is a valid digit but no Moore neighborhood can reach 9 live cells, so it
adds nothing to the set.
*/
func Parse(rule string) (RuleSet, error) {
	bornAt := strings.IndexAny(rule, "bB")
	if bornAt < 0 {
		return RuleSet{}, errors.Wrapf(ErrMissingBornMarker, "[Parse] rule %q", rule)
	}
	surviveAt := strings.IndexAny(rule, "sS")
	if surviveAt < 0 {
		return RuleSet{}, errors.Wrapf(ErrMissingSurviveMarker, "[Parse] rule %q", rule)
	}

	bornEnd, surviveEnd := len(rule), len(rule)
	if bornAt < surviveAt {
		bornEnd = surviveAt
	} else {
		surviveEnd = bornAt
	}

	// Scan runs in string order so the reported digit is the leftmost bad one.
	var (
		born, survive uint16
		err           error
	)
	if bornAt < surviveAt {
		if born, err = parseRun(rule, bornAt+1, bornEnd); err != nil {
			return RuleSet{}, err
		}
		if survive, err = parseRun(rule, surviveAt+1, surviveEnd); err != nil {
			return RuleSet{}, err
		}
	} else {
		if survive, err = parseRun(rule, surviveAt+1, surviveEnd); err != nil {
			return RuleSet{}, err
		}
		if born, err = parseRun(rule, bornAt+1, bornEnd); err != nil {
			return RuleSet{}, err
		}
	}

	return RuleSet{born: born, survive: survive}, nil
}

// MustParse is like Parse but panics on error. Meant for package-level presets.
func MustParse(rule string) RuleSet {
	rs, err := Parse(rule)
	if err != nil {
		panic(err)
	}
	return rs
}

func parseRun(rule string, start, end int) (uint16, error) {
	var mask uint16
	for i := start; i < end; i++ {
		c := rule[i]
		if c < '0' || c > '9' {
			return 0, errors.WithStack(&InvalidDigitError{Rule: rule, Pos: i, Char: c})
		}
		if n := int(c - '0'); n <= MaxNeighbors {
			mask |= 1 << n
		}
	}
	return mask, nil
}
