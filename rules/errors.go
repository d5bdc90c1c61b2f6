package rules

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMissingBornMarker is returned when a rule string has no 'b' or 'B'.
	ErrMissingBornMarker = errors.New("rule string should contain b")
	// ErrMissingSurviveMarker is returned when a rule string has no 's' or 'S'.
	ErrMissingSurviveMarker = errors.New("rule string should contain s")
	// ErrInvalidDigit matches any *InvalidDigitError.
	ErrInvalidDigit = errors.New("invalid digit in rule string")
	// ErrCountOutOfRange is returned by New for counts outside [0, 8].
	ErrCountOutOfRange = errors.New("neighbor count out of range")
)

// InvalidDigitError reports a non-digit character inside a marker's digit run.
type InvalidDigitError struct {
	Rule string // the full rule string
	Pos  int    // byte offset of the offending character in Rule
	Char byte
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit %q at position %d in %q", e.Char, e.Pos, e.Rule)
}

// Is lets errors.Is(err, ErrInvalidDigit) match.
func (e *InvalidDigitError) Is(target error) bool {
	return target == ErrInvalidDigit
}

// Caret renders the rule with a pointer under the offending character:
//
//	s2Xb3
//	  ^--- This should be a digit
func (e *InvalidDigitError) Caret() string {
	return e.Rule + "\n" + strings.Repeat(" ", e.Pos) + "^--- This should be a digit"
}

func countOutOfRange(set string, n int) error {
	return errors.Wrapf(ErrCountOutOfRange, "[New] %s count %d not in [0, %d]", set, n, MaxNeighbors)
}
