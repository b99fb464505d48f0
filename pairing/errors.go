// SPDX-License-Identifier: MIT

package pairing

import (
	"errors"
	"fmt"
)

// Sentinel errors for draw generation.
var (
	// ErrNilTeam is returned when a bracket contains a nil Team.
	ErrNilTeam = errors.New("pairing: nil team")

	// ErrDuplicateTeam is returned when a team ID appears twice in one run.
	ErrDuplicateTeam = errors.New("pairing: team appears more than once")

	// ErrDuplicateBracket is returned when two brackets share a points value.
	ErrDuplicateBracket = errors.New("pairing: duplicate bracket points")

	// ErrOddBracket is returned when a bracket cannot be split into pairs.
	ErrOddBracket = errors.New("pairing: odd number of teams in bracket")

	// ErrUnbalancedSides is returned when fixed side pools differ in size.
	ErrUnbalancedSides = errors.New("pairing: side pools differ in size")

	// ErrUnpairable is returned when forbidden pairings leave no complete draw.
	ErrUnpairable = errors.New("pairing: no valid pairing for bracket")

	// ErrInvalidOptions is returned by Options.Validate.
	ErrInvalidOptions = errors.New("pairing: invalid options")
)

// BracketError reports a failure confined to one bracket. The run that
// produced it returns no partial draw.
type BracketError struct {
	Points int   // bracket key
	Teams  int   // number of teams in the bracket
	Err    error // underlying cause
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("%v (bracket %d, %d teams)", e.Err, e.Points, e.Teams)
}

func (e *BracketError) Unwrap() error { return e.Err }
