package main

import (
	"errors"

	"github.com/katalvlaran/lvdraw/config"
	"github.com/katalvlaran/lvdraw/internal/roster"
	"github.com/katalvlaran/lvdraw/pairing"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Options file unreadable or invalid
	ExitDataError   = 3 // Roster malformed or brackets unusable
	ExitUnpairable  = 4 // A bracket has no valid pairing
)

// exitCode maps an error returned by a command onto an exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrRead), errors.Is(err, pairing.ErrInvalidOptions):
		return ExitConfigError
	case errors.Is(err, pairing.ErrUnpairable):
		return ExitUnpairable
	case errors.Is(err, roster.ErrMalformed),
		errors.Is(err, roster.ErrInvalidTeam),
		errors.Is(err, roster.ErrUnknownTeam),
		errors.Is(err, pairing.ErrOddBracket),
		errors.Is(err, pairing.ErrUnbalancedSides),
		errors.Is(err, pairing.ErrDuplicateTeam),
		errors.Is(err, pairing.ErrDuplicateBracket),
		errors.Is(err, pairing.ErrNilTeam):
		return ExitDataError
	}

	return ExitError
}
