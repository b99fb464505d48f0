// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNegativeCost is returned by Set when a cost is below zero.
	ErrNegativeCost = errors.New("matrix: negative cost")

	// ErrNilMatrix indicates that a nil *CostMatrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
