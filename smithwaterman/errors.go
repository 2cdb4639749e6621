// SPDX-License-Identifier: MIT

package smithwaterman

import "errors"

// Unknown residue pairs are reported with the scoring package's sentinel
// (scoring.ErrUnknownResidue), wrapped with the sequence positions involved.
var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = errors.New("smithwaterman: input sequences must be non-empty")

	// ErrPositiveGapPenalty indicates a gap penalty > 0 reached the engine.
	// Callers normalize user input (negate positive values) before calling.
	ErrPositiveGapPenalty = errors.New("smithwaterman: gap penalty must be <= 0")

	// ErrNilTable indicates a nil scoring table.
	ErrNilTable = errors.New("smithwaterman: scoring table is nil")

	// ErrNilGrid indicates a nil *Grid was passed to a traceback routine.
	ErrNilGrid = errors.New("smithwaterman: grid is nil")

	// ErrDimensionMismatch indicates a grid does not match the sequences
	// it is being traced against.
	ErrDimensionMismatch = errors.New("smithwaterman: grid does not match sequences")

	// ErrOutOfRange indicates a cell coordinate outside the grid.
	ErrOutOfRange = errors.New("smithwaterman: cell out of range")
)
