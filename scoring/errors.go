// SPDX-License-Identifier: MIT

package scoring

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownResidue indicates a residue pair has no entry in the table.
	// Callers match it with errors.Is; the concrete value is *UnknownResidueError.
	ErrUnknownResidue = errors.New("scoring: residue pair not in table")

	// ErrUnknownTable indicates ByName received an unregistered table name.
	ErrUnknownTable = errors.New("scoring: unknown substitution table")

	// ErrMalformedTable indicates NewPairTable received rows that do not form
	// a lower triangle over the alphabet, or an alphabet with duplicates.
	ErrMalformedTable = errors.New("scoring: malformed substitution table")
)

// UnknownResidueError reports the pair that failed a lookup.
// It unwraps to ErrUnknownResidue.
type UnknownResidueError struct {
	Table string // table name, e.g. "blosum50"
	A, B  byte   // the pair as it was requested
}

// Error implements error.
func (e *UnknownResidueError) Error() string {
	return fmt.Sprintf("scoring: pair (%q, %q) not in %s", e.A, e.B, e.Table)
}

// Unwrap lets errors.Is(err, ErrUnknownResidue) succeed.
func (e *UnknownResidueError) Unwrap() error { return ErrUnknownResidue }
