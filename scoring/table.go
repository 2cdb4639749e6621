// SPDX-License-Identifier: MIT

package scoring

import "fmt"

// Table is a symmetric substitution lookup over residue symbols.
// Implementations must be safe for concurrent reads.
type Table interface {
	// Score returns the substitution score for the unordered pair {a, b}.
	// It fails with an error matching ErrUnknownResidue when the pair is absent.
	Score(a, b byte) (int, error)

	// Name identifies the table in diagnostics.
	Name() string
}

// noResidue marks a byte that is not part of the alphabet.
const noResidue = -1

// PairTable is an immutable Table backed by the lower triangle of a
// symmetric matrix.
//   - index maps a residue byte to its alphabet position (noResidue if absent).
//   - tri stores row k (k+1 entries) at offset k*(k+1)/2.
type PairTable struct {
	name     string
	alphabet string
	index    [256]int
	tri      []int
}

// Compile-time assertion.
var _ Table = (*PairTable)(nil)

// NewPairTable builds a PairTable from a lower-triangular matrix.
// Row k lists the scores of alphabet[k] against alphabet[0..k], in order.
//
// Errors:
//   - ErrMalformedTable if the alphabet is empty or repeats a residue, or if
//     the row count or any row length does not match the alphabet.
//
// Complexity: O(k²) time and space for k residues.
func NewPairTable(name, alphabet string, rows [][]int) (*PairTable, error) {
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("NewPairTable(%s): empty alphabet: %w", name, ErrMalformedTable)
	}
	if len(rows) != len(alphabet) {
		return nil, fmt.Errorf("NewPairTable(%s): %d rows for %d residues: %w",
			name, len(rows), len(alphabet), ErrMalformedTable)
	}

	t := &PairTable{
		name:     name,
		alphabet: alphabet,
		tri:      make([]int, 0, len(alphabet)*(len(alphabet)+1)/2),
	}
	for i := range t.index {
		t.index[i] = noResidue
	}
	for k := 0; k < len(alphabet); k++ {
		r := alphabet[k]
		if t.index[r] != noResidue {
			return nil, fmt.Errorf("NewPairTable(%s): duplicate residue %q: %w", name, r, ErrMalformedTable)
		}
		if len(rows[k]) != k+1 {
			return nil, fmt.Errorf("NewPairTable(%s): row %q has %d entries, want %d: %w",
				name, r, len(rows[k]), k+1, ErrMalformedTable)
		}
		t.index[r] = k
		t.tri = append(t.tri, rows[k]...)
	}

	return t, nil
}

// mustPairTable is used for the built-in tables, whose data is fixed.
func mustPairTable(name, alphabet string, rows [][]int) *PairTable {
	t, err := NewPairTable(name, alphabet, rows)
	if err != nil {
		panic(err)
	}

	return t
}

// Score returns the score of {a, b}. Lookup order is irrelevant: the pair is
// normalized to (row >= col) before indexing the triangle.
func (t *PairTable) Score(a, b byte) (int, error) {
	ia, ib := t.index[a], t.index[b]
	if ia == noResidue || ib == noResidue {
		return 0, &UnknownResidueError{Table: t.name, A: a, B: b}
	}
	if ia < ib {
		ia, ib = ib, ia
	}

	return t.tri[ia*(ia+1)/2+ib], nil
}

// Name returns the table name.
func (t *PairTable) Name() string { return t.name }

// Alphabet returns the residues covered by the table, in row order.
func (t *PairTable) Alphabet() string { return t.alphabet }

// Contains reports whether r is a residue of the table's alphabet.
func (t *PairTable) Contains(r byte) bool { return t.index[r] != noResidue }
