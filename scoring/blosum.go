// SPDX-License-Identifier: MIT

package scoring

import (
	"fmt"
	"strings"
)

// ProteinAlphabet is the residue order of the built-in BLOSUM tables:
// the twenty standard amino acids followed by the ambiguity codes B and Z.
const ProteinAlphabet = "ARNDCQEGHILKMFPSTWYVBZ"

// Table names accepted by ByName.
const (
	NameBlosum50 = "blosum50"
	NameBlosum62 = "blosum62"
)

// DefaultTableName is the table used when none is requested.
const DefaultTableName = NameBlosum50

var blosum50 = mustPairTable(NameBlosum50, ProteinAlphabet, [][]int{
	/* A */ {5},
	/* R */ {-2, 7},
	/* N */ {-1, -1, 7},
	/* D */ {-2, -2, 2, 8},
	/* C */ {-1, -4, -2, -4, 13},
	/* Q */ {-1, 1, 0, 0, -3, 7},
	/* E */ {-1, 0, 0, 2, -3, 2, 6},
	/* G */ {0, -3, 0, -1, -3, -2, -3, 8},
	/* H */ {-2, 0, 1, -1, -3, 1, 0, -2, 10},
	/* I */ {-1, -4, -3, -4, -2, -3, -4, -4, -4, 5},
	/* L */ {-2, -3, -4, -4, -2, -2, -3, -4, -3, 2, 5},
	/* K */ {-1, 3, 0, -1, -3, 2, 1, -2, 0, -3, -3, 6},
	/* M */ {-1, -2, -2, -4, -2, 0, -2, -3, -1, 2, 3, -2, 7},
	/* F */ {-3, -3, -4, -5, -2, -4, -3, -4, -1, 0, 1, -4, 0, 8},
	/* P */ {-1, -3, -2, -1, -4, -1, -1, -2, -2, -3, -4, -1, -3, -4, 10},
	/* S */ {1, -1, 1, 0, -1, 0, -1, 0, -1, -3, -3, 0, -2, -3, -1, 5},
	/* T */ {0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, -2, -1, 2, 5},
	/* W */ {-3, -3, -4, -5, -5, -1, -3, -3, -3, -3, -2, -3, -1, 1, -4, -4, -3, 15},
	/* Y */ {-2, -1, -2, -3, -3, -1, -2, -3, 2, -1, -1, -2, 0, 4, -3, -2, -2, 2, 8},
	/* V */ {0, -3, -3, -4, -1, -3, -3, -4, -4, 4, 1, -3, 1, -1, -3, -2, 0, -3, -1, 5},
	/* B */ {-2, -1, 5, 6, -3, 0, 1, -1, 0, -4, -4, 0, -3, -4, -2, 0, 0, -5, -3, -4, 6},
	/* Z */ {-1, 0, 0, 1, -3, 4, 5, -2, 0, -4, -3, 1, -1, -4, -1, 0, -1, -2, -2, -3, 1, 5},
})

var blosum62 = mustPairTable(NameBlosum62, ProteinAlphabet, [][]int{
	/* A */ {4},
	/* R */ {-1, 5},
	/* N */ {-2, 0, 6},
	/* D */ {-2, -2, 1, 6},
	/* C */ {0, -3, -3, -3, 9},
	/* Q */ {-1, 1, 0, 0, -3, 5},
	/* E */ {-1, 0, 0, 2, -4, 2, 5},
	/* G */ {0, -2, 0, -1, -3, -2, -2, 6},
	/* H */ {-2, 0, 1, -1, -3, 0, 0, -2, 8},
	/* I */ {-1, -3, -3, -3, -1, -3, -3, -4, -3, 4},
	/* L */ {-1, -2, -3, -4, -1, -2, -3, -4, -3, 2, 4},
	/* K */ {-1, 2, 0, -1, -3, 1, 1, -2, -1, -3, -2, 5},
	/* M */ {-1, -1, -2, -3, -1, 0, -2, -3, -2, 1, 2, -1, 5},
	/* F */ {-2, -3, -3, -3, -2, -3, -3, -3, -1, 0, 0, -3, 0, 6},
	/* P */ {-1, -2, -2, -1, -3, -1, -1, -2, -2, -3, -3, -1, -2, -4, 7},
	/* S */ {1, -1, 1, 0, -1, 0, 0, 0, -1, -2, -2, 0, -1, -2, -1, 4},
	/* T */ {0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, -2, -1, 1, 5},
	/* W */ {-3, -3, -4, -4, -2, -2, -3, -2, -2, -3, -2, -3, -1, 1, -4, -3, -2, 11},
	/* Y */ {-2, -2, -2, -3, -2, -1, -2, -3, 2, -1, -1, -2, -1, 3, -3, -2, -2, 2, 7},
	/* V */ {0, -3, -3, -3, -1, -2, -2, -3, -3, 3, 1, -2, 1, -1, -2, -2, 0, -3, -1, 4},
	/* B */ {-2, -1, 3, 4, -3, 0, 1, -1, 0, -3, -4, 0, -3, -3, -2, 0, -1, -4, -3, -3, 4},
	/* Z */ {-1, 0, 0, 1, -3, 3, 4, -2, 0, -3, -3, 1, -1, -3, -1, 0, -1, -3, -2, -2, 1, 4},
})

// Blosum50 returns the BLOSUM50 table. The value is shared and immutable.
func Blosum50() *PairTable { return blosum50 }

// Blosum62 returns the BLOSUM62 table. The value is shared and immutable.
func Blosum62() *PairTable { return blosum62 }

// Names lists the table names accepted by ByName, default first.
func Names() []string { return []string{NameBlosum50, NameBlosum62} }

// ByName resolves a built-in table by case-insensitive name.
// An empty name selects DefaultTableName.
func ByName(name string) (*PairTable, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameBlosum50:
		return blosum50, nil
	case NameBlosum62:
		return blosum62, nil
	default:
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownTable)
	}
}
