// SPDX-License-Identifier: MIT

package smithwaterman

import "github.com/katalvlaran/swalign/scoring"

// Align builds the grid for (s1, s2) and returns the optimal local score with
// every alignment that reaches it.
//
// Preconditions: s1 and s2 non-empty; gap <= 0 (callers negate user input).
//
// Errors:
//   - ErrEmptySequence, ErrPositiveGapPenalty, ErrNilTable.
//   - scoring.ErrUnknownResidue (wrapped) for a pair missing from table.
//
// On error the Result is zero; nothing partial escapes.
//
// Example:
//
//	res, err := Align("HEAGAWGHEE", "PAWHEAE", -8, scoring.Blosum50())
//	// res.MaxScore == 28, res.Alignments[0].Top == "AWGHE"
func Align(s1, s2 string, gap int, table scoring.Table, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	g, err := Build(s1, s2, gap, table, opts...)
	if err != nil {
		return Result{}, err
	}

	best, ends := Solutions(g)
	if best == 0 && o.zeroPolicy == ZeroScoreNone {
		return Result{MaxScore: 0, Alignments: []AlignedPair{}}, nil
	}

	return Result{MaxScore: best, Alignments: g.walkAll(s1, s2, ends)}, nil
}
