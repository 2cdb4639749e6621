// SPDX-License-Identifier: MIT

package smithwaterman

import (
	"fmt"

	"github.com/katalvlaran/swalign/scoring"
)

// profile caches the substitution score of every distinct (s1, s2) residue
// pair, so the fill loop does plain slice reads and can never fail.
//   - cols[j] / rows[i] give the distinct-residue index of s1[j] / s2[i].
//   - sub is row-major over (distinct s2 residue, distinct s1 residue).
type profile struct {
	cols  []int
	rows  []int
	width int
	sub   []int
}

// newProfile resolves every distinct pair through table.
// Distinct residues are visited in first-appearance order (s2 outer, s1
// inner), so the first failing pair is the one a row-major fill would hit
// first, and the error reports that cell.
func newProfile(s1, s2 string, table scoring.Table) (*profile, error) {
	cols, colFirst := distinctResidues(s1)
	rows, rowFirst := distinctResidues(s2)
	width := len(colFirst)

	p := &profile{
		cols:  cols,
		rows:  rows,
		width: width,
		sub:   make([]int, len(rowFirst)*width),
	}
	for r, i := range rowFirst {
		for c, j := range colFirst {
			v, err := table.Score(s1[j], s2[i])
			if err != nil {
				return nil, fmt.Errorf("score s1[%d]=%q vs s2[%d]=%q: %w", j, s1[j], i, s2[i], err)
			}
			p.sub[r*width+c] = v
		}
	}

	return p, nil
}

// at returns score(s1[j], s2[i]) for zero-based sequence positions.
func (p *profile) at(i, j int) int {
	return p.sub[p.rows[i]*p.width+p.cols[j]]
}

// distinctResidues maps each position of s to a dense residue index and
// returns the first position of every distinct residue.
func distinctResidues(s string) (idx []int, first []int) {
	var seen [256]int // residue -> index+1; 0 means unseen
	idx = make([]int, len(s))
	for pos := 0; pos < len(s); pos++ {
		r := s[pos]
		if seen[r] == 0 {
			first = append(first, pos)
			seen[r] = len(first)
		}
		idx[pos] = seen[r] - 1
	}

	return idx, first
}
