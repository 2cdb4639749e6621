// SPDX-License-Identifier: MIT

package smithwaterman

import "fmt"

// Solutions scans interior cells in fill order (rows over s2, columns over
// s1) and returns the global maximum with every cell that attains it, in
// discovery order.
//
// The running maximum starts at 0, so when no cell is positive every
// interior cell is returned.
//
// Complexity: O(rows·cols) time; the result slice is the only allocation.
func Solutions(g *Grid) (int, []Coord) {
	if g == nil {
		return 0, nil
	}
	best := 0
	var cells []Coord
	for i := 1; i < g.rows; i++ {
		for j := 1; j < g.cols; j++ {
			switch s := g.scores[g.offset(i, j)]; {
			case s > best:
				best = s
				cells = append(cells[:0], Coord{I: i, J: j})
			case s == best:
				cells = append(cells, Coord{I: i, J: j})
			}
		}
	}

	return best, cells
}

// Traceback walks from end back to the first Stop cell and returns the
// alignment it spells. s1 and s2 must be the sequences g was built from.
//
// Errors:
//   - ErrNilGrid, ErrDimensionMismatch, ErrOutOfRange.
//
// Complexity: O(len(s1)+len(s2)).
func Traceback(g *Grid, s1, s2 string, end Coord) (AlignedPair, error) {
	if err := checkGrid(g, s1, s2); err != nil {
		return AlignedPair{}, err
	}
	if end.I < 0 || end.I >= g.rows || end.J < 0 || end.J >= g.cols {
		return AlignedPair{}, fmt.Errorf("Traceback(%d,%d): %w", end.I, end.J, ErrOutOfRange)
	}

	return g.walk(s1, s2, end), nil
}

// Enumerate returns one AlignedPair per cell reported by Solutions, in the
// same order. It takes no options: when the maximum is 0 it always returns
// every interior cell, as ZeroScoreAllCells does. ZeroScoreNone is applied
// by Align only.
func Enumerate(g *Grid, s1, s2 string) ([]AlignedPair, error) {
	if err := checkGrid(g, s1, s2); err != nil {
		return nil, err
	}
	_, ends := Solutions(g)

	return g.walkAll(s1, s2, ends), nil
}

// walkAll traces back from each end cell, preserving order.
func (g *Grid) walkAll(s1, s2 string, ends []Coord) []AlignedPair {
	pairs := make([]AlignedPair, 0, len(ends))
	for _, end := range ends {
		pairs = append(pairs, g.walk(s1, s2, end))
	}

	return pairs
}

// checkGrid verifies g was built for (s1, s2).
func checkGrid(g *Grid, s1, s2 string) error {
	if g == nil {
		return ErrNilGrid
	}
	if g.cols != len(s1)+1 || g.rows != len(s2)+1 {
		return fmt.Errorf("grid %dx%d vs sequences %d/%d: %w",
			g.rows, g.cols, len(s2), len(s1), ErrDimensionMismatch)
	}

	return nil
}

// walk follows directions from end until a Stop cell. Strands are built
// backwards and reversed once at the end.
func (g *Grid) walk(s1, s2 string, end Coord) AlignedPair {
	var top, bottom []byte
	i, j := end.I, end.J
	for {
		switch g.dirs[g.offset(i, j)] {
		case Diagonal:
			top = append(top, s1[j-1])
			bottom = append(bottom, s2[i-1])
			i--
			j--
		case Left:
			top = append(top, s1[j-1])
			bottom = append(bottom, GapSymbol)
			j--
		case Up:
			top = append(top, GapSymbol)
			bottom = append(bottom, s2[i-1])
			i--
		default:
			reverse(top)
			reverse(bottom)

			return AlignedPair{
				Top:    string(top),
				Bottom: string(bottom),
				Start:  Coord{I: i, J: j},
				End:    end,
			}
		}
	}
}

// reverse reverses b in place.
func reverse(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}
