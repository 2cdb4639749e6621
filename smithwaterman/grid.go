// SPDX-License-Identifier: MIT

package smithwaterman

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/swalign/scoring"
)

// Grid is a filled Smith–Waterman grid: (len(s2)+1) rows × (len(s1)+1) cols.
// Scores and directions live in two flat row-major buffers (offset = i*cols + j).
// A Grid returned by Build is read-only and safe for concurrent readers.
type Grid struct {
	rows, cols int
	scores     []int
	dirs       []Direction
}

// newGrid allocates an all-zero, all-Stop grid.
func newGrid(rows, cols int) *Grid {
	return &Grid{
		rows:   rows,
		cols:   cols,
		scores: make([]int, rows*cols),
		dirs:   make([]Direction, rows*cols),
	}
}

// Rows returns len(s2)+1.
func (g *Grid) Rows() int { return g.rows }

// Cols returns len(s1)+1.
func (g *Grid) Cols() int { return g.cols }

// At returns the score and direction of cell (i, j).
// Returns ErrOutOfRange for coordinates outside the grid.
func (g *Grid) At(i, j int) (int, Direction, error) {
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		return 0, Stop, fmt.Errorf("Grid.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	off := g.offset(i, j)

	return g.scores[off], g.dirs[off], nil
}

// Score returns the accumulated score of cell (i, j).
// Returns ErrOutOfRange for coordinates outside the grid.
func (g *Grid) Score(i, j int) (int, error) {
	s, _, err := g.At(i, j)

	return s, err
}

// Direction returns the traceback move stored in cell (i, j).
// Returns ErrOutOfRange for coordinates outside the grid.
func (g *Grid) Direction(i, j int) (Direction, error) {
	_, d, err := g.At(i, j)

	return d, err
}

// Max returns the highest score in the grid (0 when nothing is positive).
func (g *Grid) Max() int {
	best, _ := Solutions(g)

	return best
}

// offset maps (i, j) to the flat buffer index.
func (g *Grid) offset(i, j int) int { return i*g.cols + j }

// String renders the score grid with a direction letter per cell
// (D, L, U, or . for Stop), one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			off := g.offset(i, j)
			fmt.Fprintf(&sb, "%3d%c", g.scores[off], dirLetter(g.dirs[off]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func dirLetter(d Direction) byte {
	switch d {
	case Diagonal:
		return 'D'
	case Left:
		return 'L'
	case Up:
		return 'U'
	default:
		return '.'
	}
}

// Build fills the grid for s1 (columns) against s2 (rows).
//
// Cell rule, for i in 1..len(s2), j in 1..len(s1):
//
//	diag = score(s1[j-1], s2[i-1]) + H[i-1][j-1]
//	left = H[i][j-1] + gap
//	up   = H[i-1][j] + gap
//
// The first of Diagonal, Left, Up (in that order) that is >= both others
// wins. A negative winning value is stored as 0 with direction Stop, so every
// score is non-negative. A winner of exactly 0 keeps its direction: a
// traceback may pass through a zero cell and stops only at a Stop cell.
//
// Errors:
//   - ErrEmptySequence if s1 or s2 is empty.
//   - ErrPositiveGapPenalty if gap > 0.
//   - ErrNilTable if table is nil.
//   - scoring.ErrUnknownResidue (wrapped) if any residue pair is missing.
//
// On error no grid is returned.
//
// Complexity: O(len(s1)·len(s2)) time and memory.
func Build(s1, s2 string, gap int, table scoring.Table, opts ...Option) (*Grid, error) {
	o := gatherOptions(opts...)
	if err := validateInput(s1, s2, gap, table); err != nil {
		return nil, err
	}
	p, err := newProfile(s1, s2, table)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	g := newGrid(len(s2)+1, len(s1)+1)
	if o.workers > 1 {
		g.fillWavefront(p, gap, o.workers)
	} else {
		g.fillRows(p, gap)
	}

	return g, nil
}

// validateInput enforces the engine's preconditions.
func validateInput(s1, s2 string, gap int, table scoring.Table) error {
	if len(s1) == 0 || len(s2) == 0 {
		return ErrEmptySequence
	}
	if gap > 0 {
		return fmt.Errorf("gap=%d: %w", gap, ErrPositiveGapPenalty)
	}
	if table == nil {
		return ErrNilTable
	}

	return nil
}

// fillRows fills interior cells in row-major order.
func (g *Grid) fillRows(p *profile, gap int) {
	for i := 1; i < g.rows; i++ {
		for j := 1; j < g.cols; j++ {
			g.fillCell(p, i, j, gap)
		}
	}
}

// fillWavefront fills interior cells one anti-diagonal (i+j = d) at a time.
// Every cell on a diagonal depends only on the two previous diagonals, so
// cells of one diagonal are filled concurrently; the WaitGroup barrier
// publishes them before the next diagonal starts.
func (g *Grid) fillWavefront(p *profile, gap, workers int) {
	lastRow, lastCol := g.rows-1, g.cols-1
	var wg sync.WaitGroup
	for d := 2; d <= lastRow+lastCol; d++ {
		lo, hi := max(1, d-lastCol), min(lastRow, d-1)
		span := hi - lo + 1
		if span < parallelMinSpan {
			for i := lo; i <= hi; i++ {
				g.fillCell(p, i, d-i, gap)
			}
			continue
		}

		chunk := (span + workers - 1) / workers
		for start := lo; start <= hi; start += chunk {
			end := min(hi, start+chunk-1)
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := start; i <= end; i++ {
					g.fillCell(p, i, d-i, gap)
				}
			}()
		}
		wg.Wait()
	}
}

// fillCell computes interior cell (i, j) from its three predecessors.
func (g *Grid) fillCell(p *profile, i, j, gap int) {
	diag := p.at(i-1, j-1) + g.scores[g.offset(i-1, j-1)]
	left := g.scores[g.offset(i, j-1)] + gap
	up := g.scores[g.offset(i-1, j)] + gap

	off := g.offset(i, j)
	g.scores[off], g.dirs[off] = choose(diag, left, up)
}

// choose applies the tie-break (Diagonal, then Left, then Up) and the
// zero floor; only a negative winner is floored.
func choose(diag, left, up int) (int, Direction) {
	var best int
	var dir Direction
	switch {
	case diag >= left && diag >= up:
		best, dir = diag, Diagonal
	case left >= diag && left >= up:
		best, dir = left, Left
	default:
		best, dir = up, Up
	}
	if best < 0 {
		return 0, Stop
	}

	return best, dir
}
