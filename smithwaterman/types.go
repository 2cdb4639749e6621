// SPDX-License-Identifier: MIT

package smithwaterman

// Direction is the traceback move stored in each grid cell.
// Stop is the zero value: a freshly allocated grid is all-Stop, which is
// exactly the boundary condition for row 0 and column 0.
type Direction uint8

const (
	// Stop ends a traceback: grid edge, or an interior cell whose best
	// candidate was negative and was floored at zero.
	Stop Direction = iota
	// Diagonal aligns s1[j-1] with s2[i-1].
	Diagonal
	// Left aligns s1[j-1] with a gap.
	Left
	// Up aligns a gap with s2[i-1].
	Up
)

// String returns a short, stable name for d.
func (d Direction) String() string {
	switch d {
	case Stop:
		return "Stop"
	case Diagonal:
		return "Diagonal"
	case Left:
		return "Left"
	case Up:
		return "Up"
	default:
		return "Direction(?)"
	}
}

// GapSymbol fills the strand opposite a gap move.
const GapSymbol = '-'

// Coord addresses a grid cell. I indexes rows (s2), J indexes columns (s1);
// both include the zero boundary, so residue s1[J-1] belongs to column J.
type Coord struct {
	I, J int
}

// AlignedPair is one optimal local alignment.
//   - Top and Bottom are equal-length strands over s1 and s2 respectively,
//     with GapSymbol marking gaps.
//   - Start is the Stop cell where the traceback ended (the anchor); the
//     aligned region covers s1[Start.J:] and s2[Start.I:].
//   - End is the maximum-scoring cell the traceback began from.
type AlignedPair struct {
	Top    string
	Bottom string
	Start  Coord
	End    Coord
}

// Len returns the number of alignment columns.
func (p AlignedPair) Len() int { return len(p.Top) }

// Result is the outcome of Align.
type Result struct {
	MaxScore   int
	Alignments []AlignedPair
}
