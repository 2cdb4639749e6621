package smithwaterman_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/swalign/scoring"
	"github.com/katalvlaran/swalign/smithwaterman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_InvalidInput covers every precondition guard.
func TestBuild_InvalidInput(t *testing.T) {
	tbl := scoring.Blosum50()

	_, err := smithwaterman.Build("", "A", -1, tbl)
	assert.ErrorIs(t, err, smithwaterman.ErrEmptySequence)

	_, err = smithwaterman.Build("A", "", -1, tbl)
	assert.ErrorIs(t, err, smithwaterman.ErrEmptySequence)

	_, err = smithwaterman.Build("A", "A", 1, tbl)
	assert.ErrorIs(t, err, smithwaterman.ErrPositiveGapPenalty)

	_, err = smithwaterman.Build("A", "A", -1, nil)
	assert.ErrorIs(t, err, smithwaterman.ErrNilTable)
}

// TestBuild_UnknownResidue ensures the typed error surfaces and no grid escapes.
func TestBuild_UnknownResidue(t *testing.T) {
	g, err := smithwaterman.Build("AXA", "AA", -1, scoring.Blosum50())
	require.ErrorIs(t, err, scoring.ErrUnknownResidue)
	assert.Nil(t, g, "no partial grid on error")
	assert.Contains(t, err.Error(), "s1[1]")
}

// TestBuild_Dimensions checks the (|s2|+1) x (|s1|+1) shape and the zero border.
func TestBuild_Dimensions(t *testing.T) {
	g := mustBuild(t, "HEAGAWGHEE", "PAWHEAE", -8)
	require.Equal(t, 8, g.Rows())
	require.Equal(t, 11, g.Cols())

	for j := 0; j < g.Cols(); j++ {
		s, d := mustAt(t, g, 0, j)
		assert.Equal(t, 0, s)
		assert.Equal(t, smithwaterman.Stop, d)
	}
	for i := 0; i < g.Rows(); i++ {
		s, d := mustAt(t, g, i, 0)
		assert.Equal(t, 0, s)
		assert.Equal(t, smithwaterman.Stop, d)
	}
}

// TestGrid_AtOutOfRange verifies At never panics on bad coordinates.
func TestGrid_AtOutOfRange(t *testing.T) {
	g := mustBuild(t, "AW", "W", -1)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, _, err := g.At(c[0], c[1])
		assert.ErrorIs(t, err, smithwaterman.ErrOutOfRange, "At(%d,%d)", c[0], c[1])
	}
}

// TestBuild_KnownCells checks a few hand-computed cells of the textbook grid.
func TestBuild_KnownCells(t *testing.T) {
	g := mustBuild(t, "HEAGAWGHEE", "PAWHEAE", -8)

	// s2[2]='W' vs s1[5]='W': 15 + H[2][5] (A vs A = 5).
	s, d := mustAt(t, g, 3, 6)
	assert.Equal(t, 20, s)
	assert.Equal(t, smithwaterman.Diagonal, d)

	// max cell: E vs E at the end of AWGHE / AW-HE.
	s, d = mustAt(t, g, 5, 9)
	assert.Equal(t, 28, s)
	assert.Equal(t, smithwaterman.Diagonal, d)

	// P against H scores -2: floored.
	s, d = mustAt(t, g, 1, 1)
	assert.Equal(t, 0, s)
	assert.Equal(t, smithwaterman.Stop, d)
}

// TestChoose_TieBreak pins the Diagonal > Left > Up priority and the floor.
func TestChoose_TieBreak(t *testing.T) {
	cases := []struct {
		name           string
		diag, left, up int
		wantS          int
		wantD          smithwaterman.Direction
	}{
		{"all equal", 5, 5, 5, 5, smithwaterman.Diagonal},
		{"diag ties left", 4, 4, 1, 4, smithwaterman.Diagonal},
		{"diag ties up", 4, 1, 4, 4, smithwaterman.Diagonal},
		{"left ties up", 1, 4, 4, 4, smithwaterman.Left},
		{"left wins", 1, 4, 3, 4, smithwaterman.Left},
		{"up wins", 1, 2, 3, 3, smithwaterman.Up},
		{"negative floored", -3, -1, -2, 0, smithwaterman.Stop},
		{"zero keeps diagonal", 0, -1, -1, 0, smithwaterman.Diagonal},
		{"zero keeps left", -2, 0, -1, 0, smithwaterman.Left},
		{"zero keeps up", -2, -1, 0, 0, smithwaterman.Up},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, d := smithwaterman.ExportedChoose(tc.diag, tc.left, tc.up)
			assert.Equal(t, tc.wantS, s)
			assert.Equal(t, tc.wantD, d)
		})
	}
}

// TestBuild_TieInGrid crafts a cell whose three candidates are equal.
// With AA=-3, AB=0, BB=1 and gap 0, cell (3,2) of "BA" vs "BAB" sees
// diag = left = up = 1.
func TestBuild_TieInGrid(t *testing.T) {
	tbl, err := scoring.NewPairTable("tiny", "AB", [][]int{
		{-3},
		{0, 1},
	})
	require.NoError(t, err)

	g, err := smithwaterman.Build("BA", "BAB", 0, tbl)
	require.NoError(t, err)
	s, d := mustAt(t, g, 3, 2)
	assert.Equal(t, 1, s)
	assert.Equal(t, smithwaterman.Diagonal, d)
}

// TestBuild_Properties checks non-negativity, that Stop implies a zero score
// and that every interior Stop cell had only negative candidates.
func TestBuild_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tbl := scoring.Blosum50()
	for trial := 0; trial < 20; trial++ {
		s1 := randomProtein(rng, 1+rng.Intn(40))
		s2 := randomProtein(rng, 1+rng.Intn(40))
		gap := -rng.Intn(10)
		g := mustBuild(t, s1, s2, gap)

		for i := 1; i < g.Rows(); i++ {
			for j := 1; j < g.Cols(); j++ {
				s, d := mustAt(t, g, i, j)
				require.GreaterOrEqual(t, s, 0)
				if d != smithwaterman.Stop {
					continue
				}
				require.Zero(t, s, "cell (%d,%d)", i, j)
				sub, err := tbl.Score(s1[j-1], s2[i-1])
				require.NoError(t, err)
				hd, _ := mustAt(t, g, i-1, j-1)
				hl, _ := mustAt(t, g, i, j-1)
				hu, _ := mustAt(t, g, i-1, j)
				require.Less(t, max(sub+hd, hl+gap, hu+gap), 0, "cell (%d,%d)", i, j)
			}
		}
	}
}

// TestBuild_ZeroCellKeepsDirection: a winning candidate of exactly 0 is not a
// Stop. In "QMPFMGYI" vs "NHK" at gap -1, cell (1,6) picks G/N (0) on the
// diagonal and must keep it.
func TestBuild_ZeroCellKeepsDirection(t *testing.T) {
	g := mustBuild(t, "QMPFMGYI", "NHK", -1)
	s, d := mustAt(t, g, 1, 6)
	assert.Equal(t, 0, s)
	assert.Equal(t, smithwaterman.Diagonal, d)

	for _, w := range []int{1, 4} {
		g = mustBuild(t, "QMPFMGYI", "NHK", -1, smithwaterman.WithWorkers(w))
		d, err := g.Direction(1, 6)
		require.NoError(t, err)
		assert.Equal(t, smithwaterman.Diagonal, d, "workers=%d", w)
	}
}

// TestGrid_Accessors checks Score, Direction and Max against At.
func TestGrid_Accessors(t *testing.T) {
	g := mustBuild(t, "HEAGAWGHEE", "PAWHEAE", -8)
	assert.Equal(t, 28, g.Max())

	s, err := g.Score(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, s)
	d, err := g.Direction(2, 3)
	require.NoError(t, err)
	assert.Equal(t, smithwaterman.Diagonal, d)

	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			ws, wd := mustAt(t, g, i, j)
			s, err := g.Score(i, j)
			require.NoError(t, err)
			d, err := g.Direction(i, j)
			require.NoError(t, err)
			require.Equal(t, ws, s)
			require.Equal(t, wd, d)
		}
	}

	_, err = g.Score(-1, 0)
	assert.ErrorIs(t, err, smithwaterman.ErrOutOfRange)
	_, err = g.Direction(0, g.Cols())
	assert.ErrorIs(t, err, smithwaterman.ErrOutOfRange)

	assert.Equal(t, 0, mustBuild(t, "WW", "CC", -100).Max())
}

// TestBuild_WavefrontMatchesSequential compares both fill strategies cell by cell.
func TestBuild_WavefrontMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 4 * smithwaterman.ExportedParallelMinSpan
	s1 := randomProtein(rng, n+17)
	s2 := randomProtein(rng, n)

	seq := mustBuild(t, s1, s2, -4)
	par := mustBuild(t, s1, s2, -4, smithwaterman.WithWorkers(4))
	require.Equal(t, seq.String(), par.String())
}

// TestGrid_String renders a tiny grid.
func TestGrid_String(t *testing.T) {
	g := mustBuild(t, "W", "W", -1)
	want := "  0.   0.\n  0.  15D\n"
	assert.Equal(t, want, g.String())
}

// TestDirection_String covers the enum names.
func TestDirection_String(t *testing.T) {
	assert.Equal(t, "Stop", smithwaterman.Stop.String())
	assert.Equal(t, "Diagonal", smithwaterman.Diagonal.String())
	assert.Equal(t, "Left", smithwaterman.Left.String())
	assert.Equal(t, "Up", smithwaterman.Up.String())
	assert.Equal(t, "Direction(?)", smithwaterman.Direction(9).String())
}
