package smithwaterman_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/swalign/scoring"
	"github.com/katalvlaran/swalign/smithwaterman"
	"github.com/stretchr/testify/require"
)

// randomProtein returns a deterministic pseudo-random residue string.
func randomProtein(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = scoring.ProteinAlphabet[rng.Intn(20)] // standard residues only
	}

	return string(b)
}

// mustBuild builds a grid or fails the test.
func mustBuild(t *testing.T, s1, s2 string, gap int, opts ...smithwaterman.Option) *smithwaterman.Grid {
	t.Helper()
	g, err := smithwaterman.Build(s1, s2, gap, scoring.Blosum50(), opts...)
	require.NoError(t, err)
	require.NotNil(t, g)

	return g
}

// mustAt reads a cell or fails the test.
func mustAt(t *testing.T, g *smithwaterman.Grid, i, j int) (int, smithwaterman.Direction) {
	t.Helper()
	s, d, err := g.At(i, j)
	require.NoError(t, err)

	return s, d
}
