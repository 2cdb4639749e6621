// SPDX-License-Identifier: MIT

package smithwaterman

// ZeroScorePolicy decides what Align reports when no cell scores above zero.
type ZeroScorePolicy int

const (
	// ZeroScoreAllCells reports every interior cell as a trivial, empty
	// alignment in row-major order: with a global maximum of 0 every cell
	// ties with the running maximum.
	ZeroScoreAllCells ZeroScorePolicy = iota

	// ZeroScoreNone reports no alignments when the maximum is 0.
	ZeroScoreNone
)

// Defaults.
const (
	// DefaultWorkers fills the grid sequentially.
	DefaultWorkers = 1

	// DefaultZeroScorePolicy keeps the plain scan result.
	DefaultZeroScorePolicy = ZeroScoreAllCells
)

// parallelMinSpan is the shortest anti-diagonal handed to worker goroutines;
// shorter diagonals are filled inline.
const parallelMinSpan = 32

const (
	panicWorkersInvalid = "smithwaterman: WithWorkers: n must be >= 0"
	panicPolicyInvalid  = "smithwaterman: WithZeroScorePolicy: unknown policy"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options holds the resolved configuration; public entry points accept
// ...Option and resolve them via gatherOptions.
type Options struct {
	workers    int             // <= 1 means sequential row-major fill
	zeroPolicy ZeroScorePolicy // DefaultZeroScorePolicy
}

// WithWorkers fills the grid along anti-diagonals with up to n goroutines.
// n of 0 or 1 selects the sequential fill. Output is identical either way.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithZeroScorePolicy selects the behavior when the global maximum is 0.
func WithZeroScorePolicy(p ZeroScorePolicy) Option {
	if p != ZeroScoreAllCells && p != ZeroScoreNone {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.zeroPolicy = p }
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:    DefaultWorkers,
		zeroPolicy: DefaultZeroScorePolicy,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
