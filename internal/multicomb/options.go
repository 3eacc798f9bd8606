package multicomb

import (
	"math"

	"github.com/rs/zerolog"
)

// Stats reports the work a solver performed. AdderCalls is the cost metric
// the algorithms minimize; folds where one operand is known to be the
// identity are short-circuited and not counted. Stats are deterministic for
// identical inputs and options.
type Stats struct {
	AdderCalls int
	Rounds     int // pairwise solver: merge rounds before the final fold
	Merges     int // pairwise solver: elements appended to the arena
	Partitions int // power-set solver: partition count after padding
}

// Options carries the tuning knobs of both solvers. The defaults are the
// reference heuristics; neither formula is load-bearing for correctness.
type Options struct {
	// PairCutoff bounds how many of the highest-count pairs are considered
	// per merge round, given the current element count. Larger cutoffs save
	// group operations at the price of more bookkeeping.
	PairCutoff func(n int) int
	// PartitionSize picks the power-set partition width from the subset
	// count. The precompute cost is 2^k per partition, so it must grow
	// logarithmically at most.
	PartitionSize func(subsetCount int) int
	// MaxRounds caps the pairwise merge loop. Zero means derive a safe bound
	// from the input (total index count + 2).
	MaxRounds int
	// Logger receives per-round debug events. Defaults to a no-op logger.
	Logger zerolog.Logger
}

// Option mutates Options.
type Option func(*Options)

func WithPairCutoff(f func(n int) int) Option {
	return func(o *Options) { o.PairCutoff = f }
}

func WithPartitionSize(f func(subsetCount int) int) Option {
	return func(o *Options) { o.PartitionSize = f }
}

func WithMaxRounds(n int) Option {
	return func(o *Options) { o.MaxRounds = n }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultPairCutoff keeps the n·⌊ln n⌋ highest-count pairs per round.
func DefaultPairCutoff(n int) int {
	if n < 2 {
		return 0
	}
	return n * int(math.Log(float64(n)))
}

// DefaultPartitionSize is 1+⌊ln(subsetCount+1)⌋: more subsets amortize a
// bigger precomputed table.
func DefaultPartitionSize(subsetCount int) int {
	return 1 + int(math.Log(float64(subsetCount+1)))
}

func buildOptions(opts []Option) Options {
	o := Options{
		PairCutoff:    DefaultPairCutoff,
		PartitionSize: DefaultPartitionSize,
		Logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
