// Package group defines the additive abstraction the subset-sum solvers are
// generic over, plus the concrete adapters shipped with this repo.
package group

import "math/big"

// Group is an associative, commutative binary operation with an identity
// element over an opaque carrier type E. Add must be pure: it may not mutate
// its arguments, and equal inputs always give equal outputs. The number of
// Add calls is the cost metric the solvers minimize.
type Group[E any] interface {
	Add(x, y E) E
	Identity() E
}

// Int64 is the integers under ordinary addition. Handy for tests and examples.
type Int64 struct{}

func (Int64) Add(x, y int64) int64 { return x + y }
func (Int64) Identity() int64      { return 0 }

// BigInt is arbitrary-precision integers under addition. Add allocates a
// fresh value so callers' operands are never touched.
type BigInt struct{}

func (BigInt) Add(x, y *big.Int) *big.Int { return new(big.Int).Add(x, y) }
func (BigInt) Identity() *big.Int         { return new(big.Int) }
