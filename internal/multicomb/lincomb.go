package multicomb

import (
	"fmt"
	"math/big"

	"github.com/Han-16/multicomb/internal/group"
)

// LinComb computes factors[0]·elements[0] + factors[1]·elements[1] + ...,
// where scalar multiplication is repeated Add. It is the Pippenger-style
// entry point: the weighted sum is decomposed into one subset per bit
// position (subset j holds the indices whose factor has bit j set), the
// subset sums are batched through MultiSubset, and the per-bit sums are
// recombined most significant bit first by repeated doubling, costing two
// extra Add calls per bit.
//
// Factors must be non-negative; elements and factors must pair up 1:1.
func LinComb[E any](g group.Group[E], elements []E, factors []*big.Int, opts ...Option) (E, Stats, error) {
	var zero E
	if len(elements) != len(factors) {
		return zero, Stats{}, fmt.Errorf("%d elements, %d factors: %w", len(elements), len(factors), ErrLenMismatch)
	}

	maxBits := 0
	for i, f := range factors {
		if f == nil || f.Sign() < 0 {
			return zero, Stats{}, fmt.Errorf("factor %d: %w", i, ErrNegativeFactor)
		}
		if bl := f.BitLen(); bl > maxBits {
			maxBits = bl
		}
	}

	subsets := make([][]int, maxBits+1)
	for j := 0; j <= maxBits; j++ {
		for i, f := range factors {
			if f.Bit(j) == 1 {
				subsets[j] = append(subsets[j], i)
			}
		}
	}

	sums, stats, err := MultiSubset(g, elements, subsets, opts...)
	if err != nil {
		return zero, Stats{}, err
	}

	// Binary Horner: ((sums[B]·2 + sums[B-1])·2 + ...)·2 + sums[0].
	acc := g.Identity()
	for j := len(sums) - 1; j >= 0; j-- {
		acc = g.Add(acc, acc)
		acc = g.Add(acc, sums[j])
		stats.AdderCalls += 2
	}
	return acc, stats, nil
}

// NaiveBaseline is the group-operation count of the schoolbook
// double-and-add evaluation of the same linear combination: one doubling per
// bit per element plus one addition per set bit. Used by the drivers and the
// regression tests to report the optimization factor.
func NaiveBaseline(factors []*big.Int) int {
	maxBits, ones := 0, 0
	for _, f := range factors {
		if f == nil {
			continue
		}
		if bl := f.BitLen(); bl > maxBits {
			maxBits = bl
		}
		for _, w := range f.Bits() {
			for ; w != 0; w &= w - 1 {
				ones++
			}
		}
	}
	return maxBits*len(factors) + ones
}
