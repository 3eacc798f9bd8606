package multicomb

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/Han-16/multicomb/internal/group"
)

// MultiSubsetPartitioned computes the same subset sums as MultiSubset with a
// simpler strategy: the elements are split into partitions of k consecutive
// entries, every possible sum inside a partition is precomputed once (its
// power set under Add, indexed by inclusion mask), and each subset total is
// assembled from one table lookup per partition.
//
// The precompute costs 2^k per partition regardless of how many subsets are
// requested, so it beats the pairwise solver on bookkeeping, not on group
// operations, for small batches.
func MultiSubsetPartitioned[E any](g group.Group[E], elements []E, subsets [][]int, opts ...Option) ([]E, Stats, error) {
	o := buildOptions(opts)

	n := len(elements)
	sets := make([]*bitset.BitSet, len(subsets))
	for k, subset := range subsets {
		b := bitset.New(uint(n))
		for _, i := range subset {
			if i < 0 || i >= n {
				return nil, Stats{}, fmt.Errorf("subset %d: index %d not in [0,%d): %w", k, i, n, ErrInvalidIndex)
			}
			b.Set(uint(i))
		}
		sets[k] = b
	}

	width := o.PartitionSize(len(subsets))
	if width < 1 {
		width = 1
	}

	// Pad with the identity so the arena divides evenly into partitions.
	elems := elements
	if n%width != 0 {
		elems = make([]E, n, n+width)
		copy(elems, elements)
		for len(elems)%width != 0 {
			elems = append(elems, g.Identity())
		}
	}
	numParts := len(elems) / width

	var stats Stats
	stats.Partitions = numParts

	// tables[p][mask] = sum of the partition-p members selected by mask.
	// Built incrementally: adding one member doubles the table. mask 0 is the
	// identity and entries pairing a value with it are copied, not added.
	tables := make([][]E, numParts)
	for p := 0; p < numParts; p++ {
		table := make([]E, 1, 1<<uint(width))
		table[0] = g.Identity()
		for _, v := range elems[p*width : (p+1)*width] {
			sz := len(table)
			table = append(table, v)
			for j := 1; j < sz; j++ {
				stats.AdderCalls++
				table = append(table, g.Add(table[j], v))
			}
		}
		tables[p] = table
	}

	o.Logger.Debug().
		Int("partitions", numParts).
		Int("width", width).
		Int("precomputeAdds", stats.AdderCalls).
		Msg("power-set tables built")

	output := make([]E, len(subsets))
	masks := make([]uint64, numParts)
	for k, sub := range sets {
		for p := range masks {
			masks[p] = 0
		}
		for i, ok := sub.NextSet(0); ok; i, ok = sub.NextSet(i + 1) {
			masks[int(i)/width] |= 1 << (int(i) % width)
		}

		acc := g.Identity()
		first := true
		for p, mask := range masks {
			if mask == 0 {
				continue
			}
			if first {
				acc = tables[p][mask]
				first = false
			} else {
				stats.AdderCalls++
				acc = g.Add(acc, tables[p][mask])
			}
		}
		output[k] = acc
	}
	return output, stats, nil
}
