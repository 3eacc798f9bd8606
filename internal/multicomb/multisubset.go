// Package multicomb computes batched subset sums and linear combinations over
// an arbitrary additive group, minimizing group-operation count by reusing
// partial sums across subsets. It is the engine behind Pippenger-style
// multi-scalar multiplication: LinComb reduces a weighted sum to one subset
// per scalar bit and batches those subsets through MultiSubset.
package multicomb

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/Han-16/multicomb/internal/group"
)

// MultiSubset returns, for every requested subset, the Add-fold of elements
// at that subset's indices. Each round it counts how often every index pair
// co-occurs across the outstanding subsets, merges the most shared disjoint
// pairs into new elements, and rewrites the subsets to reference the merged
// element, so a partial sum shared by many subsets is computed once.
//
// Subsets are index sets: duplicates within one subset collapse, empty
// subsets sum to the identity. Any index outside [0, len(elements)) fails the
// whole call with ErrInvalidIndex.
func MultiSubset[E any](g group.Group[E], elements []E, subsets [][]int, opts ...Option) ([]E, Stats, error) {
	s, err := newPairSolver(g, elements, subsets, buildOptions(opts))
	if err != nil {
		return nil, Stats{}, err
	}
	if err := s.run(); err != nil {
		return nil, Stats{}, err
	}
	return s.output, s.stats, nil
}

// indexPair is an unordered pair of arena indices, stored with x < y.
type indexPair struct {
	x, y uint
}

type pairSolver[E any] struct {
	g     group.Group[E]
	opt   Options
	stats Stats

	// elems is an append-only arena: merged sums are appended, nothing is
	// ever removed, so subset indices stay valid for the whole run.
	elems []E
	// pending[k] is the outstanding index set for output k, nil once the
	// subset has been resolved.
	pending []*bitset.BitSet
	output  []E
	// total index count across pending subsets; every productive round
	// lowers it by at least one, which bounds the round count.
	remaining int
}

func newPairSolver[E any](g group.Group[E], elements []E, subsets [][]int, opt Options) (*pairSolver[E], error) {
	s := &pairSolver[E]{
		g:       g,
		opt:     opt,
		elems:   make([]E, len(elements), 2*len(elements)+1),
		pending: make([]*bitset.BitSet, len(subsets)),
		output:  make([]E, len(subsets)),
	}
	copy(s.elems, elements)

	n := len(elements)
	for k, subset := range subsets {
		b := bitset.New(uint(n))
		for _, i := range subset {
			if i < 0 || i >= n {
				return nil, fmt.Errorf("subset %d: index %d not in [0,%d): %w", k, i, n, ErrInvalidIndex)
			}
			b.Set(uint(i))
		}
		s.pending[k] = b
		s.remaining += int(b.Count())
	}
	return s, nil
}

func (s *pairSolver[E]) run() error {
	maxRounds := s.opt.MaxRounds
	if maxRounds <= 0 {
		maxRounds = s.remaining + 2
	}

	for round := 0; ; round++ {
		if round >= maxRounds {
			return fmt.Errorf("%w: %d rounds, %d indices unresolved", ErrRoundLimit, round, s.remaining)
		}
		pairs := s.rankedPairs()
		if len(pairs) == 0 {
			// No shared pair survives the cutoff: fold whatever is left.
			s.stats.Rounds = round
			s.flush()
			s.opt.Logger.Debug().
				Int("rounds", round).
				Int("merges", s.stats.Merges).
				Int("adderCalls", s.stats.AdderCalls).
				Msg("multisubset resolved")
			return nil
		}
		merged := s.mergeRound(pairs)
		s.opt.Logger.Debug().
			Int("round", round).
			Int("candidates", len(pairs)).
			Int("merged", merged).
			Msg("merge round")
	}
}

// rankedPairs counts pair co-occurrence across all outstanding subsets and
// returns the highest-count pairs, capped at PairCutoff(arena size). Ties
// break on (x, y) ascending so identical inputs always take the same path.
func (s *pairSolver[E]) rankedPairs() []indexPair {
	cutoff := s.opt.PairCutoff(len(s.elems))
	if cutoff <= 0 {
		return nil
	}

	counts := make(map[indexPair]int)
	var idx []uint
	for _, sub := range s.pending {
		if sub == nil {
			continue
		}
		idx = idx[:0]
		for i, ok := sub.NextSet(0); ok; i, ok = sub.NextSet(i + 1) {
			idx = append(idx, i)
		}
		for a := 0; a < len(idx); a++ {
			for b := a + 1; b < len(idx); b++ {
				counts[indexPair{idx[a], idx[b]}]++
			}
		}
	}
	if len(counts) == 0 {
		return nil
	}

	pairs := make([]indexPair, 0, len(counts))
	for p := range counts {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		ci, cj := counts[pairs[i]], counts[pairs[j]]
		if ci != cj {
			return ci > cj
		}
		if pairs[i].x != pairs[j].x {
			return pairs[i].x < pairs[j].x
		}
		return pairs[i].y < pairs[j].y
	})
	if len(pairs) > cutoff {
		pairs = pairs[:cutoff]
	}
	return pairs
}

// mergeRound greedily takes disjoint pairs from the ranked list. Each
// selected pair's sum is appended to the arena, and every subset holding both
// halves is rewritten to hold the merged index instead. A subset that emptied
// out is exactly the merged sum and is resolved on the spot.
func (s *pairSolver[E]) mergeRound(pairs []indexPair) int {
	used := bitset.New(uint(len(s.elems)))
	merges := 0
	for _, p := range pairs {
		if used.Test(p.x) || used.Test(p.y) {
			continue
		}
		used.Set(p.x)
		used.Set(p.y)

		sum := s.add(s.elems[p.x], s.elems[p.y])
		s.elems = append(s.elems, sum)
		mi := uint(len(s.elems) - 1)
		s.stats.Merges++
		merges++

		for k, sub := range s.pending {
			if sub == nil || !sub.Test(p.x) || !sub.Test(p.y) {
				continue
			}
			sub.Clear(p.x)
			sub.Clear(p.y)
			s.remaining--
			if sub.None() {
				s.output[k] = sum
				s.pending[k] = nil
				s.remaining-- // bookkeeping counted two removals, one insert
			} else {
				sub.Set(mi)
			}
		}
	}
	return merges
}

// flush naively folds every still-pending subset. Reached once no pair is
// shared (or the cutoff is zero), so subsets are small here. Folding starts
// from the first element rather than the identity: a singleton subset costs
// zero Add calls.
func (s *pairSolver[E]) flush() {
	for k, sub := range s.pending {
		if sub == nil {
			continue
		}
		acc := s.g.Identity()
		first := true
		for i, ok := sub.NextSet(0); ok; i, ok = sub.NextSet(i + 1) {
			if first {
				acc = s.elems[i]
				first = false
			} else {
				acc = s.add(acc, s.elems[i])
			}
		}
		s.output[k] = acc
		s.pending[k] = nil
	}
}

func (s *pairSolver[E]) add(x, y E) E {
	s.stats.AdderCalls++
	return s.g.Add(x, y)
}
