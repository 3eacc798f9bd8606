package multicomb

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Han-16/multicomb/internal/group"
)

func randomInt64s(rng *rand.Rand, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = rng.Int63n(1 << 40)
	}
	return out
}

// each index included with probability 1/2, mirroring the driver generator
func randomSubsets(rng *rand.Rand, numCount, setCount int) [][]int {
	out := make([][]int, setCount)
	for k := range out {
		for i := 0; i < numCount; i++ {
			if rng.Intn(2) == 1 {
				out[k] = append(out[k], i)
			}
		}
	}
	return out
}

func naiveSums(elements []int64, subsets [][]int) []int64 {
	out := make([]int64, len(subsets))
	for k, subset := range subsets {
		for _, i := range subset {
			out[k] += elements[i]
		}
	}
	return out
}

func TestMultiSubsetKnownSums(t *testing.T) {
	elements := []int64{2, 3, 5}
	subsets := [][]int{{0, 1}, {1, 2}, {0, 1, 2}}

	sums, _, err := MultiSubset[int64](group.Int64{}, elements, subsets)
	require.NoError(t, err)
	require.Equal(t, []int64{5, 8, 10}, sums)
}

func TestMultiSubsetMatchesNaiveFold(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, tc := range []struct{ numCount, setCount int }{
		{1, 1},
		{5, 3},
		{16, 16},
		{64, 40},
		{128, 100},
	} {
		elements := randomInt64s(rng, tc.numCount)
		subsets := randomSubsets(rng, tc.numCount, tc.setCount)

		sums, _, err := MultiSubset[int64](group.Int64{}, elements, subsets)
		require.NoError(t, err)
		require.Equal(t, naiveSums(elements, subsets), sums,
			"numCount=%d setCount=%d", tc.numCount, tc.setCount)
	}
}

func TestMultiSubsetEmptyAndSingleton(t *testing.T) {
	elements := []int64{7, 11, 13}
	subsets := [][]int{{}, {2}, nil, {0}}

	sums, stats, err := MultiSubset[int64](group.Int64{}, elements, subsets)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 13, 0, 7}, sums)
	// nothing to merge or fold: resolving singletons costs no group operations
	require.Zero(t, stats.AdderCalls)
	require.Zero(t, stats.Merges)
}

func TestMultiSubsetNoSubsets(t *testing.T) {
	sums, stats, err := MultiSubset[int64](group.Int64{}, []int64{1, 2}, nil)
	require.NoError(t, err)
	require.Empty(t, sums)
	require.Zero(t, stats.AdderCalls)
}

func TestMultiSubsetDuplicateIndicesCollapse(t *testing.T) {
	elements := []int64{2, 3}
	sums, _, err := MultiSubset[int64](group.Int64{}, elements, [][]int{{0, 0, 1, 1}})
	require.NoError(t, err)
	require.Equal(t, []int64{5}, sums)
}

func TestMultiSubsetSharedPairReuse(t *testing.T) {
	// {0,1} appears in every subset: it must be merged once and reused, so
	// the total add count stays below the naive fold's.
	elements := []int64{1, 2, 4, 8, 16}
	subsets := [][]int{
		{0, 1, 2},
		{0, 1, 3},
		{0, 1, 4},
		{0, 1},
	}
	sums, stats, err := MultiSubset[int64](group.Int64{}, elements, subsets)
	require.NoError(t, err)
	require.Equal(t, []int64{7, 11, 19, 3}, sums)
	require.Less(t, stats.AdderCalls, 8) // naive folding costs 8 adds
	require.GreaterOrEqual(t, stats.Merges, 1)
}

func TestMultiSubsetDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	elements := randomInt64s(rng, 50)
	subsets := randomSubsets(rng, 50, 30)

	sums1, stats1, err := MultiSubset[int64](group.Int64{}, elements, subsets)
	require.NoError(t, err)
	sums2, stats2, err := MultiSubset[int64](group.Int64{}, elements, subsets)
	require.NoError(t, err)

	require.Equal(t, sums1, sums2)
	require.Equal(t, stats1, stats2)
}

func TestMultiSubsetInvalidIndex(t *testing.T) {
	elements := []int64{1, 2, 3}

	_, _, err := MultiSubset[int64](group.Int64{}, elements, [][]int{{0, 3}})
	require.ErrorIs(t, err, ErrInvalidIndex)

	_, _, err = MultiSubset[int64](group.Int64{}, elements, [][]int{{1}, {-1}})
	require.ErrorIs(t, err, ErrInvalidIndex)
}

func TestMultiSubsetDoesNotMutateInputs(t *testing.T) {
	elements := []int64{2, 3, 5, 7}
	subsets := [][]int{{0, 1, 2}, {1, 2, 3}}
	elemsCopy := append([]int64(nil), elements...)
	subsetsCopy := [][]int{
		append([]int(nil), subsets[0]...),
		append([]int(nil), subsets[1]...),
	}

	_, _, err := MultiSubset[int64](group.Int64{}, elements, subsets)
	require.NoError(t, err)
	require.Equal(t, elemsCopy, elements)
	require.Equal(t, subsetsCopy, subsets)
}

func TestMultiSubsetRoundLimit(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	elements := randomInt64s(rng, 32)
	subsets := randomSubsets(rng, 32, 32)

	_, _, err := MultiSubset[int64](group.Int64{}, elements, subsets, WithMaxRounds(1))
	require.ErrorIs(t, err, ErrRoundLimit)
}

func TestMultiSubsetCutoffZeroFallsBackToFold(t *testing.T) {
	// A zero cutoff disables merging entirely; results must still be exact.
	rng := rand.New(rand.NewSource(4))
	elements := randomInt64s(rng, 20)
	subsets := randomSubsets(rng, 20, 10)

	sums, stats, err := MultiSubset[int64](group.Int64{}, elements, subsets,
		WithPairCutoff(func(int) int { return 0 }))
	require.NoError(t, err)
	require.Equal(t, naiveSums(elements, subsets), sums)
	require.Zero(t, stats.Merges)
}
