package multicomb

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/Han-16/multicomb/internal/group"
)

func BenchmarkLinComb(b *testing.B) {
	rng := rand.New(rand.NewSource(20))
	for _, n := range []int{64, 256, 1024} {
		elements := randomBigInts(rng, n, 64)
		factors := randomBigInts(rng, n, 128)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, _, err := LinComb[*big.Int](group.BigInt{}, elements, factors); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMultiSubset(b *testing.B) {
	rng := rand.New(rand.NewSource(21))
	for _, n := range []int{64, 256} {
		elements := randomInt64s(rng, n)
		subsets := randomSubsets(rng, n, n)
		b.Run(fmt.Sprintf("pairwise/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, _, err := MultiSubset[int64](group.Int64{}, elements, subsets); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(fmt.Sprintf("powerset/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, _, err := MultiSubsetPartitioned[int64](group.Int64{}, elements, subsets); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
