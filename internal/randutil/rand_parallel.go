package randutil

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"runtime"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// RandomFactorsPar generates n random factors in [0, 2^bits) in parallel.
// If workers <= 0, it defaults to runtime.NumCPU().
func RandomFactorsPar(n, bits, workers int) ([]*big.Int, error) {
	if n <= 0 {
		return []*big.Int{}, nil
	}
	if bits <= 0 {
		return nil, fmt.Errorf("bits must be positive, got %d", bits)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	bound := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	out := make([]*big.Int, n)
	jobs := make(chan int, workers*2)

	var wg sync.WaitGroup
	var firstErr error
	var errOnce sync.Once

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// NOTE: crypto/rand.Reader is safe for concurrent use.
				f, err := rand.Int(rand.Reader, bound)
				if err != nil {
					errOnce.Do(func() { firstErr = err })
					continue
				}
				out[i] = f
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// RandomPointsG1Par generates n random G1 points in parallel, each being
// (random scalar)·G. If workers <= 0, it defaults to runtime.NumCPU().
func RandomPointsG1Par(n, workers int) ([]bn254.G1Affine, error) {
	if n <= 0 {
		return []bn254.G1Affine{}, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	out := make([]bn254.G1Affine, n)

	_, _, g1GenAff, _ := bn254.Generators()

	jobs := make(chan int, workers*2)

	var wg sync.WaitGroup
	var firstErr error
	var errOnce sync.Once

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				bi, err := rand.Int(rand.Reader, fr.Modulus())
				if err != nil {
					errOnce.Do(func() { firstErr = err })
					continue
				}
				var p bn254.G1Affine
				p.ScalarMultiplication(&g1GenAff, bi)
				out[i] = p
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
