// Package randutil generates the random inputs the drivers and tests feed to
// the engine: bounded factors, index subsets and bn254 G1 points.
package randutil

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// RandomFactors returns n uniform integers in [0, 2^bits).
func RandomFactors(n, bits int) ([]*big.Int, error) {
	if bits <= 0 {
		return nil, fmt.Errorf("bits must be positive, got %d", bits)
	}
	bound := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	res := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		f, err := rand.Int(rand.Reader, bound)
		if err != nil {
			return nil, err
		}
		res[i] = f
	}
	return res, nil
}

// RandomSubsets returns setCount subsets of [0, numCount), each index
// included independently with probability 1/2.
func RandomSubsets(numCount, setCount int) ([][]int, error) {
	res := make([][]int, setCount)
	buf := make([]byte, (numCount+7)/8)
	for k := 0; k < setCount; k++ {
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		var subset []int
		for i := 0; i < numCount; i++ {
			if buf[i/8]&(1<<(i%8)) != 0 {
				subset = append(subset, i)
			}
		}
		res[k] = subset
	}
	return res, nil
}

// RandomPointsG1 returns n points (random scalar)·G in affine form.
func RandomPointsG1(n int) ([]bn254.G1Affine, error) {
	res := make([]bn254.G1Affine, n)

	_, _, g1GenAff, _ := bn254.Generators()

	for i := 0; i < n; i++ {
		scalar, err := rand.Int(rand.Reader, fr.Modulus())
		if err != nil {
			return nil, err
		}
		var p bn254.G1Affine
		p.ScalarMultiplication(&g1GenAff, scalar)
		res[i] = p
	}
	return res, nil
}
