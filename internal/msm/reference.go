// Package msm holds bn254 multi-scalar-multiplication baselines used to
// cross-check and benchmark the generic engine: a schoolbook double-and-add
// evaluation and gnark-crypto's bucket-method MultiExp.
package msm

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var ErrLenMismatch = errors.New("points and scalars must have same length")

// Naive computes sum_i scalars[i] * points[i] one term at a time.
func Naive(points []bn254.G1Affine, scalars []fr.Element) (bn254.G1Affine, error) {
	if len(points) != len(scalars) {
		return bn254.G1Affine{}, ErrLenMismatch
	}

	var accJ bn254.G1Jac
	for i := range points {
		var termAff bn254.G1Affine
		termAff.ScalarMultiplication(&points[i], scalars[i].BigInt(new(big.Int)))

		var termJ bn254.G1Jac
		termJ.FromAffine(&termAff)
		accJ.AddAssign(&termJ)
	}

	var out bn254.G1Affine
	out.FromJacobian(&accJ)
	return out, nil
}

// MultiExp computes the same sum through gnark-crypto's optimized MSM. This
// is the oracle the drivers compare LinComb results and timings against.
func MultiExp(points []bn254.G1Affine, scalars []fr.Element) (bn254.G1Affine, error) {
	if len(points) != len(scalars) {
		return bn254.G1Affine{}, ErrLenMismatch
	}
	if len(points) == 0 {
		return bn254.G1Affine{}, nil
	}

	var acc bn254.G1Jac
	if _, err := acc.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return bn254.G1Affine{}, err
	}

	var out bn254.G1Affine
	out.FromJacobian(&acc)
	return out, nil
}

// FactorsToScalars maps non-negative big.Int factors into fr. Factors must
// already be below the fr modulus, otherwise SetBigInt reduces them and the
// comparison against the generic engine (which does no field reduction) would
// diverge.
func FactorsToScalars(factors []*big.Int) []fr.Element {
	out := make([]fr.Element, len(factors))
	for i, f := range factors {
		out[i].SetBigInt(f)
	}
	return out
}
