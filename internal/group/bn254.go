package group

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// G1 is the bn254 G1 group in affine coordinates. The identity is the
// zero-value G1Affine, which gnark-crypto treats as the point at infinity.
type G1 struct{}

func (G1) Add(x, y bn254.G1Affine) bn254.G1Affine {
	var out bn254.G1Affine
	out.Add(&x, &y)
	return out
}

func (G1) Identity() bn254.G1Affine { return bn254.G1Affine{} }
