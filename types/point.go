package types

import "math/big"

// Binary sizes of the wire encodings.
const (
	G1PointLength = 64
	G2PointLength = 128
	ScalarLength  = 32
)

// G1Point is an uncompressed BN254 G1 element: 32-byte big-endian x
// followed by 32-byte big-endian y. The all-zero encoding denotes the
// point at infinity.
type G1Point [G1PointLength]byte

// G2Point is an uncompressed BN254 G2 element: x0, x1, y0, y1, each a
// 32-byte big-endian Fp coefficient with the imaginary part first (EVM
// precompile convention). The all-zero encoding denotes the point at
// infinity.
type G2Point [G2PointLength]byte

// Scalar is a 32-byte big-endian field element.
type Scalar [ScalarLength]byte

// Pair is a (G1, G2) point pair submitted to a batched pairing check.
type Pair struct {
	G1 G1Point
	G2 G2Point
}

// IsZero reports whether p is the point at infinity.
func (p G1Point) IsZero() bool {
	return p == G1Point{}
}

// IsZero reports whether p is the point at infinity.
func (p G2Point) IsZero() bool {
	return p == G2Point{}
}

// IsZero reports whether s is the zero scalar.
func (s Scalar) IsZero() bool {
	return s == Scalar{}
}

// BigInt returns the scalar as a big integer.
func (s Scalar) BigInt() *big.Int {
	return new(big.Int).SetBytes(s[:])
}

// NewScalar builds a scalar from a non-negative big integer. Values wider
// than 256 bits do not fit the wire encoding and are rejected.
func NewScalar(v *big.Int) (Scalar, error) {
	var s Scalar
	if v == nil || v.Sign() < 0 {
		return s, errNegativeScalar
	}
	if v.BitLen() > 8*ScalarLength {
		return s, errScalarOverflow
	}
	v.FillBytes(s[:])
	return s, nil
}
