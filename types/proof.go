package types

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ProofLength is the exact binary size of a serialized proof:
// a (G1, 64) | b (G2, 128) | c (G1, 64).
const ProofLength = G1PointLength + G2PointLength + G1PointLength

// VerifyingKeyMinLength is the minimal binary size of a serialized
// verifying key: alpha_g1 (64) | beta_g2 (128) | gamma_g2 (128) |
// delta_g2 (128) | point count (4).
const VerifyingKeyMinLength = G1PointLength + 3*G2PointLength + 4

var (
	// ErrProofFormat is returned for malformed or truncated proof bytes.
	ErrProofFormat = errors.New("malformed proof binary")
	// ErrKeyFormat is returned for malformed or truncated verifying key bytes.
	ErrKeyFormat = errors.New("malformed verifying key binary")

	errNegativeScalar = errors.New("scalar must be non-negative")
	errScalarOverflow = errors.New("scalar exceeds 32 bytes")
)

// ZKProof is the three-element Groth16 proof.
type ZKProof struct {
	A G1Point
	B G2Point
	C G1Point
}

// VerifyingKey holds the Groth16 public parameters for one circuit. It is
// fixed per deployment and loaded once at startup.
type VerifyingKey struct {
	AlphaG1 G1Point
	BetaG2  G2Point
	GammaG2 G2Point
	DeltaG2 G2Point
	// GammaABCG1[0] is the constant term, GammaABCG1[1:] the per-public-input
	// coefficients, so len(GammaABCG1) == number of public inputs + 1.
	GammaABCG1 []G1Point
}

// UnmarshalBinary parses the fixed 256-byte proof layout. No on-curve
// validation happens here; invalid points surface later from the curve
// backend.
func (p *ZKProof) UnmarshalBinary(data []byte) error {
	if len(data) != ProofLength {
		return errors.Wrapf(ErrProofFormat, "got %d bytes, want %d", len(data), ProofLength)
	}
	copy(p.A[:], data[0:64])
	copy(p.B[:], data[64:192])
	copy(p.C[:], data[192:256])
	return nil
}

// MarshalBinary serializes the proof into the fixed 256-byte layout.
func (p ZKProof) MarshalBinary() ([]byte, error) {
	out := make([]byte, ProofLength)
	copy(out[0:64], p.A[:])
	copy(out[64:192], p.B[:])
	copy(out[192:256], p.C[:])
	return out, nil
}

// UnmarshalBinary parses the verifying key layout: alpha_g1 | beta_g2 |
// gamma_g2 | delta_g2 | count (u32 big-endian) | count * G1Point.
func (vk *VerifyingKey) UnmarshalBinary(data []byte) error {
	if len(data) < VerifyingKeyMinLength {
		return errors.Wrapf(ErrKeyFormat, "got %d bytes, want at least %d", len(data), VerifyingKeyMinLength)
	}
	offset := 0
	copy(vk.AlphaG1[:], data[offset:offset+G1PointLength])
	offset += G1PointLength
	copy(vk.BetaG2[:], data[offset:offset+G2PointLength])
	offset += G2PointLength
	copy(vk.GammaG2[:], data[offset:offset+G2PointLength])
	offset += G2PointLength
	copy(vk.DeltaG2[:], data[offset:offset+G2PointLength])
	offset += G2PointLength

	count := int(binary.BigEndian.Uint32(data[offset : offset+4]))
	offset += 4
	if len(data) < offset+count*G1PointLength {
		return errors.Wrapf(ErrKeyFormat, "declared %d points, only %d bytes remain", count, len(data)-offset)
	}

	vk.GammaABCG1 = make([]G1Point, count)
	for i := 0; i < count; i++ {
		copy(vk.GammaABCG1[i][:], data[offset:offset+G1PointLength])
		offset += G1PointLength
	}
	return nil
}

// MarshalBinary serializes the verifying key into the wire layout parsed by
// UnmarshalBinary.
func (vk VerifyingKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, VerifyingKeyMinLength+len(vk.GammaABCG1)*G1PointLength)
	out = append(out, vk.AlphaG1[:]...)
	out = append(out, vk.BetaG2[:]...)
	out = append(out, vk.GammaG2[:]...)
	out = append(out, vk.DeltaG2[:]...)
	var count [4]byte
	binary.BigEndian.PutUint32(count[:], uint32(len(vk.GammaABCG1)))
	out = append(out, count[:]...)
	for _, p := range vk.GammaABCG1 {
		out = append(out, p[:]...)
	}
	return out, nil
}
