package curve

import (
	"context"

	"github.com/pkg/errors"
	"github.com/zkmint/go-zkmint/types"
)

// ErrBackend indicates the arithmetic engine failed or returned a
// malformed response. It is distinct from a pairing check that completed
// and legitimately did not hold.
var ErrBackend = errors.New("curve engine failure")

// fpModulus is the BN254 base field prime in big-endian bytes:
// 21888242871839275222246405745257275088696311157297823662689037894645226208583.
var fpModulus = [32]byte{
	0x30, 0x64, 0x4e, 0x72, 0xe1, 0x31, 0xa0, 0x29, 0xb8, 0x50, 0x45, 0xb6, 0x81, 0x81, 0x58, 0x5d,
	0x97, 0x81, 0x6a, 0x91, 0x68, 0x71, 0xca, 0x8d, 0x3c, 0x20, 0x8c, 0x16, 0xd8, 0x7c, 0xfd, 0x47,
}

// Backend performs BN254 group operations through an EngineCaller,
// short-circuiting the identity cases locally before any delegated call.
type Backend struct {
	engine EngineCaller
}

// NewBackend creates a backend on top of the given engine.
func NewBackend(engine EngineCaller) *Backend {
	return &Backend{engine: engine}
}

// Add returns p + q. Adding the identity on either side returns the other
// operand without an engine call.
func (b *Backend) Add(ctx context.Context, p, q types.G1Point) (types.G1Point, error) {
	if p.IsZero() {
		return q, nil
	}
	if q.IsZero() {
		return p, nil
	}
	input := make([]byte, 2*types.G1PointLength)
	copy(input[0:64], p[:])
	copy(input[64:128], q[:])
	return b.callG1(ctx, OpAdd, input)
}

// ScalarMul returns s * p. A zero scalar or identity point yields the
// identity without an engine call.
func (b *Backend) ScalarMul(ctx context.Context, s types.Scalar, p types.G1Point) (types.G1Point, error) {
	if s.IsZero() || p.IsZero() {
		return types.G1Point{}, nil
	}
	input := make([]byte, types.G1PointLength+types.ScalarLength)
	copy(input[0:64], p[:])
	copy(input[64:96], s[:])
	return b.callG1(ctx, OpScalarMul, input)
}

// Neg returns -p, replacing the y coordinate with fieldPrime - y. The
// subtraction runs byte-by-byte in big-endian order with borrow
// propagation, and never touches the engine.
func (b *Backend) Neg(p types.G1Point) types.G1Point {
	if p.IsZero() {
		return p
	}
	neg := p
	borrow := uint16(0)
	for i := types.ScalarLength - 1; i >= 0; i-- {
		m := uint16(fpModulus[i]) - borrow
		y := uint16(p[32+i])
		if m >= y {
			neg[32+i] = byte(m - y)
			borrow = 0
		} else {
			neg[32+i] = byte(256 + m - y)
			borrow = 1
		}
	}
	return neg
}

// PairingCheck reports whether the product of pairings over the given
// pairs equals one. The pairs go out in a single batched request; the
// engine answers with 32 bytes whose last byte encodes the boolean. Any
// other response shape is a backend failure, not a negative result.
func (b *Backend) PairingCheck(ctx context.Context, pairs []types.Pair) (bool, error) {
	input := make([]byte, 0, len(pairs)*(types.G1PointLength+types.G2PointLength))
	for _, pair := range pairs {
		input = append(input, pair.G1[:]...)
		input = append(input, pair.G2[:]...)
	}
	out, err := b.engine.Call(ctx, OpPairingCheck, input)
	if err != nil {
		return false, errors.Wrapf(ErrBackend, "pairing check: %v", err)
	}
	if len(out) != 32 {
		return false, errors.Wrapf(ErrBackend, "pairing check response is %d bytes, want 32", len(out))
	}
	switch out[31] {
	case 1:
		return true, nil
	case 0:
		return false, nil
	default:
		return false, errors.Wrapf(ErrBackend, "pairing check response byte %#x is not a boolean", out[31])
	}
}

func (b *Backend) callG1(ctx context.Context, op Operation, input []byte) (types.G1Point, error) {
	out, err := b.engine.Call(ctx, op, input)
	if err != nil {
		return types.G1Point{}, errors.Wrapf(ErrBackend, "op %#x: %v", byte(op), err)
	}
	if len(out) != types.G1PointLength {
		return types.G1Point{}, errors.Wrapf(ErrBackend, "op %#x response is %d bytes, want %d", byte(op), len(out), types.G1PointLength)
	}
	var p types.G1Point
	copy(p[:], out)
	return p, nil
}
