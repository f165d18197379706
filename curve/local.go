package curve

import (
	"context"
	"math/big"

	bn256 "github.com/ethereum/go-ethereum/crypto/bn256/cloudflare"
	"github.com/pkg/errors"
	"github.com/zkmint/go-zkmint/types"
)

// LocalEngine is an in-process reference engine implementing the same byte
// protocol as the delegated precompiles, backed by the bn256 cloudflare
// implementation. It is deterministic and environment-free, which makes it
// the engine of choice for tests and offline verification.
type LocalEngine struct{}

// Call executes a single curve operation on the local implementation.
func (LocalEngine) Call(_ context.Context, op Operation, input []byte) ([]byte, error) {
	switch op {
	case OpAdd:
		return localAdd(input)
	case OpScalarMul:
		return localScalarMul(input)
	case OpPairingCheck:
		return localPairingCheck(input)
	default:
		return nil, errors.Errorf("unknown curve operation %#x", byte(op))
	}
}

func localAdd(input []byte) ([]byte, error) {
	if len(input) != 2*types.G1PointLength {
		return nil, errors.Errorf("ec add input is %d bytes, want %d", len(input), 2*types.G1PointLength)
	}
	a := new(bn256.G1)
	if _, err := a.Unmarshal(input[0:64]); err != nil {
		return nil, errors.Wrap(err, "ec add first operand")
	}
	b := new(bn256.G1)
	if _, err := b.Unmarshal(input[64:128]); err != nil {
		return nil, errors.Wrap(err, "ec add second operand")
	}
	return new(bn256.G1).Add(a, b).Marshal(), nil
}

func localScalarMul(input []byte) ([]byte, error) {
	if len(input) != types.G1PointLength+types.ScalarLength {
		return nil, errors.Errorf("ec mul input is %d bytes, want %d", len(input), types.G1PointLength+types.ScalarLength)
	}
	p := new(bn256.G1)
	if _, err := p.Unmarshal(input[0:64]); err != nil {
		return nil, errors.Wrap(err, "ec mul point")
	}
	k := new(big.Int).SetBytes(input[64:96])
	return new(bn256.G1).ScalarMult(p, k).Marshal(), nil
}

func localPairingCheck(input []byte) ([]byte, error) {
	pairSize := types.G1PointLength + types.G2PointLength
	if len(input) == 0 || len(input)%pairSize != 0 {
		return nil, errors.Errorf("pairing input is %d bytes, want a multiple of %d", len(input), pairSize)
	}
	n := len(input) / pairSize
	g1s := make([]*bn256.G1, n)
	g2s := make([]*bn256.G2, n)
	for i := 0; i < n; i++ {
		offset := i * pairSize
		g1s[i] = new(bn256.G1)
		if _, err := g1s[i].Unmarshal(input[offset : offset+64]); err != nil {
			return nil, errors.Wrapf(err, "pairing pair %d G1", i)
		}
		g2s[i] = new(bn256.G2)
		if _, err := g2s[i].Unmarshal(input[offset+64 : offset+192]); err != nil {
			return nil, errors.Wrapf(err, "pairing pair %d G2", i)
		}
	}
	out := make([]byte, 32)
	if bn256.PairingCheck(g1s, g2s) {
		out[31] = 1
	}
	return out, nil
}
