package verification

import (
	"context"
	"math/big"
	"testing"

	bn256 "github.com/ethereum/go-ethereum/crypto/bn256/cloudflare"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zkmint/go-zkmint/curve"
	"github.com/zkmint/go-zkmint/types"
)

// silentBackend fails the test if any arithmetic is attempted.
type silentBackend struct {
	t *testing.T
}

func (b silentBackend) Add(context.Context, types.G1Point, types.G1Point) (types.G1Point, error) {
	b.t.Fatal("unexpected Add call")
	return types.G1Point{}, nil
}

func (b silentBackend) ScalarMul(context.Context, types.Scalar, types.G1Point) (types.G1Point, error) {
	b.t.Fatal("unexpected ScalarMul call")
	return types.G1Point{}, nil
}

func (b silentBackend) Neg(p types.G1Point) types.G1Point {
	b.t.Fatal("unexpected Neg call")
	return p
}

func (b silentBackend) PairingCheck(context.Context, []types.Pair) (bool, error) {
	b.t.Fatal("unexpected PairingCheck call")
	return false, nil
}

func g1Point(p *bn256.G1) types.G1Point {
	var out types.G1Point
	copy(out[:], p.Marshal())
	return out
}

func g2Point(p *bn256.G2) types.G2Point {
	var out types.G2Point
	copy(out[:], p.Marshal())
	return out
}

// satisfyingInstance builds a verifying key and proof for which the
// verification equation holds over the given inputs. With A = alpha,
// B = beta and gamma = delta = G2, the equation reduces to C = -vk_x,
// which the construction satisfies by picking C accordingly.
func satisfyingInstance(t *testing.T, inputs []*big.Int) (types.ZKProof, types.VerifyingKey) {
	t.Helper()

	alpha := new(bn256.G1).ScalarBaseMult(big.NewInt(777))
	beta := new(bn256.G2).ScalarBaseMult(big.NewInt(999))
	g2 := new(bn256.G2).ScalarBaseMult(big.NewInt(1))

	coeffs := make([]*big.Int, len(inputs)+1)
	gammaABC := make([]types.G1Point, len(inputs)+1)
	for i := range coeffs {
		coeffs[i] = big.NewInt(int64(3*i + 5))
		gammaABC[i] = g1Point(new(bn256.G1).ScalarBaseMult(coeffs[i]))
	}

	vkx := new(big.Int).Set(coeffs[0])
	for i, input := range inputs {
		term := new(big.Int).Mul(input, coeffs[i+1])
		vkx.Add(vkx, term)
	}
	vkx.Mod(vkx, bn256.Order)
	negVkx := new(big.Int).Sub(bn256.Order, vkx)
	c := new(bn256.G1).ScalarBaseMult(negVkx.Mod(negVkx, bn256.Order))

	proof := types.ZKProof{
		A: g1Point(alpha),
		B: g2Point(beta),
		C: g1Point(c),
	}
	vk := types.VerifyingKey{
		AlphaG1:    g1Point(alpha),
		BetaG2:     g2Point(beta),
		GammaG2:    g2Point(g2),
		DeltaG2:    g2Point(g2),
		GammaABCG1: gammaABC,
	}
	return proof, vk
}

func toScalars(t *testing.T, values []*big.Int) []types.Scalar {
	t.Helper()
	scalars, err := types.NewPublicInputs(values)
	require.NoError(t, err)
	return scalars
}

func TestVerifyGroth16WrongInputCount(t *testing.T) {
	vk := types.VerifyingKey{GammaABCG1: make([]types.G1Point, 3)}
	inputs := make([]types.Scalar, 3)

	_, err := VerifyGroth16(context.Background(), silentBackend{t: t}, types.ZKProof{}, vk, inputs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrongInputCount))
}

func TestVerifyGroth16SatisfyingInstance(t *testing.T) {
	inputs := []*big.Int{big.NewInt(41), big.NewInt(1500)}
	proof, vk := satisfyingInstance(t, inputs)
	backend := curve.NewBackend(curve.LocalEngine{})

	ok, err := VerifyGroth16(context.Background(), backend, proof, vk, toScalars(t, inputs))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyGroth16RejectsTamperedInputs(t *testing.T) {
	inputs := []*big.Int{big.NewInt(41), big.NewInt(1500)}
	proof, vk := satisfyingInstance(t, inputs)
	backend := curve.NewBackend(curve.LocalEngine{})
	ctx := context.Background()

	// flipping a single bit of any input must produce false, not an error
	for i := range inputs {
		for _, bit := range []uint{0, 7, 63} {
			tampered := []*big.Int{
				new(big.Int).Set(inputs[0]),
				new(big.Int).Set(inputs[1]),
			}
			tampered[i] = new(big.Int).Xor(tampered[i], new(big.Int).Lsh(big.NewInt(1), bit))

			ok, err := VerifyGroth16(ctx, backend, proof, vk, toScalars(t, tampered))
			require.NoError(t, err, "input %d bit %d", i, bit)
			assert.False(t, ok, "input %d bit %d", i, bit)
		}
	}
}

func TestVerifyGroth16ZeroInputShortCircuits(t *testing.T) {
	// a zero input contributes nothing to vk_x and must not fail
	inputs := []*big.Int{big.NewInt(0), big.NewInt(12)}
	proof, vk := satisfyingInstance(t, inputs)
	backend := curve.NewBackend(curve.LocalEngine{})

	ok, err := VerifyGroth16(context.Background(), backend, proof, vk, toScalars(t, inputs))
	require.NoError(t, err)
	assert.True(t, ok)
}
