// Package verification implements the Groth16 verification equation over
// BN254 on top of a curve arithmetic backend.
package verification

import (
	"context"

	"github.com/pkg/errors"
	"github.com/zkmint/go-zkmint/types"
)

// ErrWrongInputCount is returned when the number of public inputs does not
// match the verifying key's coefficient count.
var ErrWrongInputCount = errors.New("wrong number of public inputs")

// CurveBackend is the set of BN254 group operations the verifier needs.
// Neg is pure; the other operations may delegate to an external engine.
type CurveBackend interface {
	Add(ctx context.Context, p, q types.G1Point) (types.G1Point, error)
	ScalarMul(ctx context.Context, s types.Scalar, p types.G1Point) (types.G1Point, error)
	Neg(p types.G1Point) types.G1Point
	PairingCheck(ctx context.Context, pairs []types.Pair) (bool, error)
}

// VerifyGroth16 checks the Groth16 verification equation
//
//	e(A, B) * e(-alpha, beta) * e(-vk_x, gamma) * e(-C, delta) == 1
//
// where vk_x is the linear combination of the public inputs over the
// verifying key's gamma_abc coefficients. A completed check that does not
// hold returns (false, nil); only backend faults return an error.
func VerifyGroth16(ctx context.Context, backend CurveBackend, proof types.ZKProof, vk types.VerifyingKey, inputs []types.Scalar) (bool, error) {
	if len(inputs)+1 != len(vk.GammaABCG1) {
		return false, errors.Wrapf(ErrWrongInputCount, "got %d inputs for %d key coefficients", len(inputs), len(vk.GammaABCG1))
	}

	// vk_x = gamma_abc[0] + sum(inputs[i] * gamma_abc[i+1])
	vkX := vk.GammaABCG1[0]
	for i, input := range inputs {
		term, err := backend.ScalarMul(ctx, input, vk.GammaABCG1[i+1])
		if err != nil {
			return false, err
		}
		vkX, err = backend.Add(ctx, vkX, term)
		if err != nil {
			return false, err
		}
	}

	pairs := []types.Pair{
		{G1: proof.A, G2: proof.B},
		{G1: backend.Neg(vk.AlphaG1), G2: vk.BetaG2},
		{G1: backend.Neg(vkX), G2: vk.GammaG2},
		{G1: backend.Neg(proof.C), G2: vk.DeltaG2},
	}
	return backend.PairingCheck(ctx, pairs)
}
