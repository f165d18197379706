// Package curve orchestrates BN254 group operations for Groth16
// verification. Point negation is computed locally; addition, scalar
// multiplication and the batched pairing check are delegated to an
// arithmetic engine behind a typed request/response call boundary.
package curve

import "context"

// Operation identifies a curve engine operation. The values match the EVM
// precompile addresses for the corresponding BN254 operations.
type Operation byte

const (
	// OpAdd adds two G1 points: 128-byte request, 64-byte response.
	OpAdd Operation = 0x06
	// OpScalarMul multiplies a G1 point by a scalar: 96-byte request
	// (point then scalar), 64-byte response.
	OpScalarMul Operation = 0x07
	// OpPairingCheck runs a batched pairing check over (G1, G2) pairs:
	// 192 bytes per pair, 32-byte response whose last byte is the boolean.
	OpPairingCheck Operation = 0x08
)

// EngineCaller executes one raw curve operation against an arithmetic
// engine. A call either returns the complete, well-formed response or an
// error; there are no partial results and no internal retries.
type EngineCaller interface {
	Call(ctx context.Context, op Operation, input []byte) ([]byte, error)
}
