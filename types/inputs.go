package types

import "math/big"

// Positions of the gated-mint public inputs. The order is a wire contract
// with the proof-generating client and must match the circuit's public
// signal layout exactly.
const (
	InputNullifier = iota
	InputMinBalance
	InputTokenContractHash
	InputUserAddressHash
	InputTimestamp
	InputOracleCommitment

	NumPublicInputs = 6
)

// PublicInputs is an ordered sequence of public signal scalars. The named
// accessors assume the fixed six-element mint layout; callers enforce the
// length before using them.
type PublicInputs []Scalar

// NewPublicInputs converts big-integer public signals into scalars,
// preserving order.
func NewPublicInputs(values []*big.Int) (PublicInputs, error) {
	inputs := make(PublicInputs, len(values))
	for i, v := range values {
		s, err := NewScalar(v)
		if err != nil {
			return nil, err
		}
		inputs[i] = s
	}
	return inputs, nil
}

// Nullifier returns the one-time-use replay protection value.
func (p PublicInputs) Nullifier() Scalar {
	return p[InputNullifier]
}

// MinBalance returns the minimum-balance commitment the proof was
// generated against.
func (p PublicInputs) MinBalance() Scalar {
	return p[InputMinBalance]
}

// Timestamp returns the proof generation timestamp.
func (p PublicInputs) Timestamp() Scalar {
	return p[InputTimestamp]
}
