package types

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZKProofUnmarshalBinary(t *testing.T) {
	data := make([]byte, ProofLength)
	for i := range data {
		data[i] = byte(i)
	}

	var proof ZKProof
	require.NoError(t, proof.UnmarshalBinary(data))

	assert.Equal(t, data[0:64], proof.A[:])
	assert.Equal(t, data[64:192], proof.B[:])
	assert.Equal(t, data[192:256], proof.C[:])

	roundTrip, err := proof.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, data, roundTrip)
}

func TestZKProofUnmarshalBinaryWrongLength(t *testing.T) {
	for _, n := range []int{0, 1, 255, 257, 512} {
		var proof ZKProof
		err := proof.UnmarshalBinary(make([]byte, n))
		require.Error(t, err, "length %d", n)
		assert.True(t, errors.Is(err, ErrProofFormat))
	}
}

func TestVerifyingKeyUnmarshalBinary(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{name: "no public input coefficients", count: 0},
		{name: "single coefficient", count: 1},
		{name: "six coefficients", count: 6},
		{name: "six inputs plus constant", count: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vk := VerifyingKey{GammaABCG1: make([]G1Point, tt.count)}
			vk.AlphaG1[0] = 0xa1
			vk.BetaG2[0] = 0xb2
			vk.GammaG2[0] = 0xc2
			vk.DeltaG2[0] = 0xd2
			for i := range vk.GammaABCG1 {
				vk.GammaABCG1[i][0] = byte(i + 1)
			}

			data, err := vk.MarshalBinary()
			require.NoError(t, err)
			require.Len(t, data, VerifyingKeyMinLength+tt.count*G1PointLength)

			var parsed VerifyingKey
			require.NoError(t, parsed.UnmarshalBinary(data))
			assert.Equal(t, vk.AlphaG1, parsed.AlphaG1)
			assert.Equal(t, vk.BetaG2, parsed.BetaG2)
			assert.Equal(t, vk.GammaG2, parsed.GammaG2)
			assert.Equal(t, vk.DeltaG2, parsed.DeltaG2)
			if tt.count == 0 {
				assert.Empty(t, parsed.GammaABCG1)
			} else {
				assert.Equal(t, vk.GammaABCG1, parsed.GammaABCG1)
			}
		})
	}
}

func TestVerifyingKeyUnmarshalBinaryTruncated(t *testing.T) {
	var vk VerifyingKey

	err := vk.UnmarshalBinary(make([]byte, VerifyingKeyMinLength-1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrKeyFormat))

	// count declares two points but only one is present
	full := VerifyingKey{GammaABCG1: make([]G1Point, 2)}
	data, err := full.MarshalBinary()
	require.NoError(t, err)
	err = vk.UnmarshalBinary(data[:len(data)-G1PointLength])
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrKeyFormat))
}
