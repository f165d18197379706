// Package zkmint verifies Groth16 zero-knowledge proofs over BN254 and
// gates a one-time mint action on the result, enforcing public-input
// binding, nullifier replay protection and timestamp freshness.
package zkmint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math/big"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/zkmint/go-zkmint/cache"
	"github.com/zkmint/go-zkmint/constants"
	"github.com/zkmint/go-zkmint/loaders"
	"github.com/zkmint/go-zkmint/nullifier"
	"github.com/zkmint/go-zkmint/types"
	"github.com/zkmint/go-zkmint/verification"
)

var (
	// ErrInputCount is returned when the gated path does not receive exactly
	// six public inputs.
	ErrInputCount = errors.New("unexpected number of public inputs")
	// ErrBalanceThreshold is returned when the proof's minimum balance
	// commitment differs from the configured threshold.
	ErrBalanceThreshold = errors.New("proof minimum balance does not match the configured threshold")
	// ErrNullifierUsed is returned on replay of an already-consumed nullifier.
	ErrNullifierUsed = errors.New("nullifier already used")
	// ErrFutureTimestamp is returned when the proof timestamp is ahead of the
	// current time.
	ErrFutureTimestamp = errors.New("proof timestamp is in the future")
	// ErrProofExpired is returned when the proof timestamp is older than the
	// maximum accepted age.
	ErrProofExpired = errors.New("proof timestamp too old")
	// ErrVerificationFailed is returned when the pairing check completed and
	// the proof did not verify.
	ErrVerificationFailed = errors.New("invalid proof")
)

// MintExecutor performs the action gated behind proof verification. It is
// invoked exactly once, after every check has passed and the nullifier has
// been consumed.
type MintExecutor interface {
	Mint(ctx context.Context, recipient common.Address) error
}

// Verifier wraps the Groth16 verification core with the mint security
// policy. The verification itself is a pure function of its arguments;
// the only mutation is consuming a nullifier on a successful mint.
type Verifier struct {
	vk         types.VerifyingKey
	backend    verification.CurveBackend
	nullifiers nullifier.Store
	minter     MintExecutor
	minBalance types.Scalar
	clock      clock.Clock
	results    cache.ICache[bool]
}

// Option defines a functional option for configuring the Verifier.
type Option func(*Verifier)

// WithClock sets the time source used for the freshness check.
func WithClock(c clock.Clock) Option {
	return func(v *Verifier) {
		v.clock = c
	}
}

// WithResultCache sets a custom verification result cache.
func WithResultCache(c cache.ICache[bool]) Option {
	return func(v *Verifier) {
		v.results = c
	}
}

// WithResultCacheDisabled disables memoization of verification results.
func WithResultCacheDisabled() Option {
	return func(v *Verifier) {
		v.results = nil
	}
}

// NewVerifier loads the verifying key and assembles a verifier around the
// injected collaborators. The key is parsed once and treated as immutable
// for the verifier's lifetime.
func NewVerifier(
	keyLoader loaders.VerificationKeyLoader,
	backend verification.CurveBackend,
	store nullifier.Store,
	minter MintExecutor,
	minBalance *big.Int,
	opts ...Option,
) (*Verifier, error) {
	keyBytes, err := keyLoader.Load()
	if err != nil {
		return nil, err
	}
	var vk types.VerifyingKey
	if err := vk.UnmarshalBinary(keyBytes); err != nil {
		return nil, err
	}
	threshold, err := types.NewScalar(minBalance)
	if err != nil {
		return nil, errors.Wrap(err, "minimum balance threshold")
	}

	v := &Verifier{
		vk:         vk,
		backend:    backend,
		nullifiers: store,
		minter:     minter,
		minBalance: threshold,
		clock:      clock.New(),
		results:    cache.NewInMemoryCache[bool](constants.DefaultResultCacheMaxSize, constants.DefaultResultCacheTTL),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// VerifyProof answers whether proofData is a valid proof against the
// configured key and the given public inputs. It enforces no mint policy
// and performs no state mutation.
func (v *Verifier) VerifyProof(ctx context.Context, proofData []byte, publicInputs []*big.Int) (bool, error) {
	inputs, err := types.NewPublicInputs(publicInputs)
	if err != nil {
		return false, err
	}
	return v.verify(ctx, proofData, inputs)
}

// Mint runs the gated mint path: exactly six public inputs in the fixed
// order, threshold binding, nullifier replay protection, timestamp
// freshness, then full proof verification. Only after all checks pass is
// the nullifier consumed and the mint executed; no state is touched on any
// failure.
func (v *Verifier) Mint(ctx context.Context, to common.Address, proofData []byte, publicInputs []*big.Int) error {
	if len(publicInputs) != types.NumPublicInputs {
		return errors.Wrapf(ErrInputCount, "got %d, want %d", len(publicInputs), types.NumPublicInputs)
	}
	inputs, err := types.NewPublicInputs(publicInputs)
	if err != nil {
		return err
	}

	// Cheapest checks first. The threshold comparison stops clients from
	// proving against a self-chosen weaker minimum.
	if inputs.MinBalance() != v.minBalance {
		return errors.Wrapf(ErrBalanceThreshold,
			"proof committed to %s, contract requires %s",
			inputs.MinBalance().BigInt(), v.minBalance.BigInt())
	}

	used, err := v.nullifiers.Contains(ctx, inputs.Nullifier())
	if err != nil {
		return errors.Wrap(err, "nullifier lookup")
	}
	if used {
		return ErrNullifierUsed
	}

	if err := v.checkFreshness(inputs.Timestamp()); err != nil {
		return err
	}

	// The nullifier and the remaining fields are bound by the proof itself,
	// so the full six-element input vector goes into the pairing check.
	ok, err := v.verify(ctx, proofData, inputs)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVerificationFailed
	}

	if err := v.nullifiers.Insert(ctx, inputs.Nullifier()); err != nil {
		return errors.Wrap(err, "nullifier insert")
	}
	return v.minter.Mint(ctx, to)
}

// MaxProofAge returns the inclusive freshness bound in seconds.
func (v *Verifier) MaxProofAge() int64 {
	return constants.MaxProofAge
}

// MinBalanceThreshold returns the configured minimum balance commitment.
func (v *Verifier) MinBalanceThreshold() *big.Int {
	return v.minBalance.BigInt()
}

func (v *Verifier) checkFreshness(timestamp types.Scalar) error {
	now := big.NewInt(v.clock.Now().Unix())
	ts := timestamp.BigInt()
	if now.Cmp(ts) < 0 {
		return errors.Wrapf(ErrFutureTimestamp, "timestamp %s, current time %s", ts, now)
	}
	age := new(big.Int).Sub(now, ts)
	if age.Cmp(big.NewInt(constants.MaxProofAge)) > 0 {
		return errors.Wrapf(ErrProofExpired, "age %s exceeds maximum %d", age, constants.MaxProofAge)
	}
	return nil
}

// verify parses the proof and runs the pairing check, memoizing the result
// when a cache is configured. Verification is deterministic in the proof
// bytes and inputs, so memoization never changes an outcome.
func (v *Verifier) verify(ctx context.Context, proofData []byte, inputs types.PublicInputs) (bool, error) {
	var proof types.ZKProof
	if err := proof.UnmarshalBinary(proofData); err != nil {
		return false, err
	}

	key := resultCacheKey(proofData, inputs)
	if v.results != nil {
		if ok, hit := v.results.Get(key); hit {
			return ok, nil
		}
	}

	ok, err := verification.VerifyGroth16(ctx, v.backend, proof, v.vk, inputs)
	if err != nil {
		return false, err
	}
	if v.results != nil {
		v.results.Set(key, ok)
	}
	return ok, nil
}

func resultCacheKey(proofData []byte, inputs types.PublicInputs) string {
	h := sha256.New()
	h.Write(proofData)
	for _, input := range inputs {
		h.Write(input[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}
