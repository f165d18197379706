package curve

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
)

//go:generate mockgen -destination=mock/contractCallerMock.go . ContractCaller

// ContractCaller is the subset of an Ethereum client needed to reach the
// BN254 precompiles. For read operations only.
type ContractCaller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// PrecompileEngine delegates curve operations to the BN254 precompiled
// contracts of a live EVM endpoint. The operation code doubles as the
// precompile address.
type PrecompileEngine struct {
	caller ContractCaller
}

// NewPrecompileEngine creates an engine on top of an existing caller.
func NewPrecompileEngine(caller ContractCaller) *PrecompileEngine {
	return &PrecompileEngine{caller: caller}
}

// NewEthPrecompileEngine dials an RPC endpoint and targets its precompiles.
func NewEthPrecompileEngine(url string) (*PrecompileEngine, error) {
	client, err := ethclient.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("failed to connect to RPC %s", url))
	}
	return &PrecompileEngine{caller: client}, nil
}

// Call issues one eth_call against the precompile address for op.
func (e *PrecompileEngine) Call(ctx context.Context, op Operation, input []byte) ([]byte, error) {
	addr := common.BytesToAddress([]byte{byte(op)})
	out, err := e.caller.CallContract(ctx, ethereum.CallMsg{To: &addr, Data: input}, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "precompile %s call failed", addr.Hex())
	}
	return out, nil
}
