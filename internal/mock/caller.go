package mock

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
)

// ContractCaller mocks contract.Caller.
type ContractCaller struct {
	// CallFunc answers calls. When nil, Outputs are returned in round robin.
	CallFunc func(ethereum.CallMsg) ([]byte, error)
	Outputs  [][]byte
	Err      error

	m     sync.Mutex
	calls []ethereum.CallMsg
}

// CallContract records the call and returns a fake response.
func (c *ContractCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	c.m.Lock()
	i := len(c.calls)
	c.calls = append(c.calls, call)
	c.m.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.CallFunc != nil {
		return c.CallFunc(call)
	}
	if c.Err != nil {
		return nil, c.Err
	}
	if len(c.Outputs) == 0 {
		return nil, nil
	}

	return c.Outputs[i%len(c.Outputs)], nil
}

// Calls returns recorded calls.
func (c *ContractCaller) Calls() []ethereum.CallMsg {
	c.m.Lock()
	defer c.m.Unlock()

	calls := make([]ethereum.CallMsg, len(c.calls))
	copy(calls, c.calls)

	return calls
}
