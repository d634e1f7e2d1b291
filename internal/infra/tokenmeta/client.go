// Package tokenmeta resolves display symbols and decimal precision for
// assets over Ethereum RPC, with an in-memory cache. It implements
// service.Metadata.
package tokenmeta

import (
	"context"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"

	"swapform/internal/asset"
)

const erc20ABIJSON = `[
	{"inputs":[],"name":"symbol","outputs":[{"internalType":"string","name":"","type":"string"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"decimals","outputs":[{"internalType":"uint8","name":"","type":"uint8"}],"stateMutability":"view","type":"function"}
]`

// EthCaller represents interface for calling contracts.
type EthCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Client looks up ERC20 metadata and caches it for the process lifetime.
// Token symbol and decimals never change on chain, so entries are not evicted.
type Client struct {
	caller   EthCaller
	erc20ABI abi.ABI

	callTimeout time.Duration

	mu    sync.RWMutex
	cache map[common.Address]asset.Meta
}

// NewClient dials the RPC endpoint. The seed map pre-populates known assets
// so they never hit the network; the native pseudo-address belongs there.
func NewClient(rpcURL string, seed map[common.Address]asset.Meta, callTimeout time.Duration) (*Client, error) {
	caller, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, errors.Wrap(err, "ethclient.Dial")
	}
	return newClientWithCaller(caller, seed, callTimeout)
}

func newClientWithCaller(caller EthCaller, seed map[common.Address]asset.Meta, callTimeout time.Duration) (*Client, error) {
	erc20ABI, err := abi.JSON(strings.NewReader(erc20ABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON")
	}

	cache := make(map[common.Address]asset.Meta, len(seed))
	for addr, meta := range seed {
		cache[addr] = meta
	}

	return &Client{
		caller:      caller,
		erc20ABI:    erc20ABI,
		callTimeout: callTimeout,
		cache:       cache,
	}, nil
}

// Lookup returns the asset's symbol and decimals, fetching and caching them
// on first use.
func (c *Client) Lookup(ctx context.Context, addr common.Address) (asset.Meta, error) {
	c.mu.RLock()
	meta, ok := c.cache[addr]
	c.mu.RUnlock()
	if ok {
		return meta, nil
	}

	ctxCall, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	symbol, err := c.fetchSymbol(ctxCall, addr)
	if err != nil {
		return asset.Meta{}, err
	}
	decimals, err := c.fetchDecimals(ctxCall, addr)
	if err != nil {
		return asset.Meta{}, err
	}

	meta = asset.Meta{Symbol: symbol, Decimals: decimals}

	c.mu.Lock()
	c.cache[addr] = meta
	c.mu.Unlock()
	return meta, nil
}

func (c *Client) fetchSymbol(ctx context.Context, addr common.Address) (string, error) {
	out, err := c.call(ctx, addr, "symbol")
	if err != nil {
		return "", err
	}
	symbol, ok := out[0].(string)
	if !ok {
		return "", errors.New("failed to cast symbol result to string")
	}
	return symbol, nil
}

func (c *Client) fetchDecimals(ctx context.Context, addr common.Address) (uint8, error) {
	out, err := c.call(ctx, addr, "decimals")
	if err != nil {
		return 0, err
	}
	decimals, ok := out[0].(uint8)
	if !ok {
		return 0, errors.New("failed to cast decimals result to uint8")
	}
	return decimals, nil
}

func (c *Client) call(ctx context.Context, addr common.Address, method string) ([]interface{}, error) {
	data, err := c.erc20ABI.Pack(method)
	if err != nil {
		return nil, errors.Wrap(err, "c.erc20ABI.Pack")
	}

	res, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &addr, Data: data}, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to call %s on %s", method, addr.Hex())
	}

	out, err := c.erc20ABI.Unpack(method, res)
	if err != nil {
		return nil, errors.Wrap(err, "c.erc20ABI.Unpack")
	}
	if len(out) == 0 {
		return nil, errors.Errorf("empty output from %s call", method)
	}
	return out, nil
}
