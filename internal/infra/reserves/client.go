// Package reserves reads the native/bridge pool snapshot from a V2-style
// pair contract over Ethereum RPC. It implements quote.ReserveProvider.
package reserves

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
	"go.uber.org/multierr"

	"swapform/internal/apperrors"
	"swapform/internal/asset"
	"swapform/internal/quote"
)

const pairABIJSON = `[
	{"inputs":[],"name":"token0","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"token1","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getReserves","outputs":[{"internalType":"uint112","name":"_reserve0","type":"uint112"},{"internalType":"uint112","name":"_reserve1","type":"uint112"},{"internalType":"uint32","name":"_blockTimestampLast","type":"uint32"}],"stateMutability":"view","type":"function"}
]`

// EthCaller represents interface for calling contracts.
type EthCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Client reads pair state and orients it as (native, bridge) reserves.
type Client struct {
	caller  EthCaller
	pairABI abi.ABI

	pair common.Address
	book asset.Book

	callTimeout time.Duration

	// orientation is resolved once from token0/token1 on first use.
	orientOnce     sync.Once
	orientErr      error
	nativeIsToken0 bool
}

// NewClient dials the RPC endpoint and prepares a reader for the configured
// pair contract.
func NewClient(rpcURL string, pair common.Address, book asset.Book, callTimeout time.Duration) (*Client, error) {
	caller, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, errors.Wrap(err, "ethclient.Dial")
	}
	return newClientWithCaller(caller, pair, book, callTimeout)
}

func newClientWithCaller(caller EthCaller, pair common.Address, book asset.Book, callTimeout time.Duration) (*Client, error) {
	pairABI, err := abi.JSON(strings.NewReader(pairABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON")
	}
	return &Client{
		caller:      caller,
		pairABI:     pairABI,
		pair:        pair,
		book:        book,
		callTimeout: callTimeout,
	}, nil
}

// Reserves returns the current (native, bridge) reserve snapshot.
func (c *Client) Reserves(ctx context.Context) (quote.Reserves, error) {
	if err := c.orient(ctx); err != nil {
		return quote.Reserves{}, errors.Wrap(apperrors.ErrReservesUnavailable, err.Error())
	}

	out, err := c.call(ctx, "getReserves")
	if err != nil {
		return quote.Reserves{}, errors.Wrap(apperrors.ErrReservesUnavailable, err.Error())
	}

	const requiredSize = 2
	if len(out) < requiredSize {
		return quote.Reserves{}, errors.Wrapf(apperrors.ErrReservesUnavailable,
			"insufficient outputs from getReserves call: expected %d, got %d", requiredSize, len(out))
	}

	r0, ok := out[0].(*big.Int)
	if !ok {
		return quote.Reserves{}, errors.Wrap(apperrors.ErrReservesUnavailable, "failed to cast reserve0 to *big.Int")
	}
	r1, ok := out[1].(*big.Int)
	if !ok {
		return quote.Reserves{}, errors.Wrap(apperrors.ErrReservesUnavailable, "failed to cast reserve1 to *big.Int")
	}

	if c.nativeIsToken0 {
		return quote.Reserves{Native: r0, Bridge: r1}, nil
	}
	return quote.Reserves{Native: r1, Bridge: r0}, nil
}

// orient resolves which pair slot holds the native asset by fetching token0
// and token1 concurrently.
func (c *Client) orient(ctx context.Context) error {
	c.orientOnce.Do(func() {
		token0, token1, err := c.pairTokens(ctx)
		if err != nil {
			c.orientErr = err
			return
		}
		switch {
		case token0 == c.book.Native.Addr && token1 == c.book.Bridge.Addr:
			c.nativeIsToken0 = true
		case token0 == c.book.Bridge.Addr && token1 == c.book.Native.Addr:
			c.nativeIsToken0 = false
		default:
			c.orientErr = errors.Errorf("pair %s does not hold the native/bridge assets", c.pair.Hex())
		}
	})
	return c.orientErr
}

func (c *Client) pairTokens(ctx context.Context) (common.Address, common.Address, error) {
	const (
		numTokens    = 2
		token0Method = "token0"
		token1Method = "token1"
	)

	type tokenResult struct {
		token common.Address
		err   error
		name  string
	}

	var wg sync.WaitGroup
	ch := make(chan tokenResult, numTokens)

	getToken := func(method string) {
		defer wg.Done()

		ctxCall, cancel := context.WithTimeout(ctx, c.callTimeout)
		defer cancel()

		out, err := c.call(ctxCall, method)
		if err != nil {
			ch <- tokenResult{err: errors.Wrapf(err, "failed to call %s", method)}
			return
		}

		addr, ok := out[0].(common.Address)
		if !ok {
			ch <- tokenResult{err: errors.Errorf("failed to cast %s result to address", method)}
			return
		}
		ch <- tokenResult{token: addr, name: method}
	}

	wg.Add(numTokens)
	go getToken(token0Method)
	go getToken(token1Method)

	go func() {
		wg.Wait()
		close(ch)
	}()

	var (
		token0, token1 common.Address
		combinedErr    error
	)
	for result := range ch {
		if result.err != nil {
			combinedErr = multierr.Append(combinedErr, result.err)
			continue
		}
		switch result.name {
		case token0Method:
			token0 = result.token
		case token1Method:
			token1 = result.token
		}
	}
	if combinedErr != nil {
		return common.Address{}, common.Address{}, errors.Wrap(combinedErr, "failed to get pair tokens")
	}
	return token0, token1, nil
}

func (c *Client) call(ctx context.Context, method string) ([]interface{}, error) {
	data, err := c.pairABI.Pack(method)
	if err != nil {
		return nil, errors.Wrap(err, "c.pairABI.Pack")
	}

	to := c.pair
	res, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, errors.Wrap(err, "c.caller.CallContract")
	}

	out, err := c.pairABI.Unpack(method, res)
	if err != nil {
		return nil, errors.Wrap(err, "c.pairABI.Unpack")
	}
	return out, nil
}
