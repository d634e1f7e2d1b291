// Package pricefeed is the HTTP client for the external price-quote
// collaborator handling legs that do not touch the native/bridge pool.
// It implements quote.PriceFeed.
package pricefeed

import (
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"swapform/internal/apperrors"
	"swapform/internal/asset"
)

const (
	modeExactIn  = "exact_in"
	modeExactOut = "exact_out"

	maxResponseBytes = 1 << 16
)

type quoteResponse struct {
	Amount string `json:"amount"`
	Error  string `json:"error,omitempty"`
}

// Client queries the collaborator's /quote endpoint.
type Client struct {
	base *url.URL
	http *http.Client
}

// NewClient creates a price feed client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "url.Parse")
	}
	return &Client{
		base: u,
		http: &http.Client{Timeout: timeout},
	}, nil
}

// QuoteForward asks for the output amount of an exact-input trade.
func (c *Client) QuoteForward(ctx context.Context, in asset.Ref, amountIn *big.Int, out asset.Ref) (*big.Int, error) {
	return c.quote(ctx, in, out, amountIn, modeExactIn)
}

// QuoteInverse asks for the input amount of an exact-output trade.
func (c *Client) QuoteInverse(ctx context.Context, in, out asset.Ref, amountOut *big.Int) (*big.Int, error) {
	return c.quote(ctx, in, out, amountOut, modeExactOut)
}

func (c *Client) quote(ctx context.Context, in, out asset.Ref, amount *big.Int, mode string) (*big.Int, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "amount must be positive")
	}

	u := *c.base
	u.Path, _ = url.JoinPath(u.Path, "quote")
	q := u.Query()
	q.Set("in", in.Addr.Hex())
	q.Set("out", out.Addr.Hex())
	q.Set("amount", amount.String())
	q.Set("mode", mode)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "http.NewRequestWithContext")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "c.http.Do")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "io.ReadAll")
	}

	var parsed quoteResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrapf(err, "json.Unmarshal (status %d)", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != "" {
			return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, parsed.Error)
		}
		return nil, errors.Errorf("quote endpoint returned status %d", resp.StatusCode)
	}

	v, ok := new(big.Int).SetString(parsed.Amount, 10)
	if !ok || v.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "non-positive quote amount")
	}
	return v, nil
}
