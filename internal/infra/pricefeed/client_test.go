package pricefeed

import (
	"context"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"swapform/internal/apperrors"
	"swapform/internal/asset"
)

var (
	inRef  = asset.Ref{Addr: common.HexToAddress("0xaa"), Decimals: 6}
	outRef = asset.Ref{Addr: common.HexToAddress("0xbb"), Decimals: 8}
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, time.Second)
	require.NoError(t, err)
	return c
}

func TestQuoteForward(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/quote", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, inRef.Addr.Hex(), q.Get("in"))
		require.Equal(t, outRef.Addr.Hex(), q.Get("out"))
		require.Equal(t, "1000", q.Get("amount"))
		require.Equal(t, "exact_in", q.Get("mode"))

		_, _ = w.Write([]byte(`{"amount":"987"}`))
	})

	v, err := c.QuoteForward(context.Background(), inRef, big.NewInt(1000), outRef)
	require.NoError(t, err)
	require.Equal(t, "987", v.String())
}

func TestQuoteInverse(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "exact_out", r.URL.Query().Get("mode"))
		_, _ = w.Write([]byte(`{"amount":"1013"}`))
	})

	v, err := c.QuoteInverse(context.Background(), inRef, outRef, big.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, "1013", v.String())
}

func TestQuote_LiquidityError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"amount":"0","error":"insufficient liquidity"}`))
	})

	_, err := c.QuoteForward(context.Background(), inRef, big.NewInt(1000), outRef)
	require.True(t, errors.Is(err, apperrors.ErrInsufficientLiquidity))
}

func TestQuote_NonPositiveAmount(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"amount":"0"}`))
	})

	_, err := c.QuoteForward(context.Background(), inRef, big.NewInt(1000), outRef)
	require.True(t, errors.Is(err, apperrors.ErrInsufficientLiquidity))
}

func TestQuote_RejectsZeroInput(t *testing.T) {
	t.Parallel()

	c, err := NewClient("http://localhost:0", time.Second)
	require.NoError(t, err)

	_, err = c.QuoteForward(context.Background(), inRef, big.NewInt(0), outRef)
	require.True(t, errors.Is(err, apperrors.ErrInvalidArgument))
}
