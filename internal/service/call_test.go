package service_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"swapform/internal/apperrors"
	"swapform/internal/asset"
	"swapform/internal/quote"
	"swapform/internal/service/dto"
)

var recipient = common.HexToAddress("0xbeefbeefbeefbeefbeefbeefbeefbeefbeefbeef")

func TestSwapCall_NativeExactIn(t *testing.T) {
	t.Parallel()

	svc, meta, reserves, _ := newService(t)
	meta.EXPECT().Lookup(gomock.Any(), nativeAddr).
		Return(asset.Meta{Symbol: "NAT", Decimals: 9}, nil).Times(2)
	meta.EXPECT().Lookup(gomock.Any(), bridgeAddr).
		Return(asset.Meta{Symbol: "BRG", Decimals: 9}, nil).Times(2)
	reserves.EXPECT().Reserves(gomock.Any()).
		Return(quote.Reserves{Native: big.NewInt(1_000_000_000), Bridge: big.NewInt(2_000_000_000)}, nil)

	before := time.Now()
	res, err := svc.SwapCall(context.Background(), dto.CallRequest{
		QuoteRequest: dto.QuoteRequest{
			In:     nativeAddr,
			Out:    bridgeAddr,
			Amount: big.NewInt(1_000_000),
			Side:   quote.SideInput,
		},
		Recipient: recipient,
	})
	require.NoError(t, err)

	require.Equal(t, "1992013", res.Quote.Dependent.String())
	require.Equal(t, "swapExactETHForTokens", res.Call.Method)
	require.Equal(t, "1000000", res.Call.Value.String())

	// amountOutMin is the slippage floor of the quoted output.
	require.Equal(t, big.NewInt(1972093), res.Call.Args[0])
	require.Equal(t, []common.Address{nativeAddr, bridgeAddr}, res.Call.Args[1])
	require.Equal(t, recipient, res.Call.Args[2])

	deadline := time.Unix(res.Call.Deadline.Int64(), 0)
	require.False(t, deadline.Before(before.Add(20*time.Minute).Truncate(time.Second)))
}

func TestSwapCall_TokenExactOut(t *testing.T) {
	t.Parallel()

	svc, meta, reserves, _ := newService(t)
	meta.EXPECT().Lookup(gomock.Any(), bridgeAddr).
		Return(asset.Meta{Symbol: "BRG", Decimals: 9}, nil).Times(2)
	meta.EXPECT().Lookup(gomock.Any(), nativeAddr).
		Return(asset.Meta{Symbol: "NAT", Decimals: 9}, nil).Times(2)
	reserves.EXPECT().Reserves(gomock.Any()).
		Return(quote.Reserves{Native: big.NewInt(1_000_000_000), Bridge: big.NewInt(2_000_000_000)}, nil)

	res, err := svc.SwapCall(context.Background(), dto.CallRequest{
		QuoteRequest: dto.QuoteRequest{
			In:     bridgeAddr,
			Out:    nativeAddr,
			Amount: big.NewInt(500_000),
			Side:   quote.SideOutput,
		},
		Recipient: recipient,
	})
	require.NoError(t, err)

	require.Equal(t, "swapTokensForExactETH", res.Call.Method)
	require.Nil(t, res.Call.Value)

	// Exact-out token spends lead with the fixed output and its input cap.
	require.Equal(t, big.NewInt(500_000), res.Call.Args[0])
	require.Equal(t, res.Quote.Bounds.Max, res.Call.Args[1])
}

func TestSwapCall_MissingRecipient(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newService(t)
	_, err := svc.SwapCall(context.Background(), dto.CallRequest{
		QuoteRequest: dto.QuoteRequest{
			In:     nativeAddr,
			Out:    bridgeAddr,
			Amount: big.NewInt(1),
			Side:   quote.SideInput,
		},
	})
	require.ErrorIs(t, err, apperrors.ErrRecipientInvalid)
}
