package tokenmeta

import (
	"bytes"
	"context"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"swapform/internal/asset"
	"swapform/internal/infra/tokenmeta/mock"
)

var (
	tokenAddr  = common.HexToAddress("0xaa")
	nativeAddr = common.HexToAddress("0x01")
)

// fakeToken answers symbol/decimals calls with encoded ABI data and records
// how many RPC round trips were made.
func fakeToken(t *testing.T, caller *mock.MockEthCaller, symbol string, decimals uint8, calls *int) {
	t.Helper()

	erc20ABI, err := abi.JSON(strings.NewReader(erc20ABIJSON))
	require.NoError(t, err)

	respond := func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
		*calls++
		for name, m := range erc20ABI.Methods {
			if !bytes.HasPrefix(msg.Data, m.ID) {
				continue
			}
			switch name {
			case "symbol":
				return m.Outputs.Pack(symbol)
			case "decimals":
				return m.Outputs.Pack(decimals)
			}
		}
		return nil, errors.New("unexpected call")
	}

	caller.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(respond).
		AnyTimes()
}

func TestLookup_FetchesAndCaches(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	caller := mock.NewMockEthCaller(ctrl)

	var calls int
	fakeToken(t, caller, "USDT", 6, &calls)

	c, err := newClientWithCaller(caller, nil, time.Second)
	require.NoError(t, err)

	meta, err := c.Lookup(context.Background(), tokenAddr)
	require.NoError(t, err)
	require.Equal(t, asset.Meta{Symbol: "USDT", Decimals: 6}, meta)
	require.Equal(t, 2, calls)

	// Second lookup is served from the cache.
	meta, err = c.Lookup(context.Background(), tokenAddr)
	require.NoError(t, err)
	require.Equal(t, asset.Meta{Symbol: "USDT", Decimals: 6}, meta)
	require.Equal(t, 2, calls)
}

func TestLookup_SeededAssetSkipsNetwork(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	caller := mock.NewMockEthCaller(ctrl)

	seed := map[common.Address]asset.Meta{
		nativeAddr: {Symbol: "ETH", Decimals: 18},
	}
	c, err := newClientWithCaller(caller, seed, time.Second)
	require.NoError(t, err)

	meta, err := c.Lookup(context.Background(), nativeAddr)
	require.NoError(t, err)
	require.Equal(t, asset.Meta{Symbol: "ETH", Decimals: 18}, meta)
}

func TestLookup_RPCError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	caller := mock.NewMockEthCaller(ctrl)
	caller.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, errors.New("rpc down")).
		AnyTimes()

	c, err := newClientWithCaller(caller, nil, time.Second)
	require.NoError(t, err)

	_, err = c.Lookup(context.Background(), tokenAddr)
	require.Error(t, err)
}

func TestNewClient_DialError(t *testing.T) {
	t.Parallel()

	client, err := NewClient("invalid://url", nil, time.Second)
	require.Error(t, err)
	require.Nil(t, client)
}
