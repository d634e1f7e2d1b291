package form_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"swapform/internal/apperrors"
	"swapform/internal/config"
	"swapform/internal/form"
	fmock "swapform/internal/form/mock"
	"swapform/internal/quote"
)

var routerAddr = common.HexToAddress("0x4444444444444444444444444444444444444444")

func checkerEngine() config.Engine {
	return config.Engine{
		SlippageToken:    100,
		SlippageNative:   50,
		RateToleranceBps: 30,
	}
}

func TestChecker_TokenSpend(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	funds := fmock.NewMockBalanceProvider(ctrl)
	checker := form.NewChecker(funds, testBook(), routerAddr, checkerEngine())

	s := form.NewSession(form.Defaults{
		Independent:      quote.SideInput,
		IndependentValue: "0.001",
		Input:            &bridgeRef,
		Output:           &nativeRef,
	}, nil, testBook(), nil)
	s.Dispatch(context.Background(), form.UpdateDependent{Amount: bi("990000")})

	owner := common.HexToAddress("0xbeef")
	funds.EXPECT().Balance(gomock.Any(), owner, bridgeRef).Return(bi("2000000"), nil)
	funds.EXPECT().Allowance(gomock.Any(), owner, routerAddr, bridgeRef).Return(bi("500000"), nil)

	res, err := checker.Check(context.Background(), s, form.CheckInput{Owner: owner})
	require.NoError(t, err)

	// Balance covers the spend of 1000000 but the allowance does not.
	require.ErrorIs(t, res.FieldErr, apperrors.ErrInsufficientAllowance)
	require.False(t, res.Valid)
}

func TestChecker_NativeSpendSkipsAllowance(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	funds := fmock.NewMockBalanceProvider(ctrl)
	checker := form.NewChecker(funds, testBook(), routerAddr, checkerEngine())

	s := form.NewSession(form.Defaults{
		Independent:      quote.SideInput,
		IndependentValue: "0.001",
		Input:            &nativeRef,
		Output:           &bridgeRef,
	}, nil, testBook(), nil)
	s.Dispatch(context.Background(), form.UpdateDependent{Amount: bi("1992013")})

	owner := common.HexToAddress("0xbeef")
	funds.EXPECT().Balance(gomock.Any(), owner, nativeRef).Return(bi("2000000"), nil)

	res, err := checker.Check(context.Background(), s, form.CheckInput{Owner: owner})
	require.NoError(t, err)
	require.NoError(t, res.FieldErr)
	require.True(t, res.Valid)
	require.Equal(t, "1000000", res.Amount.String())
}

func TestChecker_WorstCaseSpendOnOutputIndependent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	funds := fmock.NewMockBalanceProvider(ctrl)
	checker := form.NewChecker(funds, testBook(), routerAddr, checkerEngine())

	// The user fixed the output; the computed input of 1000000 may grow by
	// the 50 bps native slippage, so 1000000 in funds is not enough.
	s := form.NewSession(form.Defaults{
		Independent:      quote.SideOutput,
		IndependentValue: "1.992013",
		Input:            &nativeRef,
		Output:           &otherRef,
	}, nil, testBook(), nil)
	s.Dispatch(context.Background(), form.UpdateDependent{Amount: bi("1000000")})

	owner := common.HexToAddress("0xbeef")
	funds.EXPECT().Balance(gomock.Any(), owner, nativeRef).Return(bi("1000000"), nil)

	res, err := checker.Check(context.Background(), s, form.CheckInput{Owner: owner})
	require.NoError(t, err)
	require.ErrorIs(t, res.FieldErr, apperrors.ErrInsufficientBalance)
	require.False(t, res.Valid)
}

func TestChecker_ProviderFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	funds := fmock.NewMockBalanceProvider(ctrl)
	checker := form.NewChecker(funds, testBook(), routerAddr, checkerEngine())

	s := form.NewSession(form.Defaults{
		Independent:      quote.SideInput,
		IndependentValue: "0.001",
		Input:            &nativeRef,
		Output:           &bridgeRef,
	}, nil, testBook(), nil)

	owner := common.HexToAddress("0xbeef")
	funds.EXPECT().Balance(gomock.Any(), owner, nativeRef).Return(nil, errors.New("rpc down"))

	_, err := checker.Check(context.Background(), s, form.CheckInput{Owner: owner})
	require.Error(t, err)
}
