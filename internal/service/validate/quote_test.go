package validate

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"swapform/internal/amm"
	"swapform/internal/apperrors"
	"swapform/internal/quote"
	"swapform/internal/service/dto"
)

func TestQuoteRequestValidate(t *testing.T) {
	t.Parallel()

	in := common.HexToAddress("0xaa")
	out := common.HexToAddress("0xbb")

	tests := []struct {
		name    string
		req     dto.QuoteRequest
		wantErr error
	}{
		{"ok", dto.QuoteRequest{In: in, Out: out, Amount: big.NewInt(1), Side: quote.SideInput}, nil},
		{"empty in", dto.QuoteRequest{Out: out, Amount: big.NewInt(1)}, apperrors.ErrInvalidArgument},
		{"empty out", dto.QuoteRequest{In: in, Amount: big.NewInt(1)}, apperrors.ErrInvalidArgument},
		{"same assets", dto.QuoteRequest{In: in, Out: in, Amount: big.NewInt(1)}, apperrors.ErrInvalidArgument},
		{"nil amount", dto.QuoteRequest{In: in, Out: out}, apperrors.ErrAmountInvalid},
		{"zero amount", dto.QuoteRequest{In: in, Out: out, Amount: big.NewInt(0)}, apperrors.ErrAmountInvalid},
		{"negative amount", dto.QuoteRequest{In: in, Out: out, Amount: big.NewInt(-5)}, apperrors.ErrAmountInvalid},
		{"above ceiling", dto.QuoteRequest{In: in, Out: out,
			Amount: new(big.Int).Add(amm.MaxAmount, big.NewInt(1))}, apperrors.ErrAmountInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := QuoteRequestValidate(tt.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
