package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"swapform/internal/apperrors"
	"swapform/internal/transport/http/validate"
)

func TestQuoteParams(t *testing.T) {
	t.Parallel()

	const (
		inAddr  = "0x1111111111111111111111111111111111111111"
		outAddr = "0x2222222222222222222222222222222222222222"
	)

	tests := []struct {
		name    string
		in      string
		out     string
		amount  string
		side    string
		want    string
		wantErr error
	}{
		{
			name:   "ok input side",
			in:     inAddr,
			out:    outAddr,
			amount: "1000000",
			side:   "input",
			want:   "1000000",
		},
		{
			name:   "ok output side",
			in:     inAddr,
			out:    outAddr,
			amount: "42",
			side:   "output",
			want:   "42",
		},
		{
			name:    "bad in address",
			in:      "nope",
			out:     outAddr,
			amount:  "1",
			side:    "input",
			wantErr: apperrors.ErrInvalidArgument,
		},
		{
			name:    "bad out address",
			in:      inAddr,
			out:     "0x123",
			amount:  "1",
			side:    "input",
			wantErr: apperrors.ErrInvalidArgument,
		},
		{
			name:    "bad side",
			in:      inAddr,
			out:     outAddr,
			amount:  "1",
			side:    "both",
			wantErr: apperrors.ErrInvalidArgument,
		},
		{
			name:    "negative amount",
			in:      inAddr,
			out:     outAddr,
			amount:  "-5",
			side:    "input",
			wantErr: apperrors.ErrAmountInvalid,
		},
		{
			name:    "zero amount",
			in:      inAddr,
			out:     outAddr,
			amount:  "0",
			side:    "input",
			wantErr: apperrors.ErrAmountInvalid,
		},
		{
			name:    "non-numeric amount",
			in:      inAddr,
			out:     outAddr,
			amount:  "1.5",
			side:    "input",
			wantErr: apperrors.ErrAmountInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := validate.QuoteParams(tt.in, tt.out, tt.amount, tt.side)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
		})
	}
}
