package amm

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"swapform/internal/apperrors"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		decimals uint8
		want     string
		wantErr  bool
	}{
		{"integer", "5", 6, "5000000", false},
		{"fractional", "1.5", 6, "1500000", false},
		{"full precision", "0.000001", 6, "1", false},
		{"trims spaces", " 42 ", 0, "42", false},
		{"bare fraction", ".5", 2, "50", false},
		{"zero decimals", "123", 0, "123", false},
		{"empty", "", 6, "", true},
		{"negative", "-1", 6, "", true},
		{"plus sign", "+1", 6, "", true},
		{"too many fractional digits", "0.0000001", 6, "", true},
		{"garbage", "1x2", 6, "", true},
		{"two dots", "1.2.3", 6, "", true},
		{"zero", "0", 6, "", true},
		{"zero point zero", "0.0", 6, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseAmount(tt.raw, tt.decimals)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, apperrors.ErrAmountInvalid))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseAmount_RejectsAboveCeiling(t *testing.T) {
	t.Parallel()

	raw := FormatAmount(MaxAmount, 0) + "0"
	_, err := ParseAmount(raw, 0)
	require.True(t, errors.Is(err, apperrors.ErrAmountInvalid))

	// The ceiling itself is still accepted.
	v, err := ParseAmount(FormatAmount(MaxAmount, 0), 0)
	require.NoError(t, err)
	require.Equal(t, 0, v.Cmp(MaxAmount))
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		decimals uint8
		want     string
	}{
		{"integer", "5000000", 6, "5"},
		{"fractional", "1500000", 6, "1.5"},
		{"sub unit", "1", 6, "0.000001"},
		{"zero decimals", "123", 0, "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, FormatAmount(bi(tt.value), tt.decimals))
		})
	}
}
