package amm

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlippageBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   *big.Int
		bps     uint32
		wantMin string
		wantMax string
	}{
		{"one percent", bi("1000000"), 100, "990000", "1010000"},
		{"zero bps", bi("1000000"), 0, "1000000", "1000000"},
		{"full deviation", bi("1000000"), 10000, "0", "2000000"},
		{"rounds offset down", bi("3"), 100, "3", "3"},
		{"zero value", bi("0"), 100, "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, ok := SlippageBounds(tt.value, tt.bps)
			require.True(t, ok)
			require.Equal(t, tt.wantMin, b.Min.String())
			require.Equal(t, tt.wantMax, b.Max.String())

			// Invariant: min <= value <= max within [0, MaxAmount].
			require.LessOrEqual(t, b.Min.Cmp(tt.value), 0)
			require.GreaterOrEqual(t, b.Max.Cmp(tt.value), 0)
			require.GreaterOrEqual(t, b.Min.Sign(), 0)
			require.LessOrEqual(t, b.Max.Cmp(MaxAmount), 0)
		})
	}
}

func TestSlippageBounds_ClampsAtCeiling(t *testing.T) {
	t.Parallel()

	b, ok := SlippageBounds(MaxAmount, 100)
	require.True(t, ok)
	require.Equal(t, 0, b.Max.Cmp(MaxAmount))
	require.Negative(t, b.Min.Cmp(MaxAmount))
}

func TestSlippageBounds_AbsentValue(t *testing.T) {
	t.Parallel()

	_, ok := SlippageBounds(nil, 100)
	require.False(t, ok)
}
