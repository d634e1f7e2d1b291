package amm

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"swapform/internal/apperrors"
)

// MaxAmount is the ceiling for every amount in the system: 2^112 - 1, the
// largest value a V2-style pair reserve slot can hold.
var MaxAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 112), big.NewInt(1))

// InRange reports whether 0 < v <= MaxAmount.
func InRange(v *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(MaxAmount) <= 0
}

// ParseAmount converts user-entered decimal text into an exact integer scaled
// by the asset's decimals. It rejects malformed input, negatives, fractional
// parts finer than the asset supports, and values outside (0, MaxAmount).
func ParseAmount(raw string, decimals uint8) (*big.Int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "-") || strings.HasPrefix(raw, "+") {
		return nil, errors.Wrap(apperrors.ErrAmountInvalid, "empty or signed input")
	}

	whole, frac := raw, ""
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		whole, frac = raw[:i], raw[i+1:]
	}
	if whole == "" && frac == "" {
		return nil, errors.Wrap(apperrors.ErrAmountInvalid, "no digits")
	}
	if len(frac) > int(decimals) {
		return nil, errors.Wrapf(apperrors.ErrAmountInvalid, "more than %d fractional digits", decimals)
	}

	// Scale by padding the fractional part out to the asset's precision.
	padded := whole + frac + strings.Repeat("0", int(decimals)-len(frac))
	v, ok := new(big.Int).SetString(padded, 10)
	if !ok {
		return nil, errors.Wrap(apperrors.ErrAmountInvalid, "not a decimal number")
	}
	if !InRange(v) {
		return nil, errors.Wrap(apperrors.ErrAmountInvalid, "out of range")
	}
	return v, nil
}

// FormatAmount renders a scaled integer back into decimal text, trimming
// trailing fractional zeroes.
func FormatAmount(v *big.Int, decimals uint8) string {
	if v == nil {
		return ""
	}
	s := v.String()
	if decimals == 0 {
		return s
	}
	d := int(decimals)
	if len(s) <= d {
		s = strings.Repeat("0", d-len(s)+1) + s
	}
	whole, frac := s[:len(s)-d], s[len(s)-d:]
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}
