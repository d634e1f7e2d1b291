package form

import (
	"math/big"

	"github.com/pkg/errors"

	"swapform/internal/amm"
	"swapform/internal/apperrors"
	"swapform/internal/quote"
)

var (
	rateScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	onePercent        = new(big.Int).Exp(big.NewInt(10), big.NewInt(16), nil)
	softWarnThreshold = new(big.Int).Mul(onePercent, big.NewInt(5))
	hardWarnThreshold = new(big.Int).Mul(onePercent, big.NewInt(20))
)

// WarnLevel grades the bridging-rate deviation from the market rate.
type WarnLevel int

const (
	WarnNone WarnLevel = iota
	// WarnSoft flags deviation in [5%, 20%).
	WarnSoft
	// WarnHard flags deviation >= 20% and requires explicit user override.
	WarnHard
)

// ValidationInput gathers everything the go/no-go decision needs. Balance,
// allowance, market rate and recipient status come from external providers.
type ValidationInput struct {
	RawAmount   string
	Decimals    uint8
	Independent quote.Side

	Dependent   *big.Int
	SlippageBps uint32
	QuoteErr    error

	Balance   *big.Int
	Allowance *big.Int

	BridgeLegIn  *big.Int
	BridgeLegOut *big.Int
	// MarketRate is the externally observed bridge-leg rate, scaled by 1e18.
	MarketRate *big.Int
	// RateToleranceBps absorbs integer quantization before warning tiers.
	RateToleranceBps uint32

	RequireRecipient bool
	RecipientErr     error
}

// Result is the assembled validity decision.
type Result struct {
	// Amount is the parsed independent amount, nil when parsing failed.
	Amount *big.Int
	// FieldErr is the error attached to the input side, if any.
	FieldErr error
	// Deviation is the tolerance-adjusted bridging-rate deviation, 1e18 scale.
	Deviation *big.Int
	Warn      WarnLevel
	Valid     bool
}

// Validate combines the parsed independent amount, external balances and the
// market-rate deviation into a submission decision.
func Validate(in ValidationInput) Result {
	var res Result

	amount, parseErr := amm.ParseAmount(in.RawAmount, in.Decimals)
	if parseErr == nil {
		res.Amount = amount
	}

	res.FieldErr = firstError(
		parseErr,
		in.QuoteErr,
		spendError(in, amount),
	)

	res.Deviation = deviation(in)
	res.Warn = warnLevel(res.Deviation)

	res.Valid = res.FieldErr == nil &&
		res.Amount != nil &&
		rateComputable(in) &&
		(!in.RequireRecipient || in.RecipientErr == nil)
	return res
}

// spendError checks balance and allowance against the worst-case spend. When
// the user fixed the output amount, the spend is the computed input's
// slippage maximum, since that is what execution may actually take.
func spendError(in ValidationInput, amount *big.Int) error {
	spend := amount
	if in.Independent == quote.SideOutput {
		bounds, ok := amm.SlippageBounds(in.Dependent, in.SlippageBps)
		if !ok {
			return nil // no quote yet; the missing-rate gate handles it
		}
		spend = bounds.Max
	}
	if spend == nil {
		return nil
	}
	if in.Balance != nil && in.Balance.Cmp(spend) < 0 {
		return errors.Wrap(apperrors.ErrInsufficientBalance, "worst-case spend exceeds balance")
	}
	if in.Allowance != nil && in.Allowance.Cmp(spend) < 0 {
		return errors.Wrap(apperrors.ErrInsufficientAllowance, "worst-case spend exceeds allowance")
	}
	return nil
}

// rateComputable reports whether an exchange rate can be shown at all.
func rateComputable(in ValidationInput) bool {
	return in.Dependent != nil && in.Dependent.Sign() > 0 && in.QuoteErr == nil
}

// deviation computes |bridgingRate - marketRate| * 1e18 / marketRate with the
// configured flat tolerance subtracted, floored at zero. Returns nil when
// either rate is unavailable.
func deviation(in ValidationInput) *big.Int {
	if in.BridgeLegIn == nil || in.BridgeLegOut == nil || in.BridgeLegIn.Sign() <= 0 {
		return nil
	}
	if in.MarketRate == nil || in.MarketRate.Sign() <= 0 {
		return nil
	}

	bridgingRate := new(big.Int).Mul(in.BridgeLegOut, rateScale)
	bridgingRate.Quo(bridgingRate, in.BridgeLegIn)

	diff := new(big.Int).Sub(bridgingRate, in.MarketRate)
	diff.Abs(diff)
	diff.Mul(diff, rateScale)
	diff.Quo(diff, in.MarketRate)

	// Flat rounding tolerance, applied regardless of trade size.
	tolerance := new(big.Int).Mul(rateScale, big.NewInt(int64(in.RateToleranceBps)))
	tolerance.Quo(tolerance, big.NewInt(10000))
	diff.Sub(diff, tolerance)
	if diff.Sign() < 0 {
		diff.SetInt64(0)
	}
	return diff
}

func warnLevel(dev *big.Int) WarnLevel {
	if dev == nil {
		return WarnNone
	}
	switch {
	case dev.Cmp(hardWarnThreshold) >= 0:
		return WarnHard
	case dev.Cmp(softWarnThreshold) >= 0:
		return WarnSoft
	default:
		return WarnNone
	}
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
