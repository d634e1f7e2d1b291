package amm

import "math/big"

const bpsDenominator = 10000

// Bounds is the worst-case acceptable window guarding a trade against price
// movement between quote and execution.
type Bounds struct {
	Min *big.Int
	Max *big.Int
}

// SlippageBounds derives the guaranteed [min, max] window around value for an
// allowed deviation in basis points. The minimum is floored at zero and the
// maximum ceilinged at MaxAmount. Returns ok=false when value is absent.
func SlippageBounds(value *big.Int, bps uint32) (Bounds, bool) {
	if value == nil {
		return Bounds{}, false
	}

	offset := new(big.Int).Mul(value, big.NewInt(int64(bps)))
	offset.Quo(offset, big.NewInt(bpsDenominator))

	min := new(big.Int).Sub(value, offset)
	if min.Sign() < 0 {
		min.SetInt64(0)
	}
	max := new(big.Int).Add(value, offset)
	if max.Cmp(MaxAmount) > 0 {
		max.Set(MaxAmount)
	}
	return Bounds{Min: min, Max: max}, true
}
