package amm

import (
	"math/big"
	"sync"

	"github.com/pkg/errors"

	"swapform/internal/apperrors"
	"swapform/internal/config"
)

var one = big.NewInt(1)

type mathTmp struct {
	a *big.Int
	b *big.Int
	c *big.Int
}

// Engine computes constant-product pool quotes with a fixed proportional fee.
// Temporaries are drawn from a pool so hot-path quotes do not allocate.
type Engine struct {
	feeMul *big.Int
	feeDen *big.Int
	pool   *sync.Pool
}

// NewEngine builds an Engine from the configured fee ratio (997/1000 = 0.3%).
func NewEngine(cfg config.Engine) *Engine {
	return &Engine{
		feeMul: big.NewInt(cfg.FeeNumerator),
		feeDen: big.NewInt(cfg.FeeDenominator),
		pool: &sync.Pool{
			New: func() any {
				return &mathTmp{
					a: new(big.Int),
					b: new(big.Int),
					c: new(big.Int),
				}
			},
		},
	}
}

// AmountOut computes the pool output for a given input:
//
//	amountOut = floor(amountIn*997 * reserveOut / (reserveIn*1000 + amountIn*997))
//
// Returns ErrInsufficientLiquidity when either reserve is empty or the input
// is non-positive.
func (e *Engine) AmountOut(amountIn, reserveIn, reserveOut *big.Int) (*big.Int, error) {
	if amountIn == nil || amountIn.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "amountIn must be positive")
	}
	if reserveIn == nil || reserveOut == nil || reserveIn.Sign() <= 0 || reserveOut.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "empty reserves")
	}

	t := e.pool.Get().(*mathTmp)
	defer e.pool.Put(t)

	// ainFee := amountIn * 997
	t.a.Mul(amountIn, e.feeMul)
	// num := ainFee * reserveOut
	t.b.Mul(t.a, reserveOut)
	// den := reserveIn * 1000 + ainFee
	t.c.Mul(reserveIn, e.feeDen)
	t.c.Add(t.c, t.a)

	out := new(big.Int).Quo(t.b, t.c)
	if out.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "quote rounds to zero")
	}
	return out, nil
}

// AmountIn computes the pool input required to receive a given output:
//
//	amountIn = floor(reserveIn*amountOut*1000 / ((reserveOut - amountOut)*997)) + 1
//
// The +1 makes the result conservative: feeding it back through AmountOut
// meets or exceeds the requested output despite integer flooring.
// Returns ErrInsufficientLiquidity when amountOut >= reserveOut or reserves
// are empty (no real solution exists).
func (e *Engine) AmountIn(amountOut, reserveIn, reserveOut *big.Int) (*big.Int, error) {
	if amountOut == nil || amountOut.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "amountOut must be positive")
	}
	if reserveIn == nil || reserveOut == nil || reserveIn.Sign() <= 0 || reserveOut.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "empty reserves")
	}
	if reserveOut.Cmp(amountOut) <= 0 {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "output exceeds reserve")
	}

	t := e.pool.Get().(*mathTmp)
	defer e.pool.Put(t)

	// num := reserveIn * amountOut * 1000
	t.a.Mul(reserveIn, amountOut)
	t.a.Mul(t.a, e.feeDen)
	// den := (reserveOut - amountOut) * 997
	t.b.Sub(reserveOut, amountOut)
	t.b.Mul(t.b, e.feeMul)

	in := new(big.Int).Quo(t.a, t.b)
	in.Add(in, one)
	return in, nil
}
