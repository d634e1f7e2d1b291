package form

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"swapform/internal/asset"
	"swapform/internal/config"
	"swapform/internal/quote"
)

//go:generate mockgen -source=balance.go -destination=mock/balance.go -package=mock

// BalanceProvider supplies the funds picture of an account. Native-asset
// balances are reported the same way as token balances; Allowance is only
// consulted for token spends.
type BalanceProvider interface {
	Balance(ctx context.Context, owner common.Address, a asset.Ref) (*big.Int, error)
	Allowance(ctx context.Context, owner, spender common.Address, a asset.Ref) (*big.Int, error)
}

// Checker assembles a ValidationInput from the current form state and an
// account's on-chain funds, then runs Validate over it.
type Checker struct {
	funds   BalanceProvider
	book    asset.Book
	spender common.Address
	cfg     config.Engine
}

// NewChecker creates a Checker. The spender is the router contract that
// token allowances are granted to.
func NewChecker(funds BalanceProvider, book asset.Book, spender common.Address, cfg config.Engine) *Checker {
	return &Checker{funds: funds, book: book, spender: spender, cfg: cfg}
}

// CheckInput carries the per-check parameters that do not live in the form
// state. MarketRate may be nil when the external feed has no observation.
type CheckInput struct {
	Owner            common.Address
	MarketRate       *big.Int
	RequireRecipient bool
	RecipientErr     error
}

// Check fetches balance and allowance for the spend asset and validates the
// session's current state. Fund lookups failing is an error; validation
// verdicts are carried inside the Result.
func (c *Checker) Check(ctx context.Context, s *Session, in CheckInput) (Result, error) {
	st := s.State()

	vin := ValidationInput{
		RawAmount:        st.IndependentValue,
		Independent:      st.Independent,
		Dependent:        st.DependentValue,
		QuoteErr:         s.QuoteErr(),
		BridgeLegIn:      st.BridgeLegIn,
		BridgeLegOut:     st.BridgeLegOut,
		MarketRate:       in.MarketRate,
		RateToleranceBps: c.cfg.RateToleranceBps,
		RequireRecipient: in.RequireRecipient,
		RecipientErr:     in.RecipientErr,
	}

	independent := st.Input
	if st.Independent == quote.SideOutput {
		independent = st.Output
	}
	if independent != nil {
		vin.Decimals = independent.Decimals
	}

	if st.Input != nil {
		balance, err := c.funds.Balance(ctx, in.Owner, *st.Input)
		if err != nil {
			return Result{}, errors.Wrap(err, "funds.Balance")
		}
		vin.Balance = balance

		if !c.book.IsNative(*st.Input) {
			allowance, err := c.funds.Allowance(ctx, in.Owner, c.spender, *st.Input)
			if err != nil {
				return Result{}, errors.Wrap(err, "funds.Allowance")
			}
			vin.Allowance = allowance
		}

		// Worst-case spend uses the input side's slippage setting when the
		// output amount is the one the user fixed.
		vin.SlippageBps = c.cfg.SlippageBpsFor(c.book.IsNative(*st.Input))
	}

	return Validate(vin), nil
}
