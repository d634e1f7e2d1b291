package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"swapform/internal/apperrors"
	"swapform/internal/quote"
	"swapform/internal/service/dto"
	"swapform/internal/submit"
)

// SwapCall quotes the trade and assembles the router call arguments for it.
// The deadline is anchored at the current time plus the configured window.
func (s *SwapService) SwapCall(ctx context.Context, req dto.CallRequest) (*dto.CallResult, error) {
	if req.Recipient == (common.Address{}) {
		return nil, errors.Wrap(apperrors.ErrRecipientInvalid, "recipient is unset")
	}

	qres, err := s.Quote(ctx, req.QuoteRequest)
	if err != nil {
		return nil, err
	}

	in, err := s.resolve(ctx, req.In)
	if err != nil {
		return nil, err
	}
	out, err := s.resolve(ctx, req.Out)
	if err != nil {
		return nil, err
	}

	amountIn, amountOut := req.Amount, qres.Dependent
	if req.Side == quote.SideOutput {
		amountIn, amountOut = qres.Dependent, req.Amount
	}

	call, err := submit.BuildCall(submit.Params{
		Variant:   qres.Variant,
		Side:      req.Side,
		AmountIn:  amountIn,
		AmountOut: amountOut,
		Bounds:    qres.Bounds,
		Book:      s.book,
		In:        in,
		Out:       out,
		Recipient: req.Recipient,
		Now:       time.Now(),
		Window:    s.cfg.DeadlineWindow,
	})
	if err != nil {
		return nil, err
	}

	return &dto.CallResult{Quote: *qres, Call: call}, nil
}
