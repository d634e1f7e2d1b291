package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"swapform/internal/amm"
	"swapform/internal/apperrors"
	"swapform/internal/asset"
	"swapform/internal/quote"
	"swapform/internal/service/dto"
	"swapform/internal/service/validate"
)

// Quote performs the complete business logic for one swap quote: it resolves
// asset metadata, classifies the routing shape, prices the route and derives
// the slippage-bounded guarantee window for the dependent amount.
func (s *SwapService) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResult, error) {
	if err := validate.QuoteRequestValidate(req); err != nil {
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

	variant, ok := s.book.Classify(&in, &out)
	if !ok {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "cannot classify pair")
	}

	var leg *quote.BridgeLeg
	outcome, err := s.router.Quote(ctx, quote.Request{
		Variant:     variant,
		Side:        req.Side,
		Amount:      req.Amount,
		In:          in,
		Out:         out,
		Bridge:      s.book.Bridge,
		OnBridgeLeg: func(l quote.BridgeLeg) { leg = &l },
	})
	if err != nil {
		return nil, err
	}

	// The dependent side determines which deviation table guards it.
	dependentNative := req.Side == quote.SideInput && s.book.IsNative(out) ||
		req.Side == quote.SideOutput && s.book.IsNative(in)
	bounds, ok := amm.SlippageBounds(outcome.Dependent, s.cfg.SlippageBpsFor(dependentNative))
	if !ok {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "no dependent amount")
	}

	return &dto.QuoteResult{
		Variant:   variant,
		Dependent: outcome.Dependent,
		Bounds:    bounds,
		BridgeLeg: leg,
	}, nil
}

func (s *SwapService) resolve(ctx context.Context, addr common.Address) (asset.Ref, error) {
	meta, err := s.meta.Lookup(ctx, addr)
	if err != nil {
		return asset.Ref{}, errors.Wrap(apperrors.ErrInvalidArgument, err.Error())
	}
	return asset.Ref{Addr: addr, Decimals: meta.Decimals}, nil
}
