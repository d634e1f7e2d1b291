package quote

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"swapform/internal/amm"
	"swapform/internal/apperrors"
	"swapform/internal/asset"
)

//go:generate mockgen -source=quote.go -destination=mock/quote.go -package=mock

// Router orchestrates one- or two-leg quote computation per path variant.
// Legs against the native/bridge pool are priced locally through the engine;
// indirect legs are delegated to the external price feed.
type Router struct {
	eng      *amm.Engine
	reserves ReserveProvider
	feed     PriceFeed
	log      logrus.FieldLogger
}

// NewRouter creates a Router.
func NewRouter(eng *amm.Engine, reserves ReserveProvider, feed PriceFeed, log logrus.FieldLogger) *Router {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Router{eng: eng, reserves: reserves, feed: feed, log: log}
}

// Quote computes the dependent amount for the request. Any leg that yields a
// non-positive amount or fails surfaces as ErrInsufficientLiquidity; the
// caller then clears the dependent value and bridging pair.
func (r *Router) Quote(ctx context.Context, req Request) (*Outcome, error) {
	if req.Amount == nil || req.Amount.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "independent amount must be positive")
	}

	var (
		out *Outcome
		err error
	)
	switch req.Variant {
	case asset.NativeToBridge:
		out, err = r.direct(ctx, req, false)
	case asset.BridgeToNative:
		out, err = r.direct(ctx, req, true)
	case asset.NativeToOther:
		out, err = r.nativeToOther(ctx, req)
	case asset.OtherToNative:
		out, err = r.otherToNative(ctx, req)
	case asset.OtherToOther:
		out, err = r.otherToOther(ctx, req)
	default:
		return nil, errors.Wrapf(apperrors.ErrInvalidArgument, "unknown path variant %d", req.Variant)
	}
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"variant": req.Variant.String(),
			"side":    req.Side.String(),
		}).WithError(err).Debug("quote failed")
		return nil, err
	}
	return out, nil
}

// direct prices a single pool leg. reversed=true means the bridge asset is
// the pool input (bridge -> native).
func (r *Router) direct(ctx context.Context, req Request, reversed bool) (*Outcome, error) {
	rIn, rOut, err := r.poolReserves(ctx, reversed)
	if err != nil {
		return nil, err
	}

	var dep *big.Int
	if req.Side == SideInput {
		dep, err = r.eng.AmountOut(req.Amount, rIn, rOut)
	} else {
		dep, err = r.eng.AmountIn(req.Amount, rIn, rOut)
	}
	if err != nil {
		return nil, err
	}

	leg := poolLeg(req.Side, req.Amount, dep)
	req.reportBridgeLeg(leg)
	return &Outcome{Dependent: dep, Bridge: &leg}, nil
}

// nativeToOther prices native -> bridge locally, then bridges to the target
// asset through the external feed. The pool leg is reported before the feed
// call so bridging-rate comparisons are available even if the second leg
// stalls.
func (r *Router) nativeToOther(ctx context.Context, req Request) (*Outcome, error) {
	rNative, rBridge, err := r.poolReserves(ctx, false)
	if err != nil {
		return nil, err
	}

	if req.Side == SideInput {
		bridgeAmt, err := r.eng.AmountOut(req.Amount, rNative, rBridge)
		if err != nil {
			return nil, err
		}
		leg := BridgeLeg{In: req.Amount, Out: bridgeAmt}
		req.reportBridgeLeg(leg)

		dep, err := r.feedForward(ctx, req.Bridge, bridgeAmt, req.Out)
		if err != nil {
			return nil, err
		}
		return &Outcome{Dependent: dep, Bridge: &leg}, nil
	}

	// Exact output: walk the route backwards, external leg first.
	bridgeAmt, err := r.feedInverse(ctx, req.Bridge, req.Out, req.Amount)
	if err != nil {
		return nil, err
	}
	dep, err := r.eng.AmountIn(bridgeAmt, rNative, rBridge)
	if err != nil {
		return nil, err
	}
	leg := BridgeLeg{In: dep, Out: bridgeAmt}
	req.reportBridgeLeg(leg)
	return &Outcome{Dependent: dep, Bridge: &leg}, nil
}

// otherToNative bridges the input asset to the bridge asset externally, then
// prices bridge -> native locally.
func (r *Router) otherToNative(ctx context.Context, req Request) (*Outcome, error) {
	rNative, rBridge, err := r.poolReserves(ctx, false)
	if err != nil {
		return nil, err
	}

	if req.Side == SideInput {
		bridgeAmt, err := r.feedForward(ctx, req.In, req.Amount, req.Bridge)
		if err != nil {
			return nil, err
		}
		dep, err := r.eng.AmountOut(bridgeAmt, rBridge, rNative)
		if err != nil {
			return nil, err
		}
		leg := BridgeLeg{In: bridgeAmt, Out: dep}
		req.reportBridgeLeg(leg)
		return &Outcome{Dependent: dep, Bridge: &leg}, nil
	}

	// Exact output: the pool leg is known synchronously and reported first.
	bridgeAmt, err := r.eng.AmountIn(req.Amount, rBridge, rNative)
	if err != nil {
		return nil, err
	}
	leg := BridgeLeg{In: bridgeAmt, Out: req.Amount}
	req.reportBridgeLeg(leg)

	dep, err := r.feedInverse(ctx, req.In, req.Bridge, bridgeAmt)
	if err != nil {
		return nil, err
	}
	return &Outcome{Dependent: dep, Bridge: &leg}, nil
}

// otherToOther delegates the whole quote to the external feed as a single
// two-asset-aware query. No bridging pair is produced, so no market-rate
// comparison happens for these routes.
func (r *Router) otherToOther(ctx context.Context, req Request) (*Outcome, error) {
	var (
		dep *big.Int
		err error
	)
	if req.Side == SideInput {
		dep, err = r.feedForward(ctx, req.In, req.Amount, req.Out)
	} else {
		dep, err = r.feedInverse(ctx, req.In, req.Out, req.Amount)
	}
	if err != nil {
		return nil, err
	}
	return &Outcome{Dependent: dep}, nil
}

func (r *Router) poolReserves(ctx context.Context, reversed bool) (*big.Int, *big.Int, error) {
	snap, err := r.reserves.Reserves(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, err.Error())
	}
	if snap.Native == nil || snap.Bridge == nil || snap.Native.Sign() <= 0 || snap.Bridge.Sign() <= 0 {
		return nil, nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "empty reserve snapshot")
	}
	if reversed {
		return snap.Bridge, snap.Native, nil
	}
	return snap.Native, snap.Bridge, nil
}

func (r *Router) feedForward(ctx context.Context, in asset.Ref, amountIn *big.Int, out asset.Ref) (*big.Int, error) {
	v, err := r.feed.QuoteForward(ctx, in, amountIn, out)
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, err.Error())
	}
	if v == nil || v.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "feed returned non-positive amount")
	}
	return v, nil
}

func (r *Router) feedInverse(ctx context.Context, in, out asset.Ref, amountOut *big.Int) (*big.Int, error) {
	v, err := r.feed.QuoteInverse(ctx, in, out, amountOut)
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, err.Error())
	}
	if v == nil || v.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "feed returned non-positive amount")
	}
	return v, nil
}

func (req Request) reportBridgeLeg(leg BridgeLeg) {
	if req.OnBridgeLeg != nil {
		req.OnBridgeLeg(leg)
	}
}

// poolLeg orients a direct pool computation as (in, out) regardless of which
// side was independent.
func poolLeg(side Side, independent, dependent *big.Int) BridgeLeg {
	if side == SideInput {
		return BridgeLeg{In: independent, Out: dependent}
	}
	return BridgeLeg{In: dependent, Out: independent}
}
