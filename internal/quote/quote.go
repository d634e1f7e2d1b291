package quote

import (
	"context"
	"math/big"

	"swapform/internal/asset"
)

// Side names one of the two form fields. Exactly one side is independent
// (user-edited) at any time; the other is computed.
type Side int

const (
	SideInput Side = iota
	SideOutput
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SideInput {
		return SideOutput
	}
	return SideInput
}

func (s Side) String() string {
	if s == SideInput {
		return "input"
	}
	return "output"
}

// Reserves is a read-only snapshot of the native/bridge pool liquidity.
type Reserves struct {
	Native *big.Int
	Bridge *big.Int
}

// ReserveProvider supplies the current pool snapshot. Polled and cached
// externally; may report unavailability.
type ReserveProvider interface {
	Reserves(ctx context.Context) (Reserves, error)
}

// PriceFeed is the external price-quote collaborator used for legs that do
// not touch the native/bridge pool. Both calls may fail with insufficient
// liquidity or a transport error.
type PriceFeed interface {
	QuoteForward(ctx context.Context, in asset.Ref, amountIn *big.Int, out asset.Ref) (*big.Int, error)
	QuoteInverse(ctx context.Context, in, out asset.Ref, amountOut *big.Int) (*big.Int, error)
}

// BridgeLeg is the pricing pair of the leg that passed through the bridge
// asset, kept for later market-rate-deviation comparison.
type BridgeLeg struct {
	In  *big.Int
	Out *big.Int
}

// Request describes one quote computation. Amount is the independent value
// driving it; OnBridgeLeg, when set, receives the synchronous bridging leg as
// soon as it is known, before any asynchronous leg completes.
type Request struct {
	Variant asset.PathVariant
	Side    Side
	Amount  *big.Int
	In      asset.Ref
	Out     asset.Ref
	// Bridge is the bridge asset ref, needed for the external end of
	// indirect legs.
	Bridge      asset.Ref
	OnBridgeLeg func(leg BridgeLeg)
}

// Outcome is the computed dependent amount plus, when the route passed
// through the bridge asset, the bridging-leg pair. Bridge is nil for
// other-to-other routes, which delegate the whole quote externally.
type Outcome struct {
	Dependent *big.Int
	Bridge    *BridgeLeg
}
