// Package submit assembles the router-call arguments for a fully quoted
// trade. It only selects the method and orders the argument list per path
// variant; submission, gas estimation and confirmation tracking belong to
// the external sink.
package submit

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"swapform/internal/amm"
	"swapform/internal/apperrors"
	"swapform/internal/asset"
	"swapform/internal/quote"
)

// Call is the assembled invocation handed to the trade submission sink.
// Value is the native amount attached to the call, nil when the input asset
// is not native.
type Call struct {
	Method   string
	Args     []interface{}
	Value    *big.Int
	Deadline *big.Int
}

// Params carries everything a call needs: the quoted amounts, the slippage
// bounds guarding the dependent side, and the recipient.
type Params struct {
	Variant   asset.PathVariant
	Side      quote.Side
	AmountIn  *big.Int
	AmountOut *big.Int
	Bounds    amm.Bounds
	Book      asset.Book
	In        asset.Ref
	Out       asset.Ref
	Recipient common.Address
	Now       time.Time
	Window    time.Duration
}

// BuildCall selects the swap method and ordered argument list for the path
// variant and trade direction.
func BuildCall(p Params) (Call, error) {
	if p.AmountIn == nil || p.AmountOut == nil {
		return Call{}, errors.Wrap(apperrors.ErrInvalidArgument, "both leg amounts are required")
	}
	if p.Bounds.Min == nil || p.Bounds.Max == nil {
		return Call{}, errors.Wrap(apperrors.ErrInvalidArgument, "slippage bounds are required")
	}
	if p.Recipient == (common.Address{}) {
		return Call{}, errors.Wrap(apperrors.ErrRecipientInvalid, "recipient is unset")
	}

	path := routePath(p)
	deadline := big.NewInt(p.Now.Add(p.Window).Unix())
	exactIn := p.Side == quote.SideInput

	nativeIn := p.Variant == asset.NativeToBridge || p.Variant == asset.NativeToOther
	nativeOut := p.Variant == asset.BridgeToNative || p.Variant == asset.OtherToNative

	var call Call
	switch {
	case nativeIn && exactIn:
		call = Call{
			Method: "swapExactETHForTokens",
			Args:   []interface{}{p.Bounds.Min, path, p.Recipient, deadline},
			Value:  p.AmountIn,
		}
	case nativeIn:
		call = Call{
			Method: "swapETHForExactTokens",
			Args:   []interface{}{p.AmountOut, path, p.Recipient, deadline},
			Value:  p.Bounds.Max,
		}
	case nativeOut && exactIn:
		call = Call{
			Method: "swapExactTokensForETH",
			Args:   []interface{}{p.AmountIn, p.Bounds.Min, path, p.Recipient, deadline},
		}
	case nativeOut:
		call = Call{
			Method: "swapTokensForExactETH",
			Args:   []interface{}{p.AmountOut, p.Bounds.Max, path, p.Recipient, deadline},
		}
	case exactIn:
		call = Call{
			Method: "swapExactTokensForTokens",
			Args:   []interface{}{p.AmountIn, p.Bounds.Min, path, p.Recipient, deadline},
		}
	default:
		call = Call{
			Method: "swapTokensForExactTokens",
			Args:   []interface{}{p.AmountOut, p.Bounds.Max, path, p.Recipient, deadline},
		}
	}
	call.Deadline = deadline
	return call, nil
}

// routePath lists the hop addresses for the variant. Direct pool trades are
// two hops; everything else routes through the bridge explicitly.
func routePath(p Params) []common.Address {
	switch p.Variant {
	case asset.NativeToBridge, asset.BridgeToNative:
		return []common.Address{p.In.Addr, p.Out.Addr}
	default:
		if p.Book.IsBridge(p.In) || p.Book.IsBridge(p.Out) {
			return []common.Address{p.In.Addr, p.Out.Addr}
		}
		return []common.Address{p.In.Addr, p.Book.Bridge.Addr, p.Out.Addr}
	}
}
