package dto

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"swapform/internal/amm"
	"swapform/internal/asset"
	"swapform/internal/quote"
	"swapform/internal/submit"
)

// QuoteRequest represents a parsed request for a swap quote.
type QuoteRequest struct {
	In     common.Address
	Out    common.Address
	Amount *big.Int
	Side   quote.Side
}

// QuoteResult is the computed quote with its guarantee window.
type QuoteResult struct {
	Variant   asset.PathVariant
	Dependent *big.Int
	Bounds    amm.Bounds
	BridgeLeg *quote.BridgeLeg
}

// CallRequest asks for ready-to-sign router call arguments on top of a
// fresh quote.
type CallRequest struct {
	QuoteRequest
	Recipient common.Address
}

// CallResult pairs the quote with the assembled call.
type CallResult struct {
	Quote QuoteResult
	Call  submit.Call
}
