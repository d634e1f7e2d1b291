package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"swapform/internal/apperrors"
	"swapform/internal/quote"
	sdto "swapform/internal/service/dto"
	"swapform/internal/transport/http/dto"
	"swapform/internal/transport/http/validate"
)

func (s *Server) handleCalldata(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rawSide := q.Get("side")

	amount, err := validate.QuoteParams(q.Get("in"), q.Get("out"), q.Get("amount"), rawSide)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !common.IsHexAddress(q.Get("recipient")) {
		writeError(w, "recipient is not a hex address", http.StatusBadRequest)
		return
	}

	side := quote.SideInput
	if rawSide == "output" {
		side = quote.SideOutput
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	res, err := s.svc.SwapCall(ctx, sdto.CallRequest{
		QuoteRequest: sdto.QuoteRequest{
			In:     common.HexToAddress(q.Get("in")),
			Out:    common.HexToAddress(q.Get("out")),
			Amount: amount,
			Side:   side,
		},
		Recipient: common.HexToAddress(q.Get("recipient")),
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidArgument),
			errors.Is(err, apperrors.ErrAmountInvalid),
			errors.Is(err, apperrors.ErrRecipientInvalid),
			errors.Is(err, apperrors.ErrInsufficientLiquidity):
			writeError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, apperrors.ErrReservesUnavailable):
			writeError(w, err.Error(), http.StatusBadGateway)
		default:
			writeError(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	resp := dto.CallResponse{
		QuoteResponse: dto.QuoteResponse{
			Variant:   res.Quote.Variant.String(),
			Dependent: res.Quote.Dependent.String(),
			Minimum:   res.Quote.Bounds.Min.String(),
			Maximum:   res.Quote.Bounds.Max.String(),
		},
		Method:   res.Call.Method,
		Args:     renderArgs(res.Call.Args),
		Deadline: res.Call.Deadline.String(),
	}
	if res.Quote.BridgeLeg != nil {
		resp.BridgeIn = res.Quote.BridgeLeg.In.String()
		resp.BridgeOut = res.Quote.BridgeLeg.Out.String()
	}
	if res.Call.Value != nil {
		resp.Value = res.Call.Value.String()
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Warnf("calldata write error: %v", err)
	}
}

// renderArgs keeps positional order while mapping Go values to JSON-safe
// representations.
func renderArgs(args []interface{}) []any {
	out := make([]any, 0, len(args))
	for _, a := range args {
		switch v := a.(type) {
		case *big.Int:
			out = append(out, v.String())
		case common.Address:
			out = append(out, v.Hex())
		case []common.Address:
			hops := make([]string, 0, len(v))
			for _, addr := range v {
				hops = append(hops, addr.Hex())
			}
			out = append(out, hops)
		default:
			out = append(out, fmt.Sprintf("%v", v))
		}
	}
	return out
}
