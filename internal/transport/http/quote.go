package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"swapform/internal/apperrors"
	"swapform/internal/quote"
	sdto "swapform/internal/service/dto"
	"swapform/internal/transport/http/dto"
	"swapform/internal/transport/http/validate"
)

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rawSide := q.Get("side")

	amount, err := validate.QuoteParams(q.Get("in"), q.Get("out"), q.Get("amount"), rawSide)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	side := quote.SideInput
	if rawSide == "output" {
		side = quote.SideOutput
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	res, err := s.svc.Quote(ctx, sdto.QuoteRequest{
		In:     common.HexToAddress(q.Get("in")),
		Out:    common.HexToAddress(q.Get("out")),
		Amount: amount,
		Side:   side,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidArgument),
			errors.Is(err, apperrors.ErrAmountInvalid),
			errors.Is(err, apperrors.ErrInsufficientLiquidity):
			writeError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, apperrors.ErrReservesUnavailable):
			writeError(w, err.Error(), http.StatusBadGateway)
		default:
			writeError(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	resp := dto.QuoteResponse{
		Variant:   res.Variant.String(),
		Dependent: res.Dependent.String(),
		Minimum:   res.Bounds.Min.String(),
		Maximum:   res.Bounds.Max.String(),
	}
	if res.BridgeLeg != nil {
		resp.BridgeIn = res.BridgeLeg.In.String()
		resp.BridgeOut = res.BridgeLeg.Out.String()
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Warnf("quote write error: %v", err)
	}
}

func writeError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: msg})
}
