package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"swapform/internal/asset"
	"swapform/internal/config"
	"swapform/internal/quote"
	"swapform/internal/service/dto"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

// Metadata is the external asset metadata provider. Implementations are
// expected to be synchronous and cached.
type Metadata interface {
	// Lookup returns the display symbol and decimal precision of an asset.
	Lookup(ctx context.Context, addr common.Address) (asset.Meta, error)
}

// Service represents interface for business logic.
type Service interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResult, error)
	SwapCall(ctx context.Context, req dto.CallRequest) (*dto.CallResult, error)
}

// SwapService represents struct for business logic.
type SwapService struct {
	book   asset.Book
	router *quote.Router
	meta   Metadata
	cfg    config.Engine
}

// NewSwapService creates SwapService.
func NewSwapService(book asset.Book, router *quote.Router, meta Metadata, cfg config.Engine) *SwapService {
	return &SwapService{book: book, router: router, meta: meta, cfg: cfg}
}
