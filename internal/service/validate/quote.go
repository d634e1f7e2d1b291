package validate

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"swapform/internal/amm"
	"swapform/internal/apperrors"
	"swapform/internal/service/dto"
)

// QuoteRequestValidate validates business logic request.
func QuoteRequestValidate(req dto.QuoteRequest) error {
	var zeroAddress = common.Address{}

	if req.In == zeroAddress || req.Out == zeroAddress {
		return errors.Wrap(apperrors.ErrInvalidArgument, "address cannot be empty")
	}

	if req.In == req.Out {
		return errors.Wrap(apperrors.ErrInvalidArgument, "output asset cannot be the same as input asset")
	}

	if !amm.InRange(req.Amount) {
		return errors.Wrap(apperrors.ErrAmountInvalid, "amount must be in (0, MaxAmount]")
	}

	return nil
}
