package validate

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"swapform/internal/apperrors"
)

// QuoteParams validates raw query parameters of the /quote endpoint and
// returns the parsed amount. Addresses are checked for hex form only;
// zero-address and same-asset checks live in the service layer.
func QuoteParams(in, out, amount, side string) (*big.Int, error) {
	if !common.IsHexAddress(in) {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "in is not a hex address")
	}
	if !common.IsHexAddress(out) {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "out is not a hex address")
	}
	switch side {
	case "input", "output":
	default:
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "side must be input or output")
	}
	value, ok := new(big.Int).SetString(amount, 10)
	if !ok || value.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrAmountInvalid, "amount must be a positive integer")
	}
	return value, nil
}
