package apperrors

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when request or action parameters are invalid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAmountInvalid is returned when the independent amount cannot be parsed
	// or falls outside (0, MaxAmount).
	ErrAmountInvalid = errors.New("amount not valid")

	// ErrInsufficientLiquidity is returned when a pricing leg has no valid
	// solution or the pool reserves are empty.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// ErrInsufficientBalance is returned when the input asset balance does not
	// cover the worst-case spend.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInsufficientAllowance is returned when the spender allowance does not
	// cover the worst-case spend.
	ErrInsufficientAllowance = errors.New("insufficient allowance")

	// ErrRecipientInvalid is surfaced through the validity gate when an
	// externally validated recipient is rejected.
	ErrRecipientInvalid = errors.New("recipient not valid")

	// ErrQuoteStale signals that an asynchronous quote result was superseded
	// by a newer independent value. Internal, never user-visible.
	ErrQuoteStale = errors.New("quote stale")

	// ErrReservesUnavailable is returned when the reserve snapshot cannot be
	// read, typically due to an RPC or ABI decoding error.
	ErrReservesUnavailable = errors.New("reserves unavailable")
)
