package portfolio

import "errors"

var (
	// ErrDuplicatePosition means a position is already open for the
	// symbol; at most one position per symbol may be open.
	ErrDuplicatePosition = errors.New("position already open")

	// ErrNoPosition means no position is open for the symbol.
	ErrNoPosition = errors.New("no open position")

	// ErrInsufficientBalance means the open cost exceeds the cash
	// balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidParameter covers malformed input: non-positive
	// quantity or price, unknown side.
	ErrInvalidParameter = errors.New("invalid parameter")
)
