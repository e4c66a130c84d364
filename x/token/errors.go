package token

import (
	"github.com/iov-one/pairswap/errors"
)

// token reserves 1020 ~ 1029.
var (
	// ErrUnknownMint is returned when an asset identity does not resolve
	// to a registered mint.
	ErrUnknownMint = errors.Register(1020, "unknown mint")

	// ErrInsufficientFunds is returned when a holder account does not
	// carry enough balance for the requested transfer.
	ErrInsufficientFunds = errors.Register(1021, "insufficient funds")

	// ErrHolderNotEmpty is returned when closing a holder account that
	// still carries a balance.
	ErrHolderNotEmpty = errors.Register(1022, "holder not empty")

	// ErrDecimalMismatch is returned when the caller states a decimal
	// precision different from the mint registration.
	ErrDecimalMismatch = errors.Register(1023, "decimal mismatch")
)
