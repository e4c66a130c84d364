package escrow

import (
	"github.com/iov-one/pairswap/errors"
)

var (
	// ErrInvalidAmount is returned when an escrow amount is zero.
	ErrInvalidAmount = errors.Register(1010, "invalid amount")

	// ErrInvalidMaker is returned when a message names a maker different
	// from the one stored in the escrow record.
	ErrInvalidMaker = errors.Register(1011, "invalid maker")

	// ErrInvalidMintA is returned when a message names a deposit asset
	// different from the one stored in the escrow record.
	ErrInvalidMintA = errors.Register(1012, "invalid mint a")

	// ErrInvalidMintB is returned when a message names a receive asset
	// different from the one stored in the escrow record.
	ErrInvalidMintB = errors.Register(1013, "invalid mint b")
)
