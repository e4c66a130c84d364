package orm

import (
	"github.com/iov-one/pairswap"
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	pairswap.Persistent

	// Validate returns an error if the model is not in a valid state to
	// save to the db (eg. field missing, out of range, ...).
	Validate() error

	// Copy returns an independent instance carrying the same data.
	Copy() Model
}
