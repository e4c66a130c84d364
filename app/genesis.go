package app

import (
	"github.com/iov-one/pairswap"
	"github.com/iov-one/pairswap/errors"
)

// Initialize feeds the genesis options to every extension's initializer,
// writing the initial state into the store.
func Initialize(opts pairswap.Options, db pairswap.KVStore, inits ...pairswap.Initializer) error {
	for _, i := range inits {
		if err := i.FromGenesis(opts, db); err != nil {
			return errors.Wrapf(err, "initializer %T", i)
		}
	}
	return nil
}
