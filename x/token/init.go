package token

import (
	"github.com/iov-one/pairswap"
	"github.com/iov-one/pairswap/errors"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ pairswap.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account info from genesis and save it to
// the database.
//
// The native mint is always registered. Holder entries with no asset refer
// to the native mint.
func (Initializer) FromGenesis(opts pairswap.Options, db pairswap.KVStore) error {
	var state struct {
		Mints []struct {
			ID       pairswap.Identity `json:"id"`
			Decimals uint8             `json:"decimals"`
		} `json:"mints"`
		Holders []struct {
			Owner  pairswap.Identity `json:"owner"`
			Asset  pairswap.Identity `json:"asset"`
			Amount uint64            `json:"amount"`
		} `json:"holders"`
	}
	if err := opts.ReadOptions("token", &state); err != nil {
		return errors.Wrap(err, "cannot read token genesis")
	}

	ctrl := NewController()

	if err := ctrl.RegisterMint(db, NativeMint, 9); err != nil {
		return errors.Wrap(err, "cannot register native mint")
	}
	for i, m := range state.Mints {
		if err := ctrl.RegisterMint(db, m.ID, m.Decimals); err != nil {
			return errors.Wrapf(err, "cannot register mint #%d", i)
		}
	}
	for i, h := range state.Holders {
		asset := h.Asset
		if len(asset) == 0 {
			asset = NativeMint
		}
		if err := ctrl.Issue(db, h.Owner, asset, h.Amount); err != nil {
			return errors.Wrapf(err, "cannot fund holder #%d", i)
		}
	}
	return nil
}
