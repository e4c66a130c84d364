package app

import (
	"github.com/iov-one/pairswap"
	"github.com/iov-one/pairswap/errors"
)

// TxRunner executes transactions against a cache wrap of the store so that
// every transaction is all or nothing: only a fully successful execution is
// written through, a failure or panic at any step leaves the store exactly
// as it was.
type TxRunner struct {
	handler pairswap.Handler
}

// NewTxRunner wraps the handler, usually a Router.
func NewTxRunner(h pairswap.Handler) *TxRunner {
	return &TxRunner{handler: h}
}

// CheckTx runs the handler's Check on a scratch pad that is always
// discarded. Check must never mutate the committed state.
func (r *TxRunner) CheckTx(ctx pairswap.Context, db pairswap.CacheableKVStore, tx pairswap.Tx) (res *pairswap.CheckResult, err error) {
	cache := db.CacheWrap()
	defer cache.Discard()
	defer errors.Recover(&err)

	return r.handler.Check(ctx, cache, tx)
}

// DeliverTx runs the handler's Deliver on a scratch pad and writes it
// through only on success.
func (r *TxRunner) DeliverTx(ctx pairswap.Context, db pairswap.CacheableKVStore, tx pairswap.Tx) (res *pairswap.DeliverResult, err error) {
	cache := db.CacheWrap()
	defer func() {
		if err == nil {
			cache.Write()
		} else {
			cache.Discard()
		}
	}()
	defer errors.Recover(&err)

	return r.handler.Deliver(ctx, cache, tx)
}
