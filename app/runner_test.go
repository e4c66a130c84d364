package app

import (
	"context"
	"testing"

	"github.com/iov-one/pairswap"
	"github.com/iov-one/pairswap/errors"
	"github.com/iov-one/pairswap/store"
	"github.com/iov-one/pairswap/swaptest"
	"github.com/iov-one/pairswap/swaptest/assert"
)

// writingHandler mutates the store before returning the configured error.
type writingHandler struct {
	key, value []byte
	err        error
	panics     bool
}

func (h writingHandler) Check(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*pairswap.CheckResult, error) {
	db.Set(h.key, h.value)
	if h.panics {
		panic("check exploded")
	}
	return &pairswap.CheckResult{}, h.err
}

func (h writingHandler) Deliver(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*pairswap.DeliverResult, error) {
	db.Set(h.key, h.value)
	if h.panics {
		panic("deliver exploded")
	}
	return &pairswap.DeliverResult{}, h.err
}

func TestDeliverTxCommitsOnSuccess(t *testing.T) {
	db := store.MemStore()
	runner := NewTxRunner(writingHandler{key: []byte("k"), value: []byte("v")})

	_, err := runner.DeliverTx(context.Background(), db, &swaptest.Tx{})
	assert.Nil(t, err)
	assert.Equal(t, "v", string(db.Get([]byte("k"))))
}

func TestDeliverTxRollsBackOnError(t *testing.T) {
	db := store.MemStore()
	h := writingHandler{
		key:   []byte("k"),
		value: []byte("v"),
		err:   errors.Wrap(errors.ErrState, "too late"),
	}
	runner := NewTxRunner(h)

	_, err := runner.DeliverTx(context.Background(), db, &swaptest.Tx{})
	assert.IsErr(t, errors.ErrState, err)
	if db.Has([]byte("k")) {
		t.Fatal("failed delivery leaked writes")
	}
}

func TestDeliverTxRollsBackOnPanic(t *testing.T) {
	db := store.MemStore()
	h := writingHandler{key: []byte("k"), value: []byte("v"), panics: true}
	runner := NewTxRunner(h)

	_, err := runner.DeliverTx(context.Background(), db, &swaptest.Tx{})
	assert.IsErr(t, errors.ErrPanic, err)
	if db.Has([]byte("k")) {
		t.Fatal("panicked delivery leaked writes")
	}
}

func TestCheckTxNeverCommits(t *testing.T) {
	db := store.MemStore()
	runner := NewTxRunner(writingHandler{key: []byte("k"), value: []byte("v")})

	_, err := runner.CheckTx(context.Background(), db, &swaptest.Tx{})
	assert.Nil(t, err)
	if db.Has([]byte("k")) {
		t.Fatal("check leaked writes")
	}
}

func TestCheckTxRecoversPanic(t *testing.T) {
	db := store.MemStore()
	runner := NewTxRunner(writingHandler{key: []byte("k"), panics: true})

	_, err := runner.CheckTx(context.Background(), db, &swaptest.Tx{})
	assert.IsErr(t, errors.ErrPanic, err)
}
