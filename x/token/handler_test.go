package token

import (
	"context"
	"testing"

	"github.com/iov-one/pairswap"
	"github.com/iov-one/pairswap/errors"
	"github.com/iov-one/pairswap/store"
	"github.com/iov-one/pairswap/swaptest"
	"github.com/iov-one/pairswap/swaptest/assert"
)

func TestSendHandler(t *testing.T) {
	alice := swaptest.NewIdentity()
	bob := swaptest.NewIdentity()

	cases := map[string]struct {
		msg    *SendMsg
		signer pairswap.Identity
		// wantCheckErr is expected from Check, which does not inspect
		// any balances.
		wantCheckErr *errors.Error
		// wantErr is expected from Deliver.
		wantErr    *errors.Error
		wantSource uint64
		wantDest   uint64
	}{
		"all good": {
			msg: &SendMsg{
				Source:      alice,
				Destination: bob,
				Amount:      300,
				Decimals:    6,
			},
			signer:     alice,
			wantSource: 700,
			wantDest:   300,
		},
		"missing signature": {
			msg: &SendMsg{
				Source:      alice,
				Destination: bob,
				Amount:      300,
				Decimals:    6,
			},
			signer:       bob,
			wantCheckErr: errors.ErrUnauthorized,
			wantErr:      errors.ErrUnauthorized,
		},
		"zero amount": {
			msg: &SendMsg{
				Source:      alice,
				Destination: bob,
				Amount:      0,
				Decimals:    6,
			},
			signer:       alice,
			wantCheckErr: errors.ErrAmount,
			wantErr:      errors.ErrAmount,
		},
		"wrong decimals": {
			msg: &SendMsg{
				Source:      alice,
				Destination: bob,
				Amount:      300,
				Decimals:    9,
			},
			signer:  alice,
			wantErr: ErrDecimalMismatch,
		},
		"insufficient funds": {
			msg: &SendMsg{
				Source:      alice,
				Destination: bob,
				Amount:      1001,
				Decimals:    6,
			},
			signer:  alice,
			wantErr: ErrInsufficientFunds,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			assert.Nil(t, ctrl.RegisterMint(db, NativeMint, 9))
			asset := swaptest.NewIdentity()
			assert.Nil(t, ctrl.RegisterMint(db, asset, 6))
			assert.Nil(t, ctrl.Issue(db, alice, asset, 1000))
			assert.Nil(t, ctrl.Issue(db, alice, NativeMint, 1000))
			tc.msg.Asset = asset

			auth := &swaptest.Auth{Signer: tc.signer}
			h := SendHandler{auth: auth, ctrl: ctrl}
			tx := &swaptest.Tx{Msg: tc.msg}
			ctx := context.Background()

			_, err := h.Check(ctx, db, tx)
			assert.IsErr(t, tc.wantCheckErr, err)
			_, err = h.Deliver(ctx, db, tx)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}

			got, err := ctrl.Balance(db, alice, asset)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantSource, got)
			got, err = ctrl.Balance(db, bob, asset)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantDest, got)

			// The destination holder was created on the source's coin.
			got, err = ctrl.Balance(db, alice, NativeMint)
			assert.Nil(t, err)
			assert.Equal(t, 1000-HolderRent, got)
		})
	}
}
