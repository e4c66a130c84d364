package token

import (
	"github.com/iov-one/pairswap"
	"github.com/iov-one/pairswap/errors"
	"github.com/iov-one/pairswap/x"
)

const sendTxCost int64 = 100

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r pairswap.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(&SendMsg{}, SendHandler{auth: auth, ctrl: ctrl})
}

// SendHandler will handle sending tokens between two parties.
type SendHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ pairswap.Handler = SendHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h SendHandler) Check(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*pairswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &pairswap.CheckResult{GasAllocated: sendTxCost}, nil
}

// Deliver moves the tokens from source to destination if all preconditions
// are met. The destination holder is created on demand with the rent reserve
// charged to the source.
func (h SendHandler) Deliver(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*pairswap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := h.ctrl.EnsureHolder(db, msg.Destination, msg.Asset, msg.Source); err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveChecked(db, Signer(msg.Source), msg.Source, msg.Destination, msg.Asset, msg.Amount, msg.Decimals); err != nil {
		return nil, err
	}
	return &pairswap.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h SendHandler) validate(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := pairswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// Source must authorize this.
	if !h.auth.HasIdentity(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "account owner signature missing")
	}
	return &msg, nil
}
