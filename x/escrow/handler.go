package escrow

import (
	"github.com/iov-one/pairswap"
	"github.com/iov-one/pairswap/errors"
	"github.com/iov-one/pairswap/orm"
	"github.com/iov-one/pairswap/x"
	"github.com/iov-one/pairswap/x/token"
)

const (
	createEscrowCost  int64 = 300
	fulfillEscrowCost int64 = 180
	cancelEscrowCost  int64 = 120

	// recordRent is the native unit reserve charged for the escrow record
	// and refunded to the maker when the escrow terminates.
	recordRent uint64 = 300
)

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r pairswap.Registry, auth x.Authenticator, ctrl token.Controller) {
	bucket := NewBucket()
	r.Handle(&CreateMsg{}, CreateHandler{auth: auth, bucket: bucket, ctrl: ctrl})
	r.Handle(&FulfillMsg{}, FulfillHandler{auth: auth, bucket: bucket, ctrl: ctrl})
	r.Handle(&CancelMsg{}, CancelHandler{auth: auth, bucket: bucket, ctrl: ctrl})
}

// CreateHandler will open a new escrow.
type CreateHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   token.Controller
}

var _ pairswap.Handler = CreateHandler{}

// Check verifies the message is properly formed and authorized and returns
// the cost of executing it.
func (h CreateHandler) Check(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*pairswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &pairswap.CheckResult{GasAllocated: createEscrowCost}, nil
}

// Deliver stores the escrow record under its derived identity and moves the
// deposit from the maker into the vault. Record rent and the vault's holder
// rent are both charged to the maker. The derived identity is returned as
// result data.
func (h CreateHandler) Deliver(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*pairswap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	record, bump, err := RecordAddress(msg.Maker, msg.Seed)
	if err != nil {
		return nil, err
	}
	if h.bucket.Has(db, record) == nil {
		return nil, errors.Wrapf(errors.ErrDuplicate, "seed %d already used", msg.Seed)
	}

	escrow := &Escrow{
		Seed:          msg.Seed,
		Maker:         msg.Maker,
		MintA:         msg.MintA,
		MintB:         msg.MintB,
		ReceiveAmount: msg.ReceiveAmount,
		Bump:          bump,
	}
	if err := h.bucket.Put(db, record, escrow); err != nil {
		return nil, err
	}
	if err := h.ctrl.ChargeRent(db, msg.Maker, recordRent); err != nil {
		return nil, errors.Wrap(err, "record rent")
	}

	// The vault must be brand new. An address squatter funding the
	// predictable vault ahead of time would otherwise inflate the escrow
	// beyond the deposit.
	if err := h.ctrl.CreateHolder(db, record, msg.MintA, msg.Maker); err != nil {
		return nil, errors.Wrap(err, "vault")
	}
	if err := h.ctrl.Move(db, token.Signer(msg.Maker), msg.Maker, record, msg.MintA, msg.DepositAmount); err != nil {
		return nil, errors.Wrap(err, "deposit")
	}

	return &pairswap.DeliverResult{Data: record}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreateHandler) validate(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*CreateMsg, error) {
	var msg CreateMsg
	if err := pairswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// Only the maker can commit their funds.
	if !h.auth.HasIdentity(ctx, msg.Maker) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "maker signature missing")
	}
	return &msg, nil
}

// FulfillHandler will complete an open escrow on behalf of a taker.
type FulfillHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   token.Controller
}

var _ pairswap.Handler = FulfillHandler{}

// Check verifies the message against the stored record and returns the cost
// of executing it.
func (h FulfillHandler) Check(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*pairswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &pairswap.CheckResult{GasAllocated: fulfillEscrowCost}, nil
}

// Deliver pays the demanded amount from the taker to the maker, releases the
// whole vault balance to the taker and destroys the escrow. Either every
// transfer happens or none does.
func (h FulfillHandler) Deliver(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*pairswap.DeliverResult, error) {
	msg, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// The taker pays the asked price directly to the maker.
	if err := h.ctrl.EnsureHolder(db, escrow.Maker, escrow.MintB, msg.Taker); err != nil {
		return nil, errors.Wrap(err, "maker holder")
	}
	if err := h.ctrl.Move(db, token.Signer(msg.Taker), msg.Taker, escrow.Maker, escrow.MintB, escrow.ReceiveAmount); err != nil {
		return nil, errors.Wrap(err, "pay maker")
	}

	// The whole vault balance goes to the taker, authorized by proving
	// the record derivation.
	vaultAuth, err := proveAuthority(escrow, msg.Escrow)
	if err != nil {
		return nil, err
	}
	balance, err := h.ctrl.Balance(db, msg.Escrow, escrow.MintA)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.EnsureHolder(db, msg.Taker, escrow.MintA, msg.Taker); err != nil {
		return nil, errors.Wrap(err, "taker holder")
	}
	if err := h.ctrl.Move(db, vaultAuth, msg.Escrow, msg.Taker, escrow.MintA, balance); err != nil {
		return nil, errors.Wrap(err, "release vault")
	}

	if err := closeEscrow(db, h.bucket, h.ctrl, msg.Escrow, escrow); err != nil {
		return nil, err
	}
	return &pairswap.DeliverResult{Data: msg.Escrow}, nil
}

// validate loads the escrow record and checks the taker's expectation
// against it before any funds move.
func (h FulfillHandler) validate(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*FulfillMsg, *Escrow, error) {
	var msg FulfillMsg
	if err := pairswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	var escrow Escrow
	if err := h.bucket.One(db, msg.Escrow, &escrow); err != nil {
		return nil, nil, errors.Wrap(err, "escrow")
	}
	if !escrow.Maker.Equals(msg.Maker) {
		return nil, nil, ErrInvalidMaker
	}
	if !escrow.MintA.Equals(msg.MintA) {
		return nil, nil, ErrInvalidMintA
	}
	if !escrow.MintB.Equals(msg.MintB) {
		return nil, nil, ErrInvalidMintB
	}

	if !h.auth.HasIdentity(ctx, msg.Taker) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "taker signature missing")
	}
	return &msg, &escrow, nil
}

// CancelHandler will abort an open escrow and return the deposit.
type CancelHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   token.Controller
}

var _ pairswap.Handler = CancelHandler{}

// Check verifies the message against the stored record and returns the cost
// of executing it.
func (h CancelHandler) Check(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*pairswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &pairswap.CheckResult{GasAllocated: cancelEscrowCost}, nil
}

// Deliver returns the vault balance to the maker and destroys the escrow. A
// drained vault skips the transfer but is still closed.
func (h CancelHandler) Deliver(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*pairswap.DeliverResult, error) {
	msg, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	balance, err := h.ctrl.Balance(db, msg.Escrow, escrow.MintA)
	if err != nil {
		return nil, err
	}
	if balance > 0 {
		vaultAuth, err := proveAuthority(escrow, msg.Escrow)
		if err != nil {
			return nil, err
		}
		if err := h.ctrl.Move(db, vaultAuth, msg.Escrow, escrow.Maker, escrow.MintA, balance); err != nil {
			return nil, errors.Wrap(err, "refund deposit")
		}
	}

	if err := closeEscrow(db, h.bucket, h.ctrl, msg.Escrow, escrow); err != nil {
		return nil, err
	}
	return &pairswap.DeliverResult{Data: msg.Escrow}, nil
}

// validate loads the escrow record and ensures only the stored maker can
// cancel it.
func (h CancelHandler) validate(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*CancelMsg, *Escrow, error) {
	var msg CancelMsg
	if err := pairswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	var escrow Escrow
	if err := h.bucket.One(db, msg.Escrow, &escrow); err != nil {
		return nil, nil, errors.Wrap(err, "escrow")
	}
	if !escrow.Maker.Equals(msg.Maker) {
		return nil, nil, ErrInvalidMaker
	}
	if !escrow.MintA.Equals(msg.MintA) {
		return nil, nil, ErrInvalidMintA
	}

	if !h.auth.HasIdentity(ctx, msg.Maker) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "maker signature missing")
	}
	return &msg, &escrow, nil
}

// closeEscrow destroys the emptied vault and the record, returning both rent
// reserves to the maker.
func closeEscrow(db pairswap.KVStore, bucket orm.ModelBucket, ctrl token.Controller, record pairswap.Identity, escrow *Escrow) error {
	if err := ctrl.CloseHolder(db, record, escrow.MintA, escrow.Maker); err != nil {
		return errors.Wrap(err, "close vault")
	}
	if err := bucket.Delete(db, record); err != nil {
		return err
	}
	if err := ctrl.RefundRent(db, escrow.Maker, recordRent); err != nil {
		return errors.Wrap(err, "record rent")
	}
	return nil
}
