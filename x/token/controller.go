package token

import (
	"math"

	"github.com/iov-one/pairswap"
	"github.com/iov-one/pairswap/errors"
	"github.com/iov-one/pairswap/orm"
)

// HolderRent is the native unit reserve charged for every holder account
// creation and refunded when the holder is closed.
const HolderRent uint64 = 200

// Authority is the capability to move funds out of an account. A handler
// constructs one only after verifying a signature, or after a successful
// proof of derivation for a keyless account.
type Authority interface {
	// Identity of the account the authority controls.
	Identity() pairswap.Identity
}

// Signer returns the authority over a keyed identity. The caller must have
// verified that the identity authorized the request before constructing it.
func Signer(id pairswap.Identity) Authority {
	return signerAuthority(id)
}

type signerAuthority pairswap.Identity

func (a signerAuthority) Identity() pairswap.Identity {
	return pairswap.Identity(a)
}

// Controller is the functionality needed by other extensions to move asset
// balances around. BankController should work plenty fine, but you can add
// other logic if so desired.
type Controller interface {
	// Balance returns the owner's balance of the given asset. A missing
	// holder account reads as zero.
	Balance(db pairswap.ReadOnlyKVStore, owner, asset pairswap.Identity) (uint64, error)

	// Move transfers the amount between the two owners' holder accounts
	// of the given asset. The authority must control the source owner.
	// Both holder accounts must exist. A transfer to self is checked the
	// same way but moves nothing.
	Move(db pairswap.KVStore, auth Authority, src, dst, asset pairswap.Identity, amount uint64) error

	// MoveChecked is Move with an additional check that the caller's
	// stated decimal precision matches the mint registration.
	MoveChecked(db pairswap.KVStore, auth Authority, src, dst, asset pairswap.Identity, amount uint64, decimals uint8) error

	// CreateHolder creates the (owner, asset) holder account, charging
	// the rent reserve to the payer. It fails when the holder already
	// exists.
	CreateHolder(db pairswap.KVStore, owner, asset, payer pairswap.Identity) error

	// EnsureHolder creates the (owner, asset) holder account if absent,
	// charging the rent reserve to the payer.
	EnsureHolder(db pairswap.KVStore, owner, asset, payer pairswap.Identity) error

	// CloseHolder removes an emptied holder account and refunds its rent
	// reserve to rentDest.
	CloseHolder(db pairswap.KVStore, owner, asset, rentDest pairswap.Identity) error

	// ChargeRent collects a storage reserve in native units from the
	// payer, to be given back via RefundRent when the stored entity is
	// released.
	ChargeRent(db pairswap.KVStore, payer pairswap.Identity, amount uint64) error

	// RefundRent returns a previously charged storage reserve.
	RefundRent(db pairswap.KVStore, dest pairswap.Identity, amount uint64) error

	// Issue adds the amount to the owner's balance out of thin air. Used
	// at genesis. The holder account is created rent free.
	Issue(db pairswap.KVStore, owner, asset pairswap.Identity, amount uint64) error

	// RegisterMint declares a new asset.
	RegisterMint(db pairswap.KVStore, asset pairswap.Identity, decimals uint8) error
}

// BankController is the standard implementation of Controller, backed by the
// mint and holder buckets.
type BankController struct {
	mints   orm.ModelBucket
	holders orm.ModelBucket
}

var _ Controller = (*BankController)(nil)

// NewController returns a controller over freshly build buckets.
func NewController() *BankController {
	return &BankController{
		mints:   NewMintBucket(),
		holders: NewHolderBucket(),
	}
}

func (c *BankController) Balance(db pairswap.ReadOnlyKVStore, owner, asset pairswap.Identity) (uint64, error) {
	var holder Holder
	switch err := c.holders.One(db, HolderAddress(owner, asset), &holder); {
	case err == nil:
		return holder.Balance, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "cannot load holder")
	}
}

func (c *BankController) Move(db pairswap.KVStore, auth Authority, src, dst, asset pairswap.Identity, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if _, err := c.mint(db, asset); err != nil {
		return err
	}
	if auth == nil || !auth.Identity().Equals(src) {
		return errors.Wrap(errors.ErrUnauthorized, "no authority over source")
	}

	var sender Holder
	if err := c.holders.One(db, HolderAddress(src, asset), &sender); err != nil {
		return errors.Wrap(err, "source holder")
	}
	if !sender.Asset.Equals(asset) {
		return errors.Wrapf(errors.ErrState, "source holder keeps %s", sender.Asset)
	}
	if sender.Balance < amount {
		return errors.Wrapf(ErrInsufficientFunds, "balance %d, want %d", sender.Balance, amount)
	}

	// A transfer to self passed all checks and changes nothing. Loading
	// the record twice and saving both copies would double the amount.
	if src.Equals(dst) {
		return nil
	}

	var recipient Holder
	if err := c.holders.One(db, HolderAddress(dst, asset), &recipient); err != nil {
		return errors.Wrap(err, "destination holder")
	}
	if !recipient.Asset.Equals(asset) {
		return errors.Wrapf(errors.ErrState, "destination holder keeps %s", recipient.Asset)
	}
	if recipient.Balance > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "destination balance")
	}

	sender.Balance -= amount
	recipient.Balance += amount
	if err := c.holders.Put(db, HolderAddress(src, asset), &sender); err != nil {
		return errors.Wrap(err, "cannot save source")
	}
	return errors.Wrap(c.holders.Put(db, HolderAddress(dst, asset), &recipient), "cannot save destination")
}

func (c *BankController) MoveChecked(db pairswap.KVStore, auth Authority, src, dst, asset pairswap.Identity, amount uint64, decimals uint8) error {
	mint, err := c.mint(db, asset)
	if err != nil {
		return err
	}
	if mint.Decimals != decimals {
		return errors.Wrapf(ErrDecimalMismatch, "mint keeps %d decimals", mint.Decimals)
	}
	return c.Move(db, auth, src, dst, asset, amount)
}

func (c *BankController) CreateHolder(db pairswap.KVStore, owner, asset, payer pairswap.Identity) error {
	if _, err := c.mint(db, asset); err != nil {
		return err
	}
	if err := c.holders.Has(db, HolderAddress(owner, asset)); err == nil {
		return errors.Wrapf(errors.ErrDuplicate, "holder of %s", asset)
	}
	if err := c.moveNative(db, payer, rentPool, HolderRent); err != nil {
		return errors.Wrap(err, "rent reserve")
	}
	holder := Holder{Owner: owner, Asset: asset}
	return errors.Wrap(c.holders.Put(db, HolderAddress(owner, asset), &holder), "cannot create holder")
}

func (c *BankController) EnsureHolder(db pairswap.KVStore, owner, asset, payer pairswap.Identity) error {
	if err := c.holders.Has(db, HolderAddress(owner, asset)); err == nil {
		if _, err := c.mint(db, asset); err != nil {
			return err
		}
		return nil
	}
	return c.CreateHolder(db, owner, asset, payer)
}

func (c *BankController) CloseHolder(db pairswap.KVStore, owner, asset, rentDest pairswap.Identity) error {
	key := HolderAddress(owner, asset)
	var holder Holder
	if err := c.holders.One(db, key, &holder); err != nil {
		return errors.Wrap(err, "cannot load holder")
	}
	if holder.Balance != 0 {
		return errors.Wrapf(ErrHolderNotEmpty, "balance %d", holder.Balance)
	}
	if err := c.holders.Delete(db, key); err != nil {
		return errors.Wrap(err, "cannot delete holder")
	}
	return errors.Wrap(c.moveNative(db, rentPool, rentDest, HolderRent), "rent refund")
}

func (c *BankController) ChargeRent(db pairswap.KVStore, payer pairswap.Identity, amount uint64) error {
	return c.moveNative(db, payer, rentPool, amount)
}

func (c *BankController) RefundRent(db pairswap.KVStore, dest pairswap.Identity, amount uint64) error {
	return c.moveNative(db, rentPool, dest, amount)
}

func (c *BankController) Issue(db pairswap.KVStore, owner, asset pairswap.Identity, amount uint64) error {
	if _, err := c.mint(db, asset); err != nil {
		return err
	}
	return c.creditNative(db, owner, asset, amount)
}

func (c *BankController) RegisterMint(db pairswap.KVStore, asset pairswap.Identity, decimals uint8) error {
	if err := c.mints.Has(db, asset); err == nil {
		return errors.Wrapf(errors.ErrDuplicate, "mint %s", asset)
	}
	mint := Mint{ID: asset, Decimals: decimals}
	return errors.Wrap(c.mints.Put(db, asset, &mint), "cannot register mint")
}

func (c *BankController) mint(db pairswap.ReadOnlyKVStore, asset pairswap.Identity) (*Mint, error) {
	var mint Mint
	if err := c.mints.One(db, asset, &mint); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrapf(ErrUnknownMint, "%s", asset)
		}
		return nil, errors.Wrap(err, "cannot load mint")
	}
	return &mint, nil
}

// moveNative shuffles rent reserves around. This is internal bookkeeping
// between accounts the controller itself manages, so no authority is taken.
// The destination holder is created on demand and rent free.
func (c *BankController) moveNative(db pairswap.KVStore, src, dst pairswap.Identity, amount uint64) error {
	if amount == 0 {
		return nil
	}
	var sender Holder
	if err := c.holders.One(db, HolderAddress(src, NativeMint), &sender); err != nil {
		return errors.Wrap(err, "native holder")
	}
	if sender.Balance < amount {
		return errors.Wrapf(ErrInsufficientFunds, "native balance %d, want %d", sender.Balance, amount)
	}
	sender.Balance -= amount
	if err := c.holders.Put(db, HolderAddress(src, NativeMint), &sender); err != nil {
		return errors.Wrap(err, "cannot save native source")
	}
	return c.creditNative(db, dst, NativeMint, amount)
}

// creditNative adds to a balance, creating the holder on demand without a
// rent charge.
func (c *BankController) creditNative(db pairswap.KVStore, owner, asset pairswap.Identity, amount uint64) error {
	key := HolderAddress(owner, asset)
	holder := Holder{Owner: owner, Asset: asset}
	switch err := c.holders.One(db, key, &holder); {
	case err == nil, errors.ErrNotFound.Is(err):
	default:
		return errors.Wrap(err, "cannot load holder")
	}
	if holder.Balance > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "balance")
	}
	holder.Balance += amount
	return errors.Wrap(c.holders.Put(db, key, &holder), "cannot save holder")
}
