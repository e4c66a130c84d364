package token

import (
	"encoding/binary"

	"github.com/iov-one/pairswap"
	"github.com/iov-one/pairswap/errors"
	"github.com/iov-one/pairswap/orm"
)

const (
	// mintTag and holderTag are the persisted record type tags.
	mintTag   byte = 0x03
	holderTag byte = 0x02

	mintSize   = 1 + pairswap.IdentityLength + 1
	holderSize = 1 + 2*pairswap.IdentityLength + 8
)

// NativeMint is the identity of the asset that denominates storage rent.
var NativeMint = pairswap.NewCondition("token", "mint", []byte("native")).Identity()

// rentPool collects holder rent reserves until they are refunded on close.
var rentPool = pairswap.NewCondition("token", "pool", []byte("rent")).Identity()

// HolderAddress is the balance-holder derivation convention: the identity of
// the holder account keeping owner's balance of the given asset.
func HolderAddress(owner, asset pairswap.Identity) pairswap.Identity {
	data := make([]byte, 0, 2*pairswap.IdentityLength)
	data = append(data, owner...)
	data = append(data, asset...)
	return pairswap.NewCondition("token", "holder", data).Identity()
}

// Mint describes a registered fungible asset.
type Mint struct {
	// ID is the asset identity.
	ID pairswap.Identity
	// Decimals is the precision all balances of this asset are kept in.
	Decimals uint8
}

var _ orm.Model = (*Mint)(nil)

// Validate ensures the mint is valid.
func (m *Mint) Validate() error {
	return errors.Field("ID", m.ID.Validate(), "invalid asset identity")
}

// Copy returns an independent instance.
func (m *Mint) Copy() orm.Model {
	return &Mint{
		ID:       m.ID.Clone(),
		Decimals: m.Decimals,
	}
}

// Marshal encodes the mint into its fixed size binary form.
func (m *Mint) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	raw := make([]byte, 0, mintSize)
	raw = append(raw, mintTag)
	raw = append(raw, m.ID...)
	raw = append(raw, m.Decimals)
	return raw, nil
}

// Unmarshal decodes the fixed size binary form.
func (m *Mint) Unmarshal(raw []byte) error {
	if len(raw) != mintSize {
		return errors.Wrapf(errors.ErrInput, "mint: %d bytes", len(raw))
	}
	if raw[0] != mintTag {
		return errors.Wrapf(errors.ErrType, "mint record tag: %d", raw[0])
	}
	m.ID = append(pairswap.Identity{}, raw[1:1+pairswap.IdentityLength]...)
	m.Decimals = raw[1+pairswap.IdentityLength]
	return nil
}

// Holder is a balance-holder account: the balance of one asset kept for one
// owner. It is stored under HolderAddress(owner, asset).
type Holder struct {
	Owner   pairswap.Identity
	Asset   pairswap.Identity
	Balance uint64
}

var _ orm.Model = (*Holder)(nil)

// Validate ensures the holder is valid.
func (h *Holder) Validate() error {
	if err := h.Owner.Validate(); err != nil {
		return errors.Field("Owner", err, "invalid owner")
	}
	if err := h.Asset.Validate(); err != nil {
		return errors.Field("Asset", err, "invalid asset")
	}
	return nil
}

// Copy returns an independent instance.
func (h *Holder) Copy() orm.Model {
	return &Holder{
		Owner:   h.Owner.Clone(),
		Asset:   h.Asset.Clone(),
		Balance: h.Balance,
	}
}

// Marshal encodes the holder into its fixed size binary form:
// 1 byte record tag, 32 byte owner, 32 byte asset, 8 byte
// little-endian balance.
func (h *Holder) Marshal() ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	raw := make([]byte, 0, holderSize)
	raw = append(raw, holderTag)
	raw = append(raw, h.Owner...)
	raw = append(raw, h.Asset...)
	var amt [8]byte
	binary.LittleEndian.PutUint64(amt[:], h.Balance)
	raw = append(raw, amt[:]...)
	return raw, nil
}

// Unmarshal decodes the fixed size binary form.
func (h *Holder) Unmarshal(raw []byte) error {
	if len(raw) != holderSize {
		return errors.Wrapf(errors.ErrInput, "holder: %d bytes", len(raw))
	}
	if raw[0] != holderTag {
		return errors.Wrapf(errors.ErrType, "holder record tag: %d", raw[0])
	}
	cut := raw[1:]
	h.Owner = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	cut = cut[pairswap.IdentityLength:]
	h.Asset = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	cut = cut[pairswap.IdentityLength:]
	h.Balance = binary.LittleEndian.Uint64(cut)
	return nil
}

// NewMintBucket returns a bucket for storing mints.
func NewMintBucket() orm.ModelBucket {
	return orm.NewModelBucket("mnt", &Mint{})
}

// NewHolderBucket returns a bucket for storing holder accounts.
func NewHolderBucket() orm.ModelBucket {
	return orm.NewModelBucket("tok", &Holder{})
}
