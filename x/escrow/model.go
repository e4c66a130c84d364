package escrow

import (
	"encoding/binary"

	"github.com/iov-one/pairswap"
	"github.com/iov-one/pairswap/errors"
	"github.com/iov-one/pairswap/orm"
)

const (
	// escrowTag is the persisted record type tag.
	escrowTag byte = 0x01

	escrowSize = 1 + 8 + 3*pairswap.IdentityLength + 8 + 1
)

// Escrow is an open exchange offer. It is stored under the identity derived
// from (maker, seed) and controls the vault holding the deposited asset.
type Escrow struct {
	// Seed distinguishes multiple escrows opened by the same maker.
	Seed uint64
	// Maker opened the escrow and is the only party allowed to cancel it.
	Maker pairswap.Identity
	// MintA is the asset deposited in the vault.
	MintA pairswap.Identity
	// MintB is the asset demanded from a taker.
	MintB pairswap.Identity
	// ReceiveAmount is the amount of MintB a taker must pay the maker.
	ReceiveAmount uint64
	// Bump is the derivation nudge that produced a keyless record identity.
	Bump byte
}

var _ orm.Model = (*Escrow)(nil)

// Validate ensures the escrow record is valid.
func (e *Escrow) Validate() error {
	if err := e.Maker.Validate(); err != nil {
		return errors.Field("Maker", err, "invalid maker")
	}
	if err := e.MintA.Validate(); err != nil {
		return errors.Field("MintA", err, "invalid mint a")
	}
	if err := e.MintB.Validate(); err != nil {
		return errors.Field("MintB", err, "invalid mint b")
	}
	if e.ReceiveAmount == 0 {
		return errors.Field("ReceiveAmount", ErrInvalidAmount, "must be positive")
	}
	return nil
}

// Copy returns an independent instance.
func (e *Escrow) Copy() orm.Model {
	return &Escrow{
		Seed:          e.Seed,
		Maker:         e.Maker.Clone(),
		MintA:         e.MintA.Clone(),
		MintB:         e.MintB.Clone(),
		ReceiveAmount: e.ReceiveAmount,
		Bump:          e.Bump,
	}
}

// Marshal encodes the escrow into its fixed size binary form: 1 byte record
// tag, 8 byte little-endian seed, 32 byte maker, 32 byte mint A, 32 byte
// mint B, 8 byte little-endian receive amount, 1 byte bump.
func (e *Escrow) Marshal() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	raw := make([]byte, 0, escrowSize)
	raw = append(raw, escrowTag)
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], e.Seed)
	raw = append(raw, n[:]...)
	raw = append(raw, e.Maker...)
	raw = append(raw, e.MintA...)
	raw = append(raw, e.MintB...)
	binary.LittleEndian.PutUint64(n[:], e.ReceiveAmount)
	raw = append(raw, n[:]...)
	raw = append(raw, e.Bump)
	return raw, nil
}

// Unmarshal decodes the fixed size binary form.
func (e *Escrow) Unmarshal(raw []byte) error {
	if len(raw) != escrowSize {
		return errors.Wrapf(errors.ErrInput, "escrow: %d bytes", len(raw))
	}
	if raw[0] != escrowTag {
		return errors.Wrapf(errors.ErrType, "escrow record tag: %d", raw[0])
	}
	cut := raw[1:]
	e.Seed = binary.LittleEndian.Uint64(cut)
	cut = cut[8:]
	e.Maker = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	cut = cut[pairswap.IdentityLength:]
	e.MintA = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	cut = cut[pairswap.IdentityLength:]
	e.MintB = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	cut = cut[pairswap.IdentityLength:]
	e.ReceiveAmount = binary.LittleEndian.Uint64(cut)
	e.Bump = cut[8]
	return nil
}

// NewBucket returns a bucket for storing escrow records.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket("esc", &Escrow{})
}
