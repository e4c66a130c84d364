package escrow

import (
	"encoding/binary"

	"github.com/iov-one/pairswap"
	"github.com/iov-one/pairswap/errors"
)

const (
	pathCreateMsg  = "escrow/create"
	pathFulfillMsg = "escrow/fulfill"
	pathCancelMsg  = "escrow/cancel"

	// Operation tags of the wire encoding.
	createTag  byte = 0x01
	fulfillTag byte = 0x02
	cancelTag  byte = 0x03

	createMsgSize  = 1 + 8 + 3*pairswap.IdentityLength + 8 + 8
	fulfillMsgSize = 1 + 5*pairswap.IdentityLength
	cancelMsgSize  = 1 + 3*pairswap.IdentityLength
)

var _ pairswap.Msg = (*CreateMsg)(nil)

// CreateMsg opens an escrow: the maker deposits DepositAmount of MintA into
// a fresh vault and demands ReceiveAmount of MintB in return.
type CreateMsg struct {
	Seed          uint64
	Maker         pairswap.Identity
	MintA         pairswap.Identity
	MintB         pairswap.Identity
	ReceiveAmount uint64
	DepositAmount uint64
}

// Path fulfills pairswap.Msg interface to allow routing.
func (CreateMsg) Path() string {
	return pathCreateMsg
}

// Validate makes sure that this is sensible.
func (m *CreateMsg) Validate() error {
	if err := m.Maker.Validate(); err != nil {
		return errors.Field("Maker", err, "invalid maker")
	}
	if err := m.MintA.Validate(); err != nil {
		return errors.Field("MintA", err, "invalid mint a")
	}
	if err := m.MintB.Validate(); err != nil {
		return errors.Field("MintB", err, "invalid mint b")
	}
	if m.ReceiveAmount == 0 {
		return errors.Field("ReceiveAmount", ErrInvalidAmount, "must be positive")
	}
	if m.DepositAmount == 0 {
		return errors.Field("DepositAmount", ErrInvalidAmount, "must be positive")
	}
	return nil
}

// Marshal encodes the message into its fixed size wire form.
func (m *CreateMsg) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	raw := make([]byte, 0, createMsgSize)
	raw = append(raw, createTag)
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], m.Seed)
	raw = append(raw, n[:]...)
	raw = append(raw, m.Maker...)
	raw = append(raw, m.MintA...)
	raw = append(raw, m.MintB...)
	binary.LittleEndian.PutUint64(n[:], m.ReceiveAmount)
	raw = append(raw, n[:]...)
	binary.LittleEndian.PutUint64(n[:], m.DepositAmount)
	raw = append(raw, n[:]...)
	return raw, nil
}

// Unmarshal decodes the fixed size wire form.
func (m *CreateMsg) Unmarshal(raw []byte) error {
	if len(raw) != createMsgSize {
		return errors.Wrapf(errors.ErrInput, "create message: %d bytes", len(raw))
	}
	if raw[0] != createTag {
		return errors.Wrapf(errors.ErrType, "operation tag: %d", raw[0])
	}
	cut := raw[1:]
	m.Seed = binary.LittleEndian.Uint64(cut)
	cut = cut[8:]
	m.Maker = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	cut = cut[pairswap.IdentityLength:]
	m.MintA = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	cut = cut[pairswap.IdentityLength:]
	m.MintB = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	cut = cut[pairswap.IdentityLength:]
	m.ReceiveAmount = binary.LittleEndian.Uint64(cut)
	m.DepositAmount = binary.LittleEndian.Uint64(cut[8:])
	return nil
}

var _ pairswap.Msg = (*FulfillMsg)(nil)

// FulfillMsg completes an escrow: the taker pays the demanded amount of
// MintB to the maker and receives the whole vault balance of MintA. The
// maker and mint fields restate the taker's expectation and must match the
// stored record.
type FulfillMsg struct {
	Escrow pairswap.Identity
	Maker  pairswap.Identity
	MintA  pairswap.Identity
	MintB  pairswap.Identity
	Taker  pairswap.Identity
}

// Path fulfills pairswap.Msg interface to allow routing.
func (FulfillMsg) Path() string {
	return pathFulfillMsg
}

// Validate makes sure that this is sensible.
func (m *FulfillMsg) Validate() error {
	if err := m.Escrow.Validate(); err != nil {
		return errors.Field("Escrow", err, "invalid escrow")
	}
	if err := m.Maker.Validate(); err != nil {
		return errors.Field("Maker", err, "invalid maker")
	}
	if err := m.MintA.Validate(); err != nil {
		return errors.Field("MintA", err, "invalid mint a")
	}
	if err := m.MintB.Validate(); err != nil {
		return errors.Field("MintB", err, "invalid mint b")
	}
	if err := m.Taker.Validate(); err != nil {
		return errors.Field("Taker", err, "invalid taker")
	}
	return nil
}

// Marshal encodes the message into its fixed size wire form.
func (m *FulfillMsg) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	raw := make([]byte, 0, fulfillMsgSize)
	raw = append(raw, fulfillTag)
	raw = append(raw, m.Escrow...)
	raw = append(raw, m.Maker...)
	raw = append(raw, m.MintA...)
	raw = append(raw, m.MintB...)
	raw = append(raw, m.Taker...)
	return raw, nil
}

// Unmarshal decodes the fixed size wire form.
func (m *FulfillMsg) Unmarshal(raw []byte) error {
	if len(raw) != fulfillMsgSize {
		return errors.Wrapf(errors.ErrInput, "fulfill message: %d bytes", len(raw))
	}
	if raw[0] != fulfillTag {
		return errors.Wrapf(errors.ErrType, "operation tag: %d", raw[0])
	}
	cut := raw[1:]
	m.Escrow = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	cut = cut[pairswap.IdentityLength:]
	m.Maker = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	cut = cut[pairswap.IdentityLength:]
	m.MintA = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	cut = cut[pairswap.IdentityLength:]
	m.MintB = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	cut = cut[pairswap.IdentityLength:]
	m.Taker = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	return nil
}

var _ pairswap.Msg = (*CancelMsg)(nil)

// CancelMsg aborts an escrow: the maker recovers the vault balance and the
// record is destroyed. Only the maker stored in the record may cancel.
type CancelMsg struct {
	Escrow pairswap.Identity
	Maker  pairswap.Identity
	MintA  pairswap.Identity
}

// Path fulfills pairswap.Msg interface to allow routing.
func (CancelMsg) Path() string {
	return pathCancelMsg
}

// Validate makes sure that this is sensible.
func (m *CancelMsg) Validate() error {
	if err := m.Escrow.Validate(); err != nil {
		return errors.Field("Escrow", err, "invalid escrow")
	}
	if err := m.Maker.Validate(); err != nil {
		return errors.Field("Maker", err, "invalid maker")
	}
	if err := m.MintA.Validate(); err != nil {
		return errors.Field("MintA", err, "invalid mint a")
	}
	return nil
}

// Marshal encodes the message into its fixed size wire form.
func (m *CancelMsg) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	raw := make([]byte, 0, cancelMsgSize)
	raw = append(raw, cancelTag)
	raw = append(raw, m.Escrow...)
	raw = append(raw, m.Maker...)
	raw = append(raw, m.MintA...)
	return raw, nil
}

// Unmarshal decodes the fixed size wire form.
func (m *CancelMsg) Unmarshal(raw []byte) error {
	if len(raw) != cancelMsgSize {
		return errors.Wrapf(errors.ErrInput, "cancel message: %d bytes", len(raw))
	}
	if raw[0] != cancelTag {
		return errors.Wrapf(errors.ErrType, "operation tag: %d", raw[0])
	}
	cut := raw[1:]
	m.Escrow = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	cut = cut[pairswap.IdentityLength:]
	m.Maker = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	cut = cut[pairswap.IdentityLength:]
	m.MintA = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	return nil
}

// ParseMsg decodes a wire encoded escrow operation by its leading tag.
func ParseMsg(raw []byte) (pairswap.Msg, error) {
	if len(raw) == 0 {
		return nil, errors.Wrap(errors.ErrInput, "empty message")
	}
	var msg pairswap.Msg
	switch raw[0] {
	case createTag:
		msg = &CreateMsg{}
	case fulfillTag:
		msg = &FulfillMsg{}
	case cancelTag:
		msg = &CancelMsg{}
	default:
		return nil, errors.Wrapf(errors.ErrType, "operation tag: %d", raw[0])
	}
	if err := msg.Unmarshal(raw); err != nil {
		return nil, err
	}
	return msg, nil
}
