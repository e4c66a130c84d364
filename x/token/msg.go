package token

import (
	"encoding/binary"

	"github.com/iov-one/pairswap"
	"github.com/iov-one/pairswap/errors"
)

const (
	pathSendMsg = "token/send"

	// sendTag is the operation tag of the wire encoding.
	sendTag byte = 0x10

	sendMsgSize = 1 + 3*pairswap.IdentityLength + 8 + 1
)

var _ pairswap.Msg = (*SendMsg)(nil)

// SendMsg transfers an amount of one asset between two parties.
type SendMsg struct {
	Source      pairswap.Identity
	Destination pairswap.Identity
	Asset       pairswap.Identity
	Amount      uint64
	// Decimals is the precision the sender believes the asset is kept in.
	// The transfer fails when it differs from the mint registration.
	Decimals uint8
}

// Path fulfills pairswap.Msg interface to allow routing.
func (SendMsg) Path() string {
	return pathSendMsg
}

// Validate makes sure that this is sensible.
func (m *SendMsg) Validate() error {
	if err := m.Source.Validate(); err != nil {
		return errors.Field("Source", err, "invalid source")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Field("Destination", err, "invalid destination")
	}
	if err := m.Asset.Validate(); err != nil {
		return errors.Field("Asset", err, "invalid asset")
	}
	if m.Amount == 0 {
		return errors.Field("Amount", errors.ErrAmount, "must be positive")
	}
	return nil
}

// Marshal encodes the message into its fixed size wire form.
func (m *SendMsg) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	raw := make([]byte, 0, sendMsgSize)
	raw = append(raw, sendTag)
	raw = append(raw, m.Source...)
	raw = append(raw, m.Destination...)
	raw = append(raw, m.Asset...)
	var amt [8]byte
	binary.LittleEndian.PutUint64(amt[:], m.Amount)
	raw = append(raw, amt[:]...)
	raw = append(raw, m.Decimals)
	return raw, nil
}

// Unmarshal decodes the fixed size wire form.
func (m *SendMsg) Unmarshal(raw []byte) error {
	if len(raw) != sendMsgSize {
		return errors.Wrapf(errors.ErrInput, "send message: %d bytes", len(raw))
	}
	if raw[0] != sendTag {
		return errors.Wrapf(errors.ErrType, "operation tag: %d", raw[0])
	}
	cut := raw[1:]
	m.Source = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	cut = cut[pairswap.IdentityLength:]
	m.Destination = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	cut = cut[pairswap.IdentityLength:]
	m.Asset = append(pairswap.Identity{}, cut[:pairswap.IdentityLength]...)
	cut = cut[pairswap.IdentityLength:]
	m.Amount = binary.LittleEndian.Uint64(cut[:8])
	m.Decimals = cut[8]
	return nil
}
