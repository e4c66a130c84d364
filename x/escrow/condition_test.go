package escrow

import (
	"testing"

	"github.com/iov-one/pairswap/errors"
	"github.com/iov-one/pairswap/swaptest"
	"github.com/iov-one/pairswap/swaptest/assert"
	"github.com/iov-one/pairswap/x/token"
)

func TestRecordAddressDeterministic(t *testing.T) {
	maker := swaptest.NewIdentity()

	record, bump, err := RecordAddress(maker, 42)
	assert.Nil(t, err)
	assert.Nil(t, record.Validate())

	again, bump2, err := RecordAddress(maker, 42)
	assert.Nil(t, err)
	assert.Equal(t, record, again)
	assert.Equal(t, bump, bump2)

	assert.Equal(t, record, RecordAddressAt(maker, 42, bump))
}

func TestRecordAddressSeparation(t *testing.T) {
	maker := swaptest.NewIdentity()
	other := swaptest.NewIdentity()

	a, _, err := RecordAddress(maker, 1)
	assert.Nil(t, err)
	b, _, err := RecordAddress(maker, 2)
	assert.Nil(t, err)
	c, _, err := RecordAddress(other, 1)
	assert.Nil(t, err)

	if a.Equals(b) {
		t.Fatal("different seeds derived the same record")
	}
	if a.Equals(c) {
		t.Fatal("different makers derived the same record")
	}
}

func TestVaultAddress(t *testing.T) {
	maker := swaptest.NewIdentity()
	mintA := swaptest.NewIdentity()
	record, _, err := RecordAddress(maker, 1)
	assert.Nil(t, err)

	vault := VaultAddress(record, mintA)
	assert.Equal(t, token.HolderAddress(record, mintA), vault)
	if vault.Equals(record) {
		t.Fatal("vault and record share an identity")
	}
}

func TestProveAuthority(t *testing.T) {
	maker := swaptest.NewIdentity()
	record, bump, err := RecordAddress(maker, 42)
	assert.Nil(t, err)

	escrow := &Escrow{
		Seed:          42,
		Maker:         maker,
		MintA:         swaptest.NewIdentity(),
		MintB:         swaptest.NewIdentity(),
		ReceiveAmount: 500,
		Bump:          bump,
	}

	auth, err := proveAuthority(escrow, record)
	assert.Nil(t, err)
	assert.Equal(t, record, auth.Identity())

	// A record that does not match the stored derivation inputs gives no
	// authority.
	_, err = proveAuthority(escrow, swaptest.NewIdentity())
	assert.IsErr(t, errors.ErrUnauthorized, err)

	tampered := escrow.Copy().(*Escrow)
	tampered.Seed = 43
	_, err = proveAuthority(tampered, record)
	assert.IsErr(t, errors.ErrUnauthorized, err)
}
