package token

import (
	"testing"

	"github.com/iov-one/pairswap"
	"github.com/iov-one/pairswap/errors"
	"github.com/iov-one/pairswap/swaptest"
	"github.com/iov-one/pairswap/swaptest/assert"
)

func TestHolderAddress(t *testing.T) {
	alice := swaptest.NewIdentity()
	bob := swaptest.NewIdentity()
	asset := swaptest.NewIdentity()

	a := HolderAddress(alice, asset)
	assert.Nil(t, a.Validate())
	assert.Equal(t, a, HolderAddress(alice, asset))

	if a.Equals(HolderAddress(bob, asset)) {
		t.Fatal("different owners share a holder")
	}
	if a.Equals(HolderAddress(alice, NativeMint)) {
		t.Fatal("different assets share a holder")
	}
	// Owner and asset must not be interchangeable.
	if a.Equals(HolderAddress(asset, alice)) {
		t.Fatal("swapped owner and asset share a holder")
	}
}

func TestHolderSerialization(t *testing.T) {
	h := Holder{
		Owner:   swaptest.NewIdentity(),
		Asset:   swaptest.NewIdentity(),
		Balance: 123456789,
	}
	raw, err := h.Marshal()
	assert.Nil(t, err)
	assert.Equal(t, holderSize, len(raw))

	var got Holder
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, h, got)

	raw[0] = mintTag
	assert.IsErr(t, errors.ErrType, got.Unmarshal(raw))
	assert.IsErr(t, errors.ErrInput, got.Unmarshal(raw[1:]))
}

func TestMintValidate(t *testing.T) {
	good := Mint{ID: swaptest.NewIdentity(), Decimals: 6}
	assert.Nil(t, good.Validate())

	bad := Mint{ID: pairswap.Identity("short"), Decimals: 6}
	err := bad.Validate()
	assert.IsErr(t, errors.ErrInput, err)
	assert.FieldError(t, err, "ID", errors.ErrInput)
}
