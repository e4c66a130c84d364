package escrow

import (
	"testing"

	"github.com/iov-one/pairswap"
	"github.com/iov-one/pairswap/errors"
	"github.com/iov-one/pairswap/swaptest"
	"github.com/iov-one/pairswap/swaptest/assert"
)

func TestCreateMsgValidate(t *testing.T) {
	valid := func() CreateMsg {
		return CreateMsg{
			Seed:          1,
			Maker:         swaptest.NewIdentity(),
			MintA:         swaptest.NewIdentity(),
			MintB:         swaptest.NewIdentity(),
			ReceiveAmount: 500,
			DepositAmount: 1000,
		}
	}

	m := valid()
	assert.Nil(t, m.Validate())

	// A zero seed is a valid seed.
	m = valid()
	m.Seed = 0
	assert.Nil(t, m.Validate())

	m = valid()
	m.ReceiveAmount = 0
	err := m.Validate()
	assert.IsErr(t, ErrInvalidAmount, err)
	assert.FieldError(t, err, "ReceiveAmount", ErrInvalidAmount)
	assert.FieldError(t, err, "DepositAmount", nil)

	m = valid()
	m.DepositAmount = 0
	err = m.Validate()
	assert.IsErr(t, ErrInvalidAmount, err)
	assert.FieldError(t, err, "DepositAmount", ErrInvalidAmount)

	m = valid()
	m.MintB = nil
	err = m.Validate()
	assert.IsErr(t, errors.ErrInput, err)
	assert.FieldError(t, err, "MintB", errors.ErrInput)
}

func TestParseMsg(t *testing.T) {
	maker := swaptest.NewIdentity()
	taker := swaptest.NewIdentity()
	mintA := swaptest.NewIdentity()
	mintB := swaptest.NewIdentity()
	record := swaptest.NewIdentity()

	cases := map[string]struct {
		msg pairswap.Msg
	}{
		"create": {
			msg: &CreateMsg{
				Seed:          77,
				Maker:         maker,
				MintA:         mintA,
				MintB:         mintB,
				ReceiveAmount: 500,
				DepositAmount: 1000,
			},
		},
		"fulfill": {
			msg: &FulfillMsg{
				Escrow: record,
				Maker:  maker,
				MintA:  mintA,
				MintB:  mintB,
				Taker:  taker,
			},
		},
		"cancel": {
			msg: &CancelMsg{
				Escrow: record,
				Maker:  maker,
				MintA:  mintA,
			},
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			raw, err := tc.msg.Marshal()
			assert.Nil(t, err)

			got, err := ParseMsg(raw)
			assert.Nil(t, err)
			assert.Equal(t, tc.msg, got)
		})
	}
}

func TestParseMsgGarbage(t *testing.T) {
	if _, err := ParseMsg(nil); !errors.ErrInput.Is(err) {
		t.Fatalf("empty input: %+v", err)
	}
	if _, err := ParseMsg([]byte{0x99, 1, 2, 3}); !errors.ErrType.Is(err) {
		t.Fatalf("unknown tag: %+v", err)
	}
	// A create tag with a fulfill sized body must not parse.
	raw := make([]byte, fulfillMsgSize)
	raw[0] = createTag
	if _, err := ParseMsg(raw); !errors.ErrInput.Is(err) {
		t.Fatalf("tag and size mismatch: %+v", err)
	}
}
