package pairswap

import (
	"testing"

	"github.com/iov-one/pairswap/swaptest/assert"
)

func TestConditionParse(t *testing.T) {
	cases := map[string]struct {
		cond    Condition
		wantErr bool
	}{
		"valid":               {cond: NewCondition("token", "holder", []byte("data"))},
		"binary data":         {cond: NewCondition("escrow", "seed", []byte{0, 1, 0xA, 0xFF})},
		"data with newline":   {cond: NewCondition("escrow", "seed", []byte("a\nb"))},
		"extension too short": {cond: NewCondition("ab", "holder", []byte("data")), wantErr: true},
		"extension too long":  {cond: NewCondition("abcdefghi", "holder", []byte("data")), wantErr: true},
		"empty data":          {cond: NewCondition("token", "holder", nil), wantErr: true},
		"garbage":             {cond: Condition("foobar"), wantErr: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ext, typ, data, err := tc.cond.Parse()
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parsed as %s/%s/%X", ext, typ, data)
				}
				if err := tc.cond.Validate(); err == nil {
					t.Fatal("validate must reject what parse rejects")
				}
				return
			}
			assert.Nil(t, err)
			assert.Nil(t, tc.cond.Validate())
			assert.Equal(t, tc.cond, NewCondition(ext, typ, data))
		})
	}
}

func TestConditionIdentity(t *testing.T) {
	a := NewCondition("token", "holder", []byte("data"))
	b := NewCondition("token", "holder", []byte("data"))
	if !a.Equals(b) {
		t.Fatal("equal conditions differ")
	}
	if !a.Identity().Equals(b.Identity()) {
		t.Fatal("identity derivation is not deterministic")
	}

	c := NewCondition("token", "holder", []byte("zata"))
	if a.Identity().Equals(c.Identity()) {
		t.Fatal("different conditions control the same account")
	}
	assert.Nil(t, a.Identity().Validate())
}
