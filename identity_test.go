package pairswap

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/pairswap/errors"
)

func TestNewIdentity(t *testing.T) {
	if NewIdentity(nil) != nil {
		t.Fatal("nil data must produce a nil identity")
	}

	a := NewIdentity([]byte("foo"))
	if err := a.Validate(); err != nil {
		t.Fatalf("fresh identity is invalid: %+v", err)
	}
	b := NewIdentity([]byte("foo"))
	if !a.Equals(b) {
		t.Fatal("hashing is not deterministic")
	}
	c := NewIdentity([]byte("bar"))
	if a.Equals(c) {
		t.Fatal("different data must hash differently")
	}
}

func TestIdentityValidate(t *testing.T) {
	cases := map[string]struct {
		id      Identity
		wantErr *errors.Error
	}{
		"valid 32 bytes": {
			id:      make(Identity, IdentityLength),
			wantErr: nil,
		},
		"nil": {
			id:      nil,
			wantErr: errors.ErrInput,
		},
		"too short": {
			id:      make(Identity, 20),
			wantErr: errors.ErrInput,
		},
		"too long": {
			id:      make(Identity, 33),
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.id.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %+v", err)
				}
			} else if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestIdentityClone(t *testing.T) {
	a := NewIdentity([]byte("foo"))
	b := a.Clone()
	if !a.Equals(b) {
		t.Fatal("clone differs from the original")
	}
	b[0]++
	if a.Equals(b) {
		t.Fatal("clone shares memory with the original")
	}
}

func TestParseIdentity(t *testing.T) {
	a := NewIdentity([]byte("foo"))
	b, err := ParseIdentity(a.String())
	if err != nil {
		t.Fatalf("cannot parse: %+v", err)
	}
	if !a.Equals(b) {
		t.Fatalf("parse round trip: %s != %s", a, b)
	}

	if _, err := ParseIdentity("zzzz"); err == nil {
		t.Fatal("non-hex content must not parse")
	}
	if _, err := ParseIdentity("abcd"); !errors.ErrInput.Is(err) {
		t.Fatalf("short content must not parse: %+v", err)
	}
}

func TestIdentityJSON(t *testing.T) {
	a := NewIdentity([]byte("foo"))
	raw, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("cannot marshal: %+v", err)
	}
	var b Identity
	if err := json.Unmarshal(raw, &b); err != nil {
		t.Fatalf("cannot unmarshal: %+v", err)
	}
	if !a.Equals(b) {
		t.Fatalf("serialization round trip: %s != %s", a, b)
	}

	var c Identity
	if err := json.Unmarshal([]byte(`"zzzz"`), &c); err == nil {
		t.Fatal("non-hex content must not parse")
	}
}
