package pairswap

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/iov-one/pairswap/errors"
)

// IdentityLength is the length of all account identities. A keyed party is
// identified by its raw ed25519 public key, a derived account by the full
// sha256 digest of its condition preimage. Both are 32 bytes.
const IdentityLength = 32

// Identity identifies an account on the ledger. It is either a public key
// (there is a private key and the owner can sign) or a condition digest
// (there is no private key, control requires proving the preimage).
type Identity []byte

// NewIdentity hashes the given data into a valid identity.
func NewIdentity(data []byte) Identity {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return h[:]
}

// Clone returns an independent copy.
func (a Identity) Clone() Identity {
	if a == nil {
		return nil
	}
	return append(Identity{}, a...)
}

// Equals checks if two identities are the same.
func (a Identity) Equals(b Identity) bool {
	return bytes.Equal(a, b)
}

// String returns a human readable hex representation.
func (a Identity) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Validate returns an error if the identity is not the valid size.
func (a Identity) Validate() error {
	if len(a) != IdentityLength {
		return errors.Wrapf(errors.ErrInput, "identity: %X", []byte(a))
	}
	return nil
}

// MarshalJSON provides a hex representation for JSON, to override the
// standard base64 []byte encoding.
func (a Identity) MarshalJSON() ([]byte, error) {
	var s string
	if a != nil {
		s = strings.ToUpper(hex.EncodeToString(a))
	}
	return json.Marshal(s)
}

// UnmarshalJSON parses the hex representation.
func (a *Identity) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	if len(enc) == 0 {
		*a = nil
		return nil
	}
	id, err := ParseIdentity(enc)
	if err != nil {
		return err
	}
	*a = id
	return nil
}

// ParseIdentity converts a hex encoded string into an identity.
func ParseIdentity(enc string) (Identity, error) {
	val, err := hex.DecodeString(enc)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode hex")
	}
	id := Identity(val)
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return id, nil
}
