package pairswap

import (
	"filippo.io/edwards25519"

	"github.com/iov-one/pairswap/errors"
)

// Derive deterministically computes the identity controlled by the given
// condition components, together with the bump byte that was appended to the
// preimage to find it.
//
// Candidates are tried with the bump descending from 255. A candidate is
// accepted only when its digest is not a valid ed25519 curve point, which
// guarantees that no private key for the identity can exist. Control over a
// derived identity therefore always requires proving the preimage, never a
// signature.
func Derive(ext, typ string, data []byte) (Identity, byte, error) {
	for bump := 255; bump >= 0; bump-- {
		cand := DeriveAt(ext, typ, data, byte(bump))
		if offCurve(cand) {
			return cand, byte(bump), nil
		}
	}
	return nil, 0, errors.Wrapf(errors.ErrState, "no keyless identity for %s/%s", ext, typ)
}

// DeriveAt recomputes the identity for a known bump value. Comparing the
// result with a stored identity is the proof of derivation that substitutes
// for a signature.
func DeriveAt(ext, typ string, data []byte, bump byte) Identity {
	preimage := make([]byte, 0, len(data)+1)
	preimage = append(preimage, data...)
	preimage = append(preimage, bump)
	return NewCondition(ext, typ, preimage).Identity()
}

// offCurve reports whether the 32 byte value is not a canonical encoding of
// an ed25519 curve point.
func offCurve(id Identity) bool {
	_, err := new(edwards25519.Point).SetBytes(id)
	return err != nil
}
