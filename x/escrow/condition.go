package escrow

import (
	"encoding/binary"

	"github.com/iov-one/pairswap"
	"github.com/iov-one/pairswap/errors"
	"github.com/iov-one/pairswap/x/token"
)

const (
	derivationExt  = "escrow"
	derivationType = "seed"
)

func derivationData(maker pairswap.Identity, seed uint64) []byte {
	data := make([]byte, 0, pairswap.IdentityLength+8)
	data = append(data, maker...)
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], seed)
	return append(data, n[:]...)
}

// RecordAddress derives the keyless identity an escrow record for (maker,
// seed) is stored under, together with the bump that produced it. The same
// inputs always derive the same identity.
func RecordAddress(maker pairswap.Identity, seed uint64) (pairswap.Identity, byte, error) {
	return pairswap.Derive(derivationExt, derivationType, derivationData(maker, seed))
}

// RecordAddressAt recomputes the record identity for a known bump.
func RecordAddressAt(maker pairswap.Identity, seed uint64, bump byte) pairswap.Identity {
	return pairswap.DeriveAt(derivationExt, derivationType, derivationData(maker, seed), bump)
}

// VaultAddress is the holder account keeping the escrow's deposit: the
// record identity owns its own balance of mint A.
func VaultAddress(record, mintA pairswap.Identity) pairswap.Identity {
	return token.HolderAddress(record, mintA)
}

// proveAuthority establishes control over the keyless record identity by
// recomputing the derivation from the stored (maker, seed, bump). No private
// key for the identity can exist, so a successful recomputation is the only
// way to move funds owned by it.
func proveAuthority(e *Escrow, record pairswap.Identity) (token.Authority, error) {
	if got := RecordAddressAt(e.Maker, e.Seed, e.Bump); !got.Equals(record) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "derivation proof failed")
	}
	return derivedAuthority(record), nil
}

type derivedAuthority pairswap.Identity

func (a derivedAuthority) Identity() pairswap.Identity {
	return pairswap.Identity(a)
}
