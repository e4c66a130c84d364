package swaptest

import (
	"github.com/iov-one/pairswap"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of the referenced identities. You can use
// either Signer or Signers (or both) attributes. Each time all signers,
// regardless which attribute, are considered.
type Auth struct {
	// Signer represents an authentication of a single signer. This is a
	// convenience attribute when testing with a single signer.
	Signer pairswap.Identity

	// Signers represents an authentication of multiple signers.
	Signers []pairswap.Identity
}

func (a *Auth) GetIdentities(pairswap.Context) []pairswap.Identity {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasIdentity(ctx pairswap.Context, id pairswap.Identity) bool {
	for _, s := range a.Signers {
		if id.Equals(s) {
			return true
		}
	}
	if a.Signer == nil {
		return false
	}
	return id.Equals(a.Signer)
}
