package x

import (
	"github.com/iov-one/pairswap"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of handlers,
// so we can plug in another authentication system, rather than hard-coding
// one implementation for all extensions.
type Authenticator interface {
	// GetIdentities reveals all authenticated identities.
	GetIdentities(pairswap.Context) []pairswap.Identity

	// HasIdentity checks if the given identity authorized this request.
	HasIdentity(pairswap.Context, pairswap.Identity) bool
}

// MultiAuth chains together many Authenticators into one.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetIdentities combines all identities from all Authenticators.
func (m MultiAuth) GetIdentities(ctx pairswap.Context) []pairswap.Identity {
	var res []pairswap.Identity
	for _, impl := range m.impls {
		add := impl.GetIdentities(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasIdentity returns true iff any Authenticator supports this.
func (m MultiAuth) HasIdentity(ctx pairswap.Context, id pairswap.Identity) bool {
	for _, impl := range m.impls {
		if impl.HasIdentity(ctx, id) {
			return true
		}
	}
	return false
}

// MainSigner returns the first identity, or nil if none was authenticated.
func MainSigner(ctx pairswap.Context, auth Authenticator) pairswap.Identity {
	signers := auth.GetIdentities(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}
