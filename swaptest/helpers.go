package swaptest

import (
	"crypto/ed25519"
	"crypto/rand"

	"github.com/iov-one/pairswap"
)

// NewIdentity returns the identity of a fresh keyed account: a random
// ed25519 public key. The private key is thrown away, tests authenticate
// through the Auth mock instead of signatures.
func NewIdentity() pairswap.Identity {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return pairswap.Identity(pub)
}

// Handler is a mock implementation of the pairswap.Handler interface,
// tracking call counts and returning configured results.
type Handler struct {
	checkCall   int
	deliverCall int

	// CheckResult is returned by the Check method.
	CheckResult pairswap.CheckResult
	// DeliverResult is returned by the Deliver method.
	DeliverResult pairswap.DeliverResult
	// CheckErr if set is returned by the Check method.
	CheckErr error
	// DeliverErr if set is returned by the Deliver method.
	DeliverErr error
}

var _ pairswap.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*pairswap.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	return &h.CheckResult, nil
}

func (h *Handler) Deliver(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*pairswap.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	return &h.DeliverResult, nil
}

// CheckCallCount returns the number of times Check was called.
func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

// DeliverCallCount returns the number of times Deliver was called.
func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

// CallCount returns the total number of times Check and Deliver were called.
func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
