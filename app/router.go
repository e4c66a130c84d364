package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/pairswap"
	"github.com/iov-one/pairswap/errors"
)

var isPath = regexp.MustCompile(`^[a-z]+(/[a-z]+)+$`).MatchString

// Router is a registry of handlers that dispatches each transaction to the
// handler registered for its message path. It is itself a Handler, so it can
// be wrapped by a TxRunner.
type Router struct {
	routes map[string]pairswap.Handler
}

var _ pairswap.Registry = (*Router)(nil)
var _ pairswap.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]pairswap.Handler),
	}
}

// Handle assigns the handler to the message's path. It panics on an invalid
// path or a duplicate registration, as both are programmer errors wiring up
// the application.
func (r *Router) Handle(m pairswap.Msg, h pairswap.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("double registration of path: %q", path))
	}
	r.routes[path] = h
}

// Check dispatches to the handler registered for the transaction's message
// path.
func (r *Router) Check(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*pairswap.CheckResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, db, tx)
}

// Deliver dispatches to the handler registered for the transaction's message
// path.
func (r *Router) Deliver(ctx pairswap.Context, db pairswap.KVStore, tx pairswap.Tx) (*pairswap.DeliverResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}

func (r *Router) handler(tx pairswap.Tx) (pairswap.Handler, error) {
	path := pairswap.GetPath(tx)
	if h, ok := r.routes[path]; ok {
		return h, nil
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", path)
}
