package pairswap

import (
	"reflect"

	"github.com/iov-one/pairswap/errors"
)

// Marshaller is anything that can be represented in binary.
//
// Marshall may validate the data before serializing it and unless you
// previously validated the struct, errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal
//
// This is separated from Marshal, as this almost always requires a pointer,
// and functions that only need to marshal bytes can use the Marshaller
// interface to access non-pointers.
//
// As with Marshaller, this may do internal validation on the data and errors
// should be expected.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Msg is a request for the ledger to take an action (make a state
// transition). It is just the request, and must be validated by the Handlers.
// All authentication information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Validate performs a sanity check on the message content. It must not
	// touch any account state.
	Validate() error

	// Path returns the message path. This is used by the Router to locate
	// the proper Handler. Msg should be created alongside the Handler that
	// corresponds to them.
	Path() string
}

// Tx represents the data sent from the user to the chain. It includes the
// actual message, along with information needed to authenticate the sender.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate.
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message, or (missing) if no message.
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg extracts the message from the transaction, validates it and loads
// it into the destination. Destination must be a non nil pointer to a message
// instance of the same type as carried by the transaction.
//
// Because the message is validated here, a handler can rely on it being
// sensible before touching any account state.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dval := reflect.ValueOf(destination)
	if dval.Kind() != reflect.Ptr || dval.IsNil() {
		return errors.Wrap(errors.ErrType, "destination must be a non nil pointer")
	}
	mval := reflect.ValueOf(msg)
	if mval.Type() != dval.Type() {
		return errors.Wrapf(errors.ErrType, "want %T, got %T", destination, msg)
	}
	dval.Elem().Set(mval.Elem())
	return nil
}
