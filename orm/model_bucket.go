/*
Package orm provides an easy to use db wrapper.

Break state space into prefixed sections called Buckets. Each bucket contains
only one type of object, addressed by an external key (here: a derived
account identity). Stuff compile-time static, even if it is a bit of
boilerplate.
*/
package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/iov-one/pairswap"
	"github.com/iov-one/pairswap/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// ModelBucket is implemented by buckets that operate on Models.
type ModelBucket interface {
	// One queries the database for a single model instance. Lookup is done
	// by the primary key. Result is loaded into given destination model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db pairswap.ReadOnlyKVStore, key []byte, dest Model) error

	// Put saves given model in the database under the given key.
	Put(db pairswap.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db pairswap.KVStore, key []byte) error

	// Has returns nil if an entity with given primary key exists, or
	// ErrNotFound.
	Has(db pairswap.ReadOnlyKVStore, key []byte) error
}

// NewModelBucket returns a ModelBucket instance operating on a prefixed
// subspace of the database. All stored entities are of the same type as the
// given prototype.
func NewModelBucket(name string, proto Model) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return &modelBucket{
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

type modelBucket struct {
	prefix []byte
	proto  Model
}

var _ ModelBucket = (*modelBucket)(nil)

// dbKey is the full key we store in the db, including prefix.
// We copy into a new array rather than use append, as we don't want
// consecutive calls to overwrite the same byte array.
func (mb *modelBucket) dbKey(key []byte) []byte {
	out := make([]byte, len(mb.prefix)+len(key))
	copy(out, mb.prefix)
	copy(out[len(mb.prefix):], key)
	return out
}

func (mb *modelBucket) One(db pairswap.ReadOnlyKVStore, key []byte, dest Model) error {
	raw := db.Get(mb.dbKey(key))
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}

	if reflect.TypeOf(dest) != reflect.TypeOf(mb.proto) {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %T", mb.proto, dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot unmarshal into %T", dest)
	}
	return nil
}

func (mb *modelBucket) Put(db pairswap.KVStore, key []byte, m Model) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(err, "cannot marshal %T", m)
	}
	db.Set(mb.dbKey(key), raw)
	return nil
}

func (mb *modelBucket) Delete(db pairswap.KVStore, key []byte) error {
	dbkey := mb.dbKey(key)
	if !db.Has(dbkey) {
		return errors.Wrapf(errors.ErrNotFound, "no entity under key %X", key)
	}
	db.Delete(dbkey)
	return nil
}

func (mb *modelBucket) Has(db pairswap.ReadOnlyKVStore, key []byte) error {
	if !db.Has(mb.dbKey(key)) {
		return errors.Wrapf(errors.ErrNotFound, "no entity under key %X", key)
	}
	return nil
}
