package orm

import (
	"encoding/binary"
	"testing"

	"github.com/iov-one/pairswap/errors"
	"github.com/iov-one/pairswap/store"
	"github.com/iov-one/pairswap/swaptest/assert"
)

// counter is a minimal model for bucket tests.
type counter struct {
	Count uint64
}

var _ Model = (*counter)(nil)

func (c *counter) Validate() error {
	return nil
}

func (c *counter) Copy() Model {
	return &counter{Count: c.Count}
}

func (c *counter) Marshal() ([]byte, error) {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint64(raw, c.Count)
	return raw, nil
}

func (c *counter) Unmarshal(raw []byte) error {
	if len(raw) != 8 {
		return errors.Wrapf(errors.ErrInput, "counter: %d bytes", len(raw))
	}
	c.Count = binary.LittleEndian.Uint64(raw)
	return nil
}

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	key := []byte("first")
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, key))

	assert.Nil(t, b.Put(db, key, &counter{Count: 5}))
	assert.Nil(t, b.Has(db, key))

	var got counter
	assert.Nil(t, b.One(db, key, &got))
	assert.Equal(t, uint64(5), got.Count)

	assert.Nil(t, b.Delete(db, key))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, key))
	assert.IsErr(t, errors.ErrNotFound, b.One(db, key, &got))
}

func TestModelBucketMissingKey(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	assert.IsErr(t, errors.ErrEmpty, b.Put(db, nil, &counter{Count: 1}))
	assert.IsErr(t, errors.ErrNotFound, b.Delete(db, []byte("ghost")))
}

func TestModelBucketWrongModelType(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	assert.Nil(t, b.Put(db, []byte("first"), &counter{Count: 1}))

	var wrong badCounter
	assert.IsErr(t, errors.ErrType, b.One(db, []byte("first"), &wrong))
}

type badCounter struct{ counter }

func TestModelBucketPrefixSeparation(t *testing.T) {
	db := store.MemStore()
	a := NewModelBucket("aaa", &counter{})
	b := NewModelBucket("bbb", &counter{})

	assert.Nil(t, a.Put(db, []byte("x"), &counter{Count: 1}))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("x")))
}

func TestModelBucketIllegalName(t *testing.T) {
	assert.Panics(t, func() {
		NewModelBucket("Bad Name", &counter{})
	})
}
