package store

import "github.com/iov-one/pairswap"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = pairswap.ReadOnlyKVStore
type KVStore = pairswap.KVStore
type CacheableKVStore = pairswap.CacheableKVStore
type KVCacheWrap = pairswap.KVCacheWrap

// SetDeleter is a subset of KVStore that batches can write to.
type SetDeleter interface {
	Set(key, value []byte)
	Delete(key []byte)
}

// Batch can write multiple operations to an underlying store at once.
type Batch interface {
	SetDeleter
	Write()
}
