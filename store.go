package swapchain

// ReadOnlyKVStore reads from a key value store. A nil key is an error.
type ReadOnlyKVStore interface {
	// Get returns nil if the key does not exist.
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)

	// Iterator walks [start, end) in ascending key order. A nil bound is
	// open. The range must not be written to while the iterator is open.
	Iterator(start, end []byte) (Iterator, error)
	// ReverseIterator walks [start, end) in descending key order.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// SetDeleter is the write half of KVStore, shared with batches. Stores do
// not modify the slices they are given.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is the store every handler works with.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
}

// Iterator walks a key range.
//
//   it, err := db.Iterator(start, end)
//   ...
//   defer it.Close()
//   for ; it.Valid(); it.Next() {
//     key, value := it.Key(), it.Value()
//   }
//
// Next, Key and Value panic once Valid returns false. The returned slices
// must not be modified.
type Iterator interface {
	Valid() bool
	Next()
	Key() []byte
	Value() []byte
	Close()
}

// CacheableKVStore can open a scratch pad on top of itself.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap collects writes without touching the store below, which
// lets a failed transaction be rolled back. Reads see the collected
// writes. It can be wrapped again.
type KVCacheWrap interface {
	CacheableKVStore

	// Write flushes the collected writes to the store below.
	Write() error
	// Discard drops the collected writes.
	Discard()
}

// CommitKVStore is the persistent versioned store of the application.
type CommitKVStore interface {
	// Get reads the last committed state.
	Get(key []byte) ([]byte, error)

	// CacheWrap returns a scratch pad whose Write stages changes for the
	// next Commit.
	CacheWrap() KVCacheWrap

	// Commit persists the staged changes as a new version.
	Commit() (CommitID, error)

	// LoadLatestVersion opens the last complete version, even after a
	// crash during commit.
	LoadLatestVersion() error

	LatestVersion() (CommitID, error)
}

// CommitID identifies a version of the store by its number and merkle
// root hash.
type CommitID struct {
	Version int64
	Hash    []byte
}
