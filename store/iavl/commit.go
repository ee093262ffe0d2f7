/*
Package iavl provides the persistent, versioned store of the ledger.

The working state is a tendermint iavl tree. Every block is executed
against a btree cache wrap, which is written into the tree on success.
Commit saves a new version and returns its merkle root as the app hash.
*/
package iavl

import (
	"github.com/iov-one/swapchain/errors"
	"github.com/iov-one/swapchain/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// DefaultCacheSize is the number of nodes kept in memory by the tree.
const DefaultCacheSize = 10000

// CommitStore manages a iavl committed state
type CommitStore struct {
	tree *iavl.MutableTree
}

var _ store.CommitKVStore = CommitStore{}

// NewCommitStore creates a new store backed by given database.
// Call LoadLatestVersion before using it.
func NewCommitStore(db dbm.DB) CommitStore {
	tree := iavl.NewMutableTree(db, DefaultCacheSize)
	return CommitStore{tree: tree}
}

// OpenDB returns a database of the given backend. Supported backends are
// "memdb" and "goleveldb". A goleveldb database is stored under dir.
func OpenDB(backend, name, dir string) (dbm.DB, error) {
	switch backend {
	case "memdb":
		return dbm.NewMemDB(), nil
	case "goleveldb":
		db, err := dbm.NewGoLevelDB(name, dir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, err.Error())
		}
		return db, nil
	default:
		return nil, errors.ErrInvalidInput.Newf("unknown db backend %q", backend)
	}
}

// Get returns the value at last committed state
// returns nil iff key doesn't exist.
func (s CommitStore) Get(key []byte) ([]byte, error) {
	if key == nil {
		return nil, errors.Wrap(errors.ErrDatabase, "nil key")
	}
	_, val := s.tree.GetVersioned(key, s.tree.Version())
	return val, nil
}

// Commit the next version to disk, and returns info
func (s CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk
func (s CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// CacheWrap wraps the working tree with a btree. Writing the cache
// wrap stages the changes in the working tree until the next Commit.
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	a := newAdapter(s.tree)
	return store.NewBTreeCacheWrap(a, store.NewNonAtomicBatch(a), nil)
}

// ReadOnly returns a view of the last committed version. Uncommitted
// changes of the working tree are not visible.
func (s CommitStore) ReadOnly() (store.ReadOnlyKVStore, error) {
	version := s.tree.Version()
	if version == 0 {
		return store.EmptyKVStore{}, nil
	}
	tree, err := s.tree.GetImmutable(version)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return reader{tree: tree}, nil
}

// treeReader is the read API shared by mutable and immutable trees.
type treeReader interface {
	Get(key []byte) (int64, []byte)
	Has(key []byte) bool
	IterateRange(start, end []byte, ascending bool, fn func(key []byte, value []byte) bool) bool
}

type reader struct {
	tree treeReader
}

var _ store.ReadOnlyKVStore = reader{}

func (r reader) Get(key []byte) ([]byte, error) {
	if key == nil {
		return nil, errors.Wrap(errors.ErrDatabase, "nil key")
	}
	_, val := r.tree.Get(key)
	return val, nil
}

func (r reader) Has(key []byte) (bool, error) {
	if key == nil {
		return false, errors.Wrap(errors.ErrDatabase, "nil key")
	}
	return r.tree.Has(key), nil
}

// Iterator over a domain of keys in ascending order. End is exclusive.
func (r reader) Iterator(start, end []byte) (store.Iterator, error) {
	return store.NewSliceIterator(r.collect(start, end, true)), nil
}

// ReverseIterator over a domain of keys in descending order. End is exclusive.
func (r reader) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return store.NewSliceIterator(r.collect(start, end, false)), nil
}

func (r reader) collect(start, end []byte, ascending bool) []store.Model {
	var res []store.Model
	r.tree.IterateRange(start, end, ascending, func(key []byte, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	})
	return res
}

// adapter exposes the working tree as a KVStore.
type adapter struct {
	reader
	tree *iavl.MutableTree
}

var _ store.KVStore = adapter{}

func newAdapter(tree *iavl.MutableTree) adapter {
	return adapter{reader: reader{tree: tree}, tree: tree}
}

func (a adapter) Set(key, value []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrDatabase, "nil key")
	}
	// iavl does not accept nil values
	if value == nil {
		value = []byte{}
	}
	a.tree.Set(key, value)
	return nil
}

func (a adapter) Delete(key []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrDatabase, "nil key")
	}
	a.tree.Remove(key)
	return nil
}
