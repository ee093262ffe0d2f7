package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/swapchain/errors"
)

// btreeDegree is small as a cache wrap lives for a single transaction or
// block.
const btreeDegree = 2

// BTreeCacheable gives any KVStore a btree based CacheWrap.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, NewNonAtomicBatch(b.KVStore), nil)
}

// MemStore returns an empty in-memory store. Nothing is persisted.
func MemStore() CacheableKVStore {
	var empty EmptyKVStore
	return NewBTreeCacheWrap(empty, NewNonAtomicBatch(empty), nil)
}

// BTreeCacheWrap keeps uncommitted changes in a btree on top of a read only
// parent. Reads see the changes first. Writes are also recorded in the
// batch, which Write flushes to the parent.
type BTreeCacheWrap struct {
	tree   *btree.BTree
	free   *btree.FreeList
	parent ReadOnlyKVStore
	batch  Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap returns a cache over kv. Nested wraps can share the
// free list of nodes. Pass nil to allocate a new one.
func NewBTreeCacheWrap(kv ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		tree:   btree.NewWithFreeList(btreeDegree, free),
		free:   free,
		parent: kv,
		batch:  batch,
	}
}

// CacheWrap returns a nested cache that writes into this one.
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, NewNonAtomicBatch(b), b.free)
}

// Write flushes the changes to the parent and empties the cache.
func (b BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return err
}

// Discard drops all changes. The nodes go back to the free list.
func (b BTreeCacheWrap) Discard() {
	for b.tree.DeleteMin() != nil {
	}
	if nab, ok := b.batch.(*NonAtomicBatch); ok {
		nab.Reset()
	}
}

func (b BTreeCacheWrap) Set(key, value []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrDatabase, "nil key")
	}
	b.tree.ReplaceOrInsert(setItem{bkey{key}, value})
	return b.batch.Set(key, value)
}

func (b BTreeCacheWrap) Delete(key []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrDatabase, "nil key")
	}
	b.tree.ReplaceOrInsert(deletedItem{bkey{key}})
	return b.batch.Delete(key)
}

func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	if key == nil {
		return nil, errors.Wrap(errors.ErrDatabase, "nil key")
	}
	item, cached := b.lookup(key)
	if !cached {
		return b.parent.Get(key)
	}
	if set, ok := item.(setItem); ok {
		return set.value, nil
	}
	return nil, nil
}

func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	if key == nil {
		return false, errors.Wrap(errors.ErrDatabase, "nil key")
	}
	item, cached := b.lookup(key)
	if !cached {
		return b.parent.Has(key)
	}
	_, ok := item.(setItem)
	return ok, nil
}

func (b BTreeCacheWrap) lookup(key []byte) (btree.Item, bool) {
	item := b.tree.Get(bkey{key})
	return item, item != nil
}

// Iterator returns the merged view of the parent and the cache in
// ascending key order. Results are loaded in memory.
func (b BTreeCacheWrap) Iterator(start, end []byte) (Iterator, error) {
	it, err := b.parent.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	defer it.Close()
	return NewSliceIterator(merge(drain(it), b.items(start, end))), nil
}

// ReverseIterator is Iterator in descending key order.
func (b BTreeCacheWrap) ReverseIterator(start, end []byte) (Iterator, error) {
	it, err := b.parent.ReverseIterator(start, end)
	if err != nil {
		return nil, err
	}
	defer it.Close()
	asc := merge(reverse(drain(it)), b.items(start, end))
	return NewSliceIterator(reverse(asc)), nil
}

// items returns the cached entries of [start, end) in ascending order. A
// nil bound is open.
func (b BTreeCacheWrap) items(start, end []byte) []keyer {
	var res []keyer
	visit := func(i btree.Item) bool {
		res = append(res, i.(keyer))
		return true
	}
	switch {
	case start == nil && end == nil:
		b.tree.Ascend(visit)
	case start == nil:
		b.tree.AscendLessThan(bkey{end}, visit)
	case end == nil:
		b.tree.AscendGreaterOrEqual(bkey{start}, visit)
	default:
		b.tree.AscendRange(bkey{start}, bkey{end}, visit)
	}
	return res
}

// keyer is implemented by every item of the cache tree.
type keyer interface {
	Key() []byte
}

// bkey orders tree items by key. On its own it is used for lookups.
type bkey struct {
	key []byte
}

func (k bkey) Key() []byte { return k.key }

func (k bkey) Less(than btree.Item) bool {
	return bytes.Compare(k.key, than.(keyer).Key()) < 0
}

// setItem holds a written value.
type setItem struct {
	bkey
	value []byte
}

// deletedItem hides the parent value of a deleted key.
type deletedItem struct {
	bkey
}
