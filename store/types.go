package store

import "github.com/iov-one/swapchain"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = swapchain.ReadOnlyKVStore
type SetDeleter = swapchain.SetDeleter
type KVStore = swapchain.KVStore
type Iterator = swapchain.Iterator
type CacheableKVStore = swapchain.CacheableKVStore
type KVCacheWrap = swapchain.KVCacheWrap
type CommitKVStore = swapchain.CommitKVStore
type CommitID = swapchain.CommitID
type Model = swapchain.Model

// Batch can write multiple ops atomically to an underlying KVStore
type Batch interface {
	SetDeleter
	Write() error
}
