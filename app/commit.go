package app

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/errors"
)

// CommitStore keeps two scratch pads over the committed state: one for
// transactions being delivered in the current block and one for mempool
// checks. Commit persists the first and throws the second away.
type CommitStore struct {
	committed swapchain.CommitKVStore
	deliver   swapchain.KVCacheWrap
	check     swapchain.KVCacheWrap
}

// NewCommitStore loads the latest version of the store. A store that cannot
// be loaded leaves the node unusable, so this panics.
func NewCommitStore(store swapchain.CommitKVStore) *CommitStore {
	if err := store.LoadLatestVersion(); err != nil {
		panic(err)
	}
	cs := &CommitStore{committed: store}
	cs.reset()
	return cs
}

func (cs *CommitStore) reset() {
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
}

// CommitInfo returns the version and hash of the last commit.
func (cs *CommitStore) CommitInfo() (swapchain.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit writes everything delivered since the last commit and starts a
// new version. Pending checks are dropped.
func (cs *CommitStore) Commit() (swapchain.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return swapchain.CommitID{}, errors.Wrap(err, "write delivered state")
	}
	cs.check.Discard()
	id, err := cs.committed.Commit()
	if err != nil {
		return id, err
	}
	cs.reset()
	return id, nil
}

// CheckStore is the store CheckTx runs against.
func (cs *CommitStore) CheckStore() swapchain.CacheableKVStore {
	return cs.check
}

// DeliverStore is the store DeliverTx runs against.
func (cs *CommitStore) DeliverStore() swapchain.CacheableKVStore {
	return cs.deliver
}

// QueryStore returns a scratch pad over the last committed state. Discard
// it after use.
func (cs *CommitStore) QueryStore() swapchain.KVCacheWrap {
	return cs.committed.CacheWrap()
}

// chainIDKey is outside of every bucket prefix, so no model can overwrite
// it.
const chainIDKey = "_sc:chainID"

// mustLoadChainID returns the stored chain id, or an empty string before
// genesis. A database failure panics.
func mustLoadChainID(kv swapchain.ReadOnlyKVStore) string {
	raw, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		panic(err)
	}
	return string(raw)
}

// saveChainID stores the chain id. It can be done once.
func saveChainID(kv swapchain.KVStore, chainID string) error {
	if !swapchain.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInvalidInput, "chain id: %q", chainID)
	}
	key := []byte(chainIDKey)
	switch exists, err := kv.Has(key); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case exists:
		return errors.Wrap(errors.ErrUnauthorized, "chain id is set at genesis only")
	}
	if err := kv.Set(key, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chain id")
	}
	return nil
}
