package utils

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/errors"
)

// Savepoint runs the rest of the stack on a cache wrap of the store. The
// cache is written only when the call succeeds, so a failing transaction
// leaves no partial state behind. Each phase is opt-in.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ swapchain.Decorator = Savepoint{}

// NewSavepoint returns a decorator isolating nothing. Enable it with
// OnCheck and OnDeliver.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck enables the savepoint for CheckTx.
func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

// OnDeliver enables the savepoint for DeliverTx.
func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

func (s Savepoint) Check(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx, next swapchain.Checker) (*swapchain.CheckResult, error) {
	var res *swapchain.CheckResult
	err := isolate(s.onCheck, db, func(db swapchain.KVStore) (err error) {
		res, err = next.Check(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s Savepoint) Deliver(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx, next swapchain.Deliverer) (*swapchain.DeliverResult, error) {
	var res *swapchain.DeliverResult
	err := isolate(s.onDeliver, db, func(db swapchain.KVStore) (err error) {
		res, err = next.Deliver(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// isolate calls fn on a cache wrap of db and writes it back on success.
// When disabled, or when db cannot be wrapped, fn works on db directly.
func isolate(enabled bool, db swapchain.KVStore, fn func(swapchain.KVStore) error) error {
	cacheable, ok := db.(swapchain.CacheableKVStore)
	if !enabled || !ok {
		return fn(db)
	}
	cache := cacheable.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "writing savepoint")
	}
	return nil
}
