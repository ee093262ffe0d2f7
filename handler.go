package swapchain

import (
	"encoding/json"
)

// Checker runs the mempool validation of a transaction.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer executes a transaction of a block.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Handler processes the messages of one or more paths, for example the
// offer messages.
type Handler interface {
	Checker
	Deliverer
}

// Decorator runs around the rest of the stack, given as next. Signature
// verification and logging are decorators.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Options is the genesis app state, one raw section per extension.
type Options map[string]json.RawMessage

// ReadOptions decodes the section under key into obj. A missing section
// leaves obj unchanged.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw, ok := o[key]
	if !ok || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, obj)
}

// Initializer loads the genesis section of an extension into the store.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// MultiInitializer runs initializers in order and stops at the first
// failure.
type MultiInitializer []Initializer

func (m MultiInitializer) FromGenesis(opts Options, kv KVStore) error {
	for _, i := range m {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
