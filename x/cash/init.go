package cash

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/coin"
	"github.com/iov-one/swapchain/errors"
)

// GenesisKey is the app state key holding the funded accounts.
const GenesisKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use swapchain.Address, so address in hex, not base64
type GenesisAccount struct {
	Address swapchain.Address `json:"address"`
	Coins   []coin.Coin       `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ swapchain.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts swapchain.Options, db swapchain.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(GenesisKey, &accts); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	bucket := NewBucket()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
		if err := bucket.Has(db, acct.Address); err == nil {
			return errors.Wrapf(errors.ErrDuplicate, "account %s", acct.Address)
		}
		wallet, err := NewWallet(acct.Coins...)
		if err != nil {
			return errors.Wrapf(err, "account %s", acct.Address)
		}
		if err := bucket.Put(db, acct.Address, wallet); err != nil {
			return errors.Wrapf(err, "account %s", acct.Address)
		}
	}
	return nil
}
