package cash

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/coin"
	"github.com/iov-one/swapchain/errors"
	"github.com/iov-one/swapchain/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Wallet is the set of coins owned by a single address. The address is the
// key the wallet is stored under.
type Wallet struct {
	Metadata swapchain.Metadata `json:"metadata"`
	Coins    coin.Coins         `json:"coins"`
}

var _ orm.Model = (*Wallet)(nil)

// Validate requires a normalized set of coins.
func (w *Wallet) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", w.Metadata.Validate())
	errs = errors.AppendField(errs, "Coins", w.Coins.Validate())
	if !w.Coins.IsNonNegative() {
		errs = errors.AppendField(errs, "Coins", errors.Wrap(errors.ErrInvalidAmount, "negative amount"))
	}
	return errs
}

// NewWallet returns a wallet holding the given coins.
func NewWallet(coins ...coin.Coin) (*Wallet, error) {
	cs, err := coin.CombineCoins(coins...)
	if err != nil {
		return nil, err
	}
	return &Wallet{
		Metadata: swapchain.Metadata{Schema: 1},
		Coins:    cs,
	}, nil
}

// NewBucket returns a bucket for storing wallets, keyed by the owner
// address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Wallet{})
}
