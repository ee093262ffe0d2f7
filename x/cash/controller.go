package cash

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/coin"
	"github.com/iov-one/swapchain/errors"
	"github.com/iov-one/swapchain/orm"
)

// Balancer is implemented by any controller that can tell the holdings of
// an address.
type Balancer interface {
	Balance(swapchain.ReadOnlyKVStore, swapchain.Address) (coin.Coins, error)
}

// CoinMover is an interface for moving coins between accounts. It does not
// authenticate the source, see Transfer.
type CoinMover interface {
	MoveCoins(swapchain.KVStore, swapchain.Address, swapchain.Address, coin.Coin) error
}

// Controller is the functionality needed by cash.Handler and the extensions
// that hold funds on behalf of their users.
type Controller interface {
	Balancer
	CoinMover
	IssueCoins(swapchain.KVStore, swapchain.Address, coin.Coin) error
	CloseWallet(swapchain.KVStore, swapchain.Address) error
}

// BaseController is a simple implementation of Controller backed by a
// wallet bucket.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller operating on the given bucket.
func NewController(bucket orm.ModelBucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the coins held by the given address. ErrNotFound is
// returned if the address does not own a wallet.
func (c BaseController) Balance(db swapchain.ReadOnlyKVStore, addr swapchain.Address) (coin.Coins, error) {
	var w Wallet
	if err := c.bucket.One(db, addr, &w); err != nil {
		return nil, errors.Wrapf(err, "wallet %s", addr)
	}
	return w.Coins, nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db swapchain.KVStore, src, dest swapchain.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrInvalidAmount, "non-positive amount %s", amount)
	}
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}

	var sender Wallet
	switch err := c.bucket.One(db, src, &sender); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	default:
		return errors.Wrap(err, "sender")
	}

	if !sender.Coins.Contains(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s does not hold %s", src, amount)
	}

	left, err := sender.Coins.Subtract(amount)
	if err != nil {
		return errors.Wrap(err, "subtract")
	}
	sender.Coins = left
	if err := c.bucket.Put(db, src, &sender); err != nil {
		return errors.Wrap(err, "save sender")
	}

	// Sender is saved before the recipient is loaded, so moving funds to
	// self is a noop.
	return c.IssueCoins(db, dest, amount)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(db swapchain.KVStore, dest swapchain.Address, amount coin.Coin) error {
	var recipient Wallet
	switch err := c.bucket.One(db, dest, &recipient); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		recipient = Wallet{Metadata: swapchain.Metadata{Schema: 1}}
	default:
		return errors.Wrap(err, "recipient")
	}

	sum, err := recipient.Coins.Add(amount)
	if err != nil {
		return errors.Wrap(err, "add")
	}
	if !sum.IsNonNegative() {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s does not hold %s", dest, amount.Negative())
	}
	recipient.Coins = sum
	return c.bucket.Put(db, dest, &recipient)
}

// CloseWallet removes the wallet of given address. Only a wallet that holds
// no coins can be closed.
func (c BaseController) CloseWallet(db swapchain.KVStore, addr swapchain.Address) error {
	var w Wallet
	if err := c.bucket.One(db, addr, &w); err != nil {
		return errors.Wrapf(err, "wallet %s", addr)
	}
	if !w.Coins.IsEmpty() {
		return errors.Wrapf(errors.ErrInvalidState, "wallet %s still holds %v", addr, w.Coins)
	}
	return c.bucket.Delete(db, addr)
}
