package offer

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/coin"
	"github.com/iov-one/swapchain/errors"
	"github.com/iov-one/swapchain/orm"
	"github.com/iov-one/swapchain/x"
	"github.com/iov-one/swapchain/x/cash"
)

// Controller executes the offer lifecycle. Every operation either applies
// all of its changes or none of them.
type Controller struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	cash   cash.Controller
}

// NewController returns a controller that authenticates the makers and
// takers with auth and moves their coins with bank.
func NewController(auth x.Authenticator, bucket orm.ModelBucket, bank cash.Controller) *Controller {
	return &Controller{
		auth:   auth,
		bucket: bucket,
		cash:   bank,
	}
}

// Create opens a new offer. The offered coins are moved from the maker to
// the holding of the offer.
func (c *Controller) Create(ctx swapchain.Context, db swapchain.KVStore, msg *CreateMsg) (*Offer, error) {
	maker, err := c.checkCreate(ctx, db, msg)
	if err != nil {
		return nil, err
	}

	offer := &Offer{
		Metadata: swapchain.Metadata{Schema: 1},
		ID:       msg.ID,
		Maker:    maker,
		Offered:  msg.Offered.Ticker,
		Wanted:   msg.Wanted,
		Address:  HoldingAddress(msg.ID),
	}
	err = atomically(db, func(db swapchain.KVStore) error {
		if err := cash.Transfer(ctx, c.auth, db, c.cash, maker, offer.Address, coin.Coins{msg.Offered}); err != nil {
			return remap(err, ErrInsufficientFunderBalance)
		}
		if err := c.bucket.Put(db, offer.Address, offer); err != nil {
			return errors.Wrap(err, "cannot store offer")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return offer, nil
}

// checkCreate runs all validation of Create that does not change the
// state and returns the maker address.
func (c *Controller) checkCreate(ctx swapchain.Context, db swapchain.ReadOnlyKVStore, msg *CreateMsg) (swapchain.Address, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	maker := x.AnySigner(ctx, c.auth, msg.Maker)
	if maker == nil || !c.auth.HasAddress(ctx, maker) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "maker signature missing")
	}

	addr := HoldingAddress(msg.ID)
	switch err := c.bucket.Has(db, addr); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "offer %d", msg.ID)
	case !errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(err, "offer")
	}
	switch _, err := c.cash.Balance(db, addr); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "holding of offer %d", msg.ID)
	case !errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(err, "holding")
	}
	return maker, nil
}

// Fulfill pays the wanted amount from the taker to the maker and releases
// the held coins to the taker. The offer is deleted.
func (c *Controller) Fulfill(ctx swapchain.Context, db swapchain.KVStore, msg *FulfillMsg) (*Offer, error) {
	offer, taker, err := c.checkFulfill(ctx, db, msg)
	if err != nil {
		return nil, err
	}
	err = atomically(db, func(db swapchain.KVStore) error {
		// Payment is collected first, so nothing is released unless the
		// taker paid.
		if err := cash.Transfer(ctx, c.auth, db, c.cash, taker, offer.Maker, coin.Coins{offer.Wanted}); err != nil {
			return remap(err, ErrInsufficientTakerBalance)
		}
		return c.release(ctx, db, offer, taker)
	})
	if err != nil {
		return nil, err
	}
	return offer, nil
}

func (c *Controller) checkFulfill(ctx swapchain.Context, db swapchain.ReadOnlyKVStore, msg *FulfillMsg) (*Offer, swapchain.Address, error) {
	if err := msg.Validate(); err != nil {
		return nil, nil, err
	}
	offer, err := c.Load(db, msg.ID)
	if err != nil {
		return nil, nil, err
	}
	taker := x.AnySigner(ctx, c.auth, msg.Taker)
	if taker == nil || !c.auth.HasAddress(ctx, taker) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "taker signature missing")
	}
	return offer, taker, nil
}

// Cancel returns the held coins to the maker. Only the maker can cancel an
// offer. The offer is deleted.
func (c *Controller) Cancel(ctx swapchain.Context, db swapchain.KVStore, msg *CancelMsg) (*Offer, error) {
	offer, err := c.checkCancel(ctx, db, msg)
	if err != nil {
		return nil, err
	}
	err = atomically(db, func(db swapchain.KVStore) error {
		return c.release(ctx, db, offer, offer.Maker)
	})
	if err != nil {
		return nil, err
	}
	return offer, nil
}

func (c *Controller) checkCancel(ctx swapchain.Context, db swapchain.ReadOnlyKVStore, msg *CancelMsg) (*Offer, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	offer, err := c.Load(db, msg.ID)
	if err != nil {
		return nil, err
	}
	if !c.auth.HasAddress(ctx, offer.Maker) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the maker can cancel")
	}
	return offer, nil
}

// Load returns the live offer with the given ID. ErrOfferNotFound is
// returned if there is none.
func (c *Controller) Load(db swapchain.ReadOnlyKVStore, id uint64) (*Offer, error) {
	var offer Offer
	switch err := c.bucket.One(db, HoldingAddress(id), &offer); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrOfferNotFound, "id %d", id)
	default:
		return nil, errors.Wrap(err, "cannot load offer")
	}
	if err := offer.VerifyAddress(); err != nil {
		return nil, err
	}
	return &offer, nil
}

// Holding returns the coins held by the offer with the given ID.
func (c *Controller) Holding(db swapchain.ReadOnlyKVStore, id uint64) (coin.Coins, error) {
	if _, err := c.Load(db, id); err != nil {
		return nil, err
	}
	held, err := c.cash.Balance(db, HoldingAddress(id))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidState, "offer %d without holding: %s", id, err)
	}
	return held, nil
}

// release moves everything held by the offer to dest, closes the holding
// and deletes the offer.
func (c *Controller) release(ctx swapchain.Context, db swapchain.KVStore, offer *Offer, dest swapchain.Address) error {
	held, err := c.Holding(db, offer.ID)
	if err != nil {
		return err
	}
	ctx = withHolding(ctx, offer.ID)
	auth := x.ChainAuth(c.auth, Authenticate{})
	if err := cash.Transfer(ctx, auth, db, c.cash, offer.Address, dest, held); err != nil {
		return errors.Wrap(err, "release holding")
	}
	if err := c.cash.CloseWallet(db, offer.Address); err != nil {
		return errors.Wrap(err, "close holding")
	}
	if err := c.bucket.Delete(db, offer.Address); err != nil {
		return errors.Wrap(err, "cannot delete offer")
	}
	return nil
}

// remap replaces a shortfall reported by the cash extension with the given
// error. The original error is kept in the message.
func remap(err error, with *errors.Error) error {
	if errors.ErrInsufficientAmount.Is(err) || errors.ErrEmpty.Is(err) {
		return errors.Wrap(with, err.Error())
	}
	return err
}

// atomically runs fn on a cache of db, which is written only if fn
// succeeds.
func atomically(db swapchain.KVStore, fn func(swapchain.KVStore) error) error {
	cstore, ok := db.(swapchain.CacheableKVStore)
	if !ok {
		return fn(db)
	}
	cache := cstore.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "cannot write changes")
	}
	return nil
}
