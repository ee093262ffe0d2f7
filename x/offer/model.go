package offer

import (
	"encoding/binary"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/coin"
	"github.com/iov-one/swapchain/errors"
	"github.com/iov-one/swapchain/orm"
)

// BucketName is where we store the offers
const BucketName = "offer"

// Offer is an open proposal to exchange the coins held at Address for the
// Wanted amount. It is stored under its Address.
type Offer struct {
	Metadata swapchain.Metadata `json:"metadata"`
	ID       uint64             `json:"id"`
	Maker    swapchain.Address  `json:"maker"`
	// Offered is the ticker of the held currency.
	Offered string    `json:"offered"`
	Wanted  coin.Coin `json:"wanted"`
	// Address is the holding address derived from ID, kept so that every
	// spend can compare it with the derivation.
	Address swapchain.Address `json:"address"`
}

var _ orm.Model = (*Offer)(nil)

// Validate ensures the offer is valid
func (o *Offer) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", o.Metadata.Validate())
	errs = errors.AppendField(errs, "Maker", o.Maker.Validate())
	if !coin.IsCC(o.Offered) {
		errs = errors.AppendField(errs, "Offered", errors.Wrapf(errors.ErrCurrency, "invalid currency: %q", o.Offered))
	}
	errs = errors.AppendField(errs, "Wanted", validAmount(o.Wanted))
	if o.Offered == o.Wanted.Ticker {
		errs = errors.AppendField(errs, "Wanted", errors.Wrap(ErrInvalidAssetPair, o.Offered))
	}
	errs = errors.AppendField(errs, "Address", o.VerifyAddress())
	return errs
}

// VerifyAddress re-derives the holding address from the ID and compares it
// with the stored one.
func (o *Offer) VerifyAddress() error {
	if want := HoldingAddress(o.ID); !want.Equals(o.Address) {
		return errors.Wrapf(errors.ErrInvalidState, "address %s does not derive from id %d", o.Address, o.ID)
	}
	return nil
}

// OfferCondition returns the condition that controls the holding of the
// offer with the given ID.
func OfferCondition(id uint64) swapchain.Condition {
	return swapchain.NewCondition("offer", "holding", encodeID(id))
}

// HoldingAddress returns the address of the holding wallet of the offer
// with the given ID. It is also the key of the offer.
func HoldingAddress(id uint64) swapchain.Address {
	return OfferCondition(id).Address()
}

func encodeID(id uint64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, id)
	return raw
}

// validAmount returns an error unless c is a valid, positive amount.
func validAmount(c coin.Coin) error {
	if !c.IsPositive() {
		return errors.Wrapf(errors.ErrInvalidAmount, "non-positive amount %s", c)
	}
	return c.Validate()
}

// NewBucket returns a bucket for offers, indexed by the maker.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Offer{},
		orm.WithIndex("maker", makerIndexer, false),
	)
}

func makerIndexer(m orm.Model) ([]byte, error) {
	o, ok := m.(*Offer)
	if !ok {
		return nil, errors.WithType(errors.ErrInvalidModel, m)
	}
	return o.Maker, nil
}
