package offer

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/coin"
	"github.com/iov-one/swapchain/errors"
)

var _ swapchain.Msg = (*CreateMsg)(nil)
var _ swapchain.Msg = (*FulfillMsg)(nil)
var _ swapchain.Msg = (*CancelMsg)(nil)

const (
	pathCreateMsg  = "offer/create"
	pathFulfillMsg = "offer/fulfill"
	pathCancelMsg  = "offer/cancel"
)

// CreateMsg opens an offer. Offered is moved from the maker to the holding
// of the offer. The maker defaults to the main signer.
type CreateMsg struct {
	Metadata swapchain.Metadata `json:"metadata"`
	ID       uint64             `json:"id"`
	Maker    swapchain.Address  `json:"maker,omitempty"`
	Offered  coin.Coin          `json:"offered"`
	Wanted   coin.Coin          `json:"wanted"`
}

// Path returns the routing path for this message
func (CreateMsg) Path() string {
	return pathCreateMsg
}

// Validate makes sure that this is sensible. Amounts are checked before the
// currency pair.
func (m *CreateMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.Maker) != 0 {
		errs = errors.AppendField(errs, "Maker", m.Maker.Validate())
	}
	errs = errors.AppendField(errs, "Offered", validAmount(m.Offered))
	errs = errors.AppendField(errs, "Wanted", validAmount(m.Wanted))
	if m.Offered.SameType(m.Wanted) {
		errs = errors.AppendField(errs, "Wanted", errors.Wrapf(ErrInvalidAssetPair, "both sides are %s", m.Wanted.Ticker))
	}
	return errs
}

// FulfillMsg pays the wanted amount to the maker and releases the held
// coins to the taker. The taker defaults to the main signer.
type FulfillMsg struct {
	Metadata swapchain.Metadata `json:"metadata"`
	ID       uint64             `json:"id"`
	Taker    swapchain.Address  `json:"taker,omitempty"`
}

// Path returns the routing path for this message
func (FulfillMsg) Path() string {
	return pathFulfillMsg
}

// Validate makes sure that this is sensible
func (m *FulfillMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.Taker) != 0 {
		errs = errors.AppendField(errs, "Taker", m.Taker.Validate())
	}
	return errs
}

// CancelMsg returns the held coins to the maker. It must be signed by the
// maker.
type CancelMsg struct {
	Metadata swapchain.Metadata `json:"metadata"`
	ID       uint64             `json:"id"`
}

// Path returns the routing path for this message
func (CancelMsg) Path() string {
	return pathCancelMsg
}

// Validate makes sure that this is sensible
func (m *CancelMsg) Validate() error {
	return errors.AppendField(nil, "Metadata", m.Metadata.Validate())
}
