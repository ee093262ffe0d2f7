package offer

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/errors"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	// pay offer cost up-front
	createOfferCost  int64 = 300
	fulfillOfferCost int64 = 100
	cancelOfferCost  int64 = 50
)

// OfferTag is the tag key carrying the address of the offer a transaction
// acted on.
const OfferTag = "offer"

// RegisterQuery will register this bucket as "/offers" and the maker index
// as "/offers/maker".
func RegisterQuery(qr swapchain.QueryRouter) {
	NewBucket().Register("offers", qr)
}

// CreateHandler opens offers.
type CreateHandler struct {
	ctrl *Controller
}

var _ swapchain.Handler = CreateHandler{}

// NewCreateHandler returns a handler for CreateMsg.
func NewCreateHandler(ctrl *Controller) CreateHandler {
	return CreateHandler{ctrl: ctrl}
}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreateHandler) Check(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.CheckResult, error) {
	var msg CreateMsg
	if err := swapchain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.ctrl.checkCreate(ctx, db, &msg); err != nil {
		return nil, err
	}
	return swapchain.NewCheck(createOfferCost, ""), nil
}

// Deliver moves the offered coins to the holding and stores the offer. The
// result data is the offer key.
func (h CreateHandler) Deliver(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.DeliverResult, error) {
	var msg CreateMsg
	if err := swapchain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	offer, err := h.ctrl.Create(ctx, db, &msg)
	if err != nil {
		return nil, err
	}
	return deliverResult(offer), nil
}

// FulfillHandler executes the swap.
type FulfillHandler struct {
	ctrl *Controller
}

var _ swapchain.Handler = FulfillHandler{}

// NewFulfillHandler returns a handler for FulfillMsg.
func NewFulfillHandler(ctrl *Controller) FulfillHandler {
	return FulfillHandler{ctrl: ctrl}
}

// Check makes sure the offer exists and the taker signed the request.
func (h FulfillHandler) Check(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.CheckResult, error) {
	var msg FulfillMsg
	if err := swapchain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, _, err := h.ctrl.checkFulfill(ctx, db, &msg); err != nil {
		return nil, err
	}
	return swapchain.NewCheck(fulfillOfferCost, ""), nil
}

// Deliver pays the maker and releases the holding to the taker.
func (h FulfillHandler) Deliver(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.DeliverResult, error) {
	var msg FulfillMsg
	if err := swapchain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	offer, err := h.ctrl.Fulfill(ctx, db, &msg)
	if err != nil {
		return nil, err
	}
	return deliverResult(offer), nil
}

// CancelHandler returns the holding to the maker.
type CancelHandler struct {
	ctrl *Controller
}

var _ swapchain.Handler = CancelHandler{}

// NewCancelHandler returns a handler for CancelMsg.
func NewCancelHandler(ctrl *Controller) CancelHandler {
	return CancelHandler{ctrl: ctrl}
}

// Check makes sure the offer exists and the maker signed the request.
func (h CancelHandler) Check(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.CheckResult, error) {
	var msg CancelMsg
	if err := swapchain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.ctrl.checkCancel(ctx, db, &msg); err != nil {
		return nil, err
	}
	return swapchain.NewCheck(cancelOfferCost, ""), nil
}

// Deliver returns the holding to the maker.
func (h CancelHandler) Deliver(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.DeliverResult, error) {
	var msg CancelMsg
	if err := swapchain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	offer, err := h.ctrl.Cancel(ctx, db, &msg)
	if err != nil {
		return nil, err
	}
	return deliverResult(offer), nil
}

func deliverResult(offer *Offer) *swapchain.DeliverResult {
	return &swapchain.DeliverResult{
		Data: offer.Address,
		Tags: []common.KVPair{
			{Key: []byte(OfferTag), Value: []byte(offer.Address.String())},
		},
	}
}
