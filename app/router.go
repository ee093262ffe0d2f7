package app

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/errors"
	"github.com/iov-one/swapchain/x"
	"github.com/iov-one/swapchain/x/cash"
	"github.com/iov-one/swapchain/x/offer"
)

// Router dispatches a transaction to the handler of its message. The set
// of messages is closed, anything not listed here is rejected.
type Router struct {
	create  swapchain.Handler
	fulfill swapchain.Handler
	cancel  swapchain.Handler
	send    swapchain.Handler
}

var _ swapchain.Handler = Router{}

// NewRouter returns a router serving the offer and cash messages. All
// handlers authenticate with auth.
func NewRouter(auth x.Authenticator) Router {
	bank := cash.NewController(cash.NewBucket())
	ctrl := offer.NewController(auth, offer.NewBucket(), bank)
	return Router{
		create:  offer.NewCreateHandler(ctrl),
		fulfill: offer.NewFulfillHandler(ctrl),
		cancel:  offer.NewCancelHandler(ctrl),
		send:    cash.NewSendHandler(auth, bank),
	}
}

// Check dispatches to the handler of the message.
func (r Router) Check(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.CheckResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, db, tx)
}

// Deliver dispatches to the handler of the message.
func (r Router) Deliver(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.DeliverResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}

func (r Router) handler(tx swapchain.Tx) (swapchain.Handler, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load message")
	}
	switch msg.(type) {
	case *offer.CreateMsg:
		return r.create, nil
	case *offer.FulfillMsg:
		return r.fulfill, nil
	case *offer.CancelMsg:
		return r.cancel, nil
	case *cash.SendMsg:
		return r.send, nil
	default:
		return nil, errors.Wrapf(errors.ErrInvalidMsg, "no handler for %T", msg)
	}
}
