package utils

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/errors"
)

// Recovery converts a panic raised further down the stack into an
// errors.ErrPanic result. Without it a single bad transaction would bring
// the node down.
type Recovery struct{}

var _ swapchain.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx, next swapchain.Checker) (_ *swapchain.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, db, tx)
}

func (Recovery) Deliver(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx, next swapchain.Deliverer) (_ *swapchain.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, db, tx)
}
