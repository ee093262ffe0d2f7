package cash

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/coin"
	"github.com/iov-one/swapchain/errors"
	"github.com/iov-one/swapchain/x"
)

// RegisterQuery will register this bucket as "/wallets"
func RegisterQuery(qr swapchain.QueryRouter) {
	NewBucket().Register("wallets", qr)
}

// SendHandler will handle sending coins
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ swapchain.Handler = SendHandler{}

// NewSendHandler creates a handler for SendMsg
func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{
		auth:    auth,
		control: control,
	}
}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h SendHandler) Check(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.CheckResult, error) {
	msg, src, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, src) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "account owner signature missing")
	}
	return swapchain.NewCheck(sendTxCost, msg.Memo), nil
}

// Deliver moves the tokens from source to receiver if
// all preconditions are met
func (h SendHandler) Deliver(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.DeliverResult, error) {
	msg, src, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := Transfer(ctx, h.auth, db, h.control, src, msg.Destination, coin.Coins{msg.Amount}); err != nil {
		return nil, err
	}
	return &swapchain.DeliverResult{Log: msg.Memo}, nil
}

func (h SendHandler) validate(ctx swapchain.Context, tx swapchain.Tx) (*SendMsg, swapchain.Address, error) {
	var msg SendMsg
	if err := swapchain.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	src := x.AnySigner(ctx, h.auth, msg.Source)
	if src == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no source and no signer")
	}
	return &msg, src, nil
}
