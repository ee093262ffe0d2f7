package offer

import (
	"context"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/x"
)

type contextKey int // local to the offer module

const (
	contextKeyHolding contextKey = iota
)

// withHolding grants the condition of the offer holding to the request. It
// is private, so only this package can release the held coins.
func withHolding(ctx swapchain.Context, id uint64) swapchain.Context {
	prev := Authenticate{}.GetConditions(ctx)
	granted := append([]swapchain.Condition{OfferCondition(id)}, prev...)
	return context.WithValue(ctx, contextKeyHolding, granted)
}

// Authenticate reveals the holding conditions granted by this package.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the holding conditions granted to the request.
func (Authenticate) GetConditions(ctx swapchain.Context) []swapchain.Condition {
	val, _ := ctx.Value(contextKeyHolding).([]swapchain.Condition)
	return val
}

// HasAddress returns true if the holding with that address was granted.
func (a Authenticate) HasAddress(ctx swapchain.Context, addr swapchain.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
