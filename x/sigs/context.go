package sigs

import (
	"context"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/x"
)

type ctxKey struct{}

// withSigners is unexported: only the Decorator, after verifying the
// signatures, may grant signer conditions.
func withSigners(ctx swapchain.Context, signers []swapchain.Condition) swapchain.Context {
	return context.WithValue(ctx, ctxKey{}, signers)
}

// Authenticate reads the signers put into the context by the Decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the signer conditions, or nil if the Decorator
// did not run.
func (Authenticate) GetConditions(ctx swapchain.Context) []swapchain.Condition {
	signers, _ := ctx.Value(ctxKey{}).([]swapchain.Condition)
	return signers
}

func (a Authenticate) HasAddress(ctx swapchain.Context, addr swapchain.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}
