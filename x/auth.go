package x

import (
	"github.com/iov-one/swapchain"
)

// Authenticator tells which conditions a request was authorized with.
// Handlers receive one in their constructor instead of reading signatures
// themselves, so the offer logic can add its derived holding condition next
// to the transaction signers.
type Authenticator interface {
	// GetConditions returns every condition fulfilled for this request.
	// The first one is the main signer.
	GetConditions(swapchain.Context) []swapchain.Condition
	// HasAddress is true if any fulfilled condition owns the address.
	HasAddress(swapchain.Context, swapchain.Address) bool
}

// ChainAuth returns an authenticator that accepts anything accepted by one
// of the given authenticators. Conditions are reported in order.
func ChainAuth(impls ...Authenticator) Authenticator {
	return chain(impls)
}

type chain []Authenticator

func (c chain) GetConditions(ctx swapchain.Context) []swapchain.Condition {
	var all []swapchain.Condition
	for _, a := range c {
		all = append(all, a.GetConditions(ctx)...)
	}
	return all
}

func (c chain) HasAddress(ctx swapchain.Context, addr swapchain.Address) bool {
	for _, a := range c {
		if a.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first condition, or nil when the request carries
// none.
func MainSigner(ctx swapchain.Context, auth Authenticator) swapchain.Condition {
	if conds := auth.GetConditions(ctx); len(conds) > 0 {
		return conds[0]
	}
	return nil
}

// AnySigner resolves an optional party of a message. An explicit address is
// returned as is, an empty one falls back to the main signer. The result is
// nil when neither is available.
func AnySigner(ctx swapchain.Context, auth Authenticator, addr swapchain.Address) swapchain.Address {
	if len(addr) != 0 {
		return addr
	}
	if main := MainSigner(ctx, auth); main != nil {
		return main.Address()
	}
	return nil
}
