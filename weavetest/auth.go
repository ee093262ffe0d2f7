package weavetest

import (
	"context"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/crypto"
)

// NewKey returns a fresh ed25519 private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the signature condition of a fresh key.
func NewCondition() swapchain.Condition {
	return NewKey().PublicKey().Condition()
}

// Auth authenticates a fixed set of conditions, whatever the context.
// Signer, when set, is reported first and so is the main signer.
type Auth struct {
	Signer  swapchain.Condition
	Signers []swapchain.Condition
}

func (a *Auth) GetConditions(swapchain.Context) []swapchain.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	return append([]swapchain.Condition{a.Signer}, a.Signers...)
}

func (a *Auth) HasAddress(ctx swapchain.Context, addr swapchain.Address) bool {
	return owns(a.GetConditions(ctx), addr)
}

// CtxAuth authenticates the conditions previously stored in the context
// under Key. Two instances with different keys do not see each other's
// conditions.
type CtxAuth struct {
	Key string
}

type ctxAuthKey string

// SetConditions returns a context authenticating given conditions.
func (a *CtxAuth) SetConditions(ctx swapchain.Context, conds ...swapchain.Condition) swapchain.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx swapchain.Context) []swapchain.Condition {
	conds, _ := ctx.Value(ctxAuthKey(a.Key)).([]swapchain.Condition)
	return conds
}

func (a *CtxAuth) HasAddress(ctx swapchain.Context, addr swapchain.Address) bool {
	return owns(a.GetConditions(ctx), addr)
}

func owns(conds []swapchain.Condition, addr swapchain.Address) bool {
	for _, c := range conds {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}
