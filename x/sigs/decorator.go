package sigs

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/errors"
)

// signatureVerifyCost is the gas added to a check per verified signature.
const signatureVerifyCost = 500

// RegisterQuery serves the signer nonces under "/auth".
func RegisterQuery(qr swapchain.QueryRouter) {
	NewBucket().Register("auth", qr)
}

// Decorator verifies the signatures of a SignedTx and grants the signer
// conditions to the rest of the stack. Every verified signature bumps the
// sequence of its signer, so a transaction cannot be replayed.
// Transactions that carry no signatures at all pass unchanged.
type Decorator struct {
	allowMissingSigs bool
}

var _ swapchain.Decorator = Decorator{}

// NewDecorator returns a decorator that rejects a SignedTx without
// signatures.
func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs returns a copy of the decorator that accepts a SignedTx
// without signatures.
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

func (d Decorator) Check(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx, next swapchain.Checker) (*swapchain.CheckResult, error) {
	ctx, n, err := d.authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.GasAllocated += int64(n) * signatureVerifyCost
	return res, nil
}

func (d Decorator) Deliver(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx, next swapchain.Deliverer) (*swapchain.DeliverResult, error) {
	ctx, _, err := d.authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

// authenticate returns the context with the signers granted and the number
// of verified signatures.
func (d Decorator) authenticate(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (swapchain.Context, int, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		return ctx, 0, nil
	}
	signers, err := VerifyTxSignatures(db, stx, swapchain.GetChainID(ctx))
	switch {
	case err != nil:
		return nil, 0, errors.Wrap(err, "cannot verify signatures")
	case len(signers) == 0 && !d.allowMissingSigs:
		return nil, 0, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return withSigners(ctx, signers), len(signers), nil
}
