package cash

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/coin"
	"github.com/iov-one/swapchain/errors"
	"github.com/iov-one/swapchain/x"
)

// Transfer moves all given coins from src to dest. The owner of src must be
// authenticated in the context, either by a signature or by a condition
// granted by another extension.
func Transfer(ctx swapchain.Context, auth x.Authenticator, db swapchain.KVStore, mover CoinMover, src, dest swapchain.Address, amounts coin.Coins) error {
	if !auth.HasAddress(ctx, src) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not authorized to transfer", src)
	}
	for _, c := range amounts {
		if err := mover.MoveCoins(db, src, dest, c); err != nil {
			return errors.Wrapf(err, "failed to move %q", c.String())
		}
	}
	return nil
}
