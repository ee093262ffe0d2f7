package app

import (
	"context"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/x/cash"
	"github.com/iov-one/swapchain/x/offer"
	"github.com/iov-one/swapchain/x/sigs"
	"github.com/iov-one/swapchain/x/utils"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is returned by the abci Info call.
const Name = "swapchain"

// Stack wires up the decorators and the router that process every
// transaction. Signatures are the only source of authentication.
func Stack() swapchain.Handler {
	return ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		sigs.NewDecorator(),
		// Nothing a failed transaction wrote past this point is kept.
		utils.NewSavepoint().OnDeliver(),
		utils.NewActionTagger(),
	).WithHandler(NewRouter(sigs.Authenticate{}))
}

// QueryRouter returns a router serving the wallets, the offers and the
// signer nonces.
func QueryRouter() swapchain.QueryRouter {
	r := swapchain.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		offer.RegisterQuery,
		sigs.RegisterQuery,
	)
	return r
}

// Initializers returns the genesis initializers of the application.
func Initializers() swapchain.Initializer {
	return swapchain.MultiInitializer{
		cash.Initializer{},
	}
}

// NewApplication returns the abci application running on top of given
// store.
func NewApplication(kv swapchain.CommitKVStore, logger log.Logger, debug bool) *BaseApp {
	s := NewStoreApp(Name, kv, QueryRouter(), context.Background()).
		WithInit(Initializers()).
		WithLogger(logger).
		WithDebug(debug)
	return NewBaseApp(s, TxDecoder, Stack())
}
