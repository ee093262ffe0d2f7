package app

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp is the complete abci application: StoreApp for state, queries
// and block lifecycle, plus the transaction decoder and the handler stack.
type BaseApp struct {
	*StoreApp
	decoder swapchain.TxDecoder
	handler swapchain.Handler
}

var _ abci.Application = (*BaseApp)(nil)

func NewBaseApp(store *StoreApp, decoder swapchain.TxDecoder, handler swapchain.Handler) *BaseApp {
	return &BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
	}
}

// DeliverTx executes a transaction of the current block. Only one
// transaction, check or delivery, runs at a time.
func (b *BaseApp) DeliverTx(raw []byte) abci.ResponseDeliverTx {
	tx, err := b.decode(raw)
	if err != nil {
		return swapchain.DeliverTxError(err, b.debug)
	}
	b.mtx.Lock()
	defer b.mtx.Unlock()
	res, err := b.handler.Deliver(b.txContext("deliver_tx", tx), b.DeliverStore(), tx)
	return swapchain.DeliverOrError(res, err, b.debug)
}

// CheckTx validates a transaction for the mempool against the check store.
func (b *BaseApp) CheckTx(raw []byte) abci.ResponseCheckTx {
	tx, err := b.decode(raw)
	if err != nil {
		return swapchain.CheckTxError(err, b.debug)
	}
	b.mtx.Lock()
	defer b.mtx.Unlock()
	res, err := b.handler.Check(b.txContext("check_tx", tx), b.CheckStore(), tx)
	return swapchain.CheckOrError(res, err, b.debug)
}

func (b *BaseApp) txContext(call string, tx swapchain.Tx) swapchain.Context {
	return swapchain.WithLogInfo(b.blockContext, "call", call, "path", swapchain.GetPath(tx))
}

// decode runs the decoder, turning a panic on malformed input into an
// error.
func (b *BaseApp) decode(raw []byte) (tx swapchain.Tx, err error) {
	defer errors.Recover(&err)
	return b.decoder(raw)
}
