package sigs

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/weavetest"
)

// StdTx is a signed transaction carrying a raw payload.
type StdTx struct {
	weavetest.Tx
	Payload    []byte
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ swapchain.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	return &StdTx{
		Tx:      weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/payload"}},
		Payload: payload,
	}
}

func (tx *StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *StdTx) GetSignBytes() ([]byte, error) {
	return tx.Payload, nil
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []swapchain.Condition
}

var _ swapchain.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &swapchain.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &swapchain.DeliverResult{}, nil
}
