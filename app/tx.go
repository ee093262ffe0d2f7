package app

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/crypto"
	"github.com/iov-one/swapchain/errors"
	"github.com/iov-one/swapchain/x/sigs"
)

// Tx is the transaction format of the application. It carries exactly one
// message and the signatures of everyone authorizing it.
type Tx struct {
	Msg        swapchain.Msg        `json:"msg"`
	Signatures []*sigs.StdSignature `json:"signatures"`
}

var _ swapchain.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg returns the message of the transaction.
func (tx *Tx) GetMsg() (swapchain.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrInvalidMsg, "no message")
	}
	return tx.Msg, nil
}

// GetSignatures returns all signatures of the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the serialized transaction without the signatures.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := Tx{Msg: tx.Msg}
	raw, err := cdc.MarshalBinaryBare(unsigned)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidMsg, err.Error())
	}
	return raw, nil
}

// Marshal serializes the transaction into its wire format.
func (tx *Tx) Marshal() ([]byte, error) {
	raw, err := cdc.MarshalBinaryBare(*tx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidMsg, err.Error())
	}
	return raw, nil
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (swapchain.Tx, error) {
	if len(bz) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidInput, "empty transaction")
	}
	tx := new(Tx)
	if err := cdc.UnmarshalBinaryBare(bz, tx); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return tx, nil
}

// SignTx adds the signature of signer to the transaction. The sequence must
// be the next nonce of the signer.
func SignTx(tx *Tx, signer crypto.Signer, chainID string, seq int64) error {
	sig, err := sigs.SignTx(signer, tx, chainID, seq)
	if err != nil {
		return err
	}
	tx.Signatures = append(tx.Signatures, sig)
	return nil
}
