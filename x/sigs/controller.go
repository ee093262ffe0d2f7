package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/crypto"
	"github.com/iov-one/swapchain/errors"
	"github.com/iov-one/swapchain/orm"
)

// SignCodeV1 prefixes the signed bytes and versions their layout.
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

// VerifyTxSignatures verifies every signature of the transaction and
// returns the signer conditions, in the order of the signatures. Each
// signer sequence is incremented. Any invalid signature fails the whole
// transaction.
func VerifyTxSignatures(db swapchain.KVStore, tx SignedTx, chainID string) ([]swapchain.Condition, error) {
	msg, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "sign bytes")
	}
	sigs := tx.GetSignatures()
	b := NewBucket()
	signers := make([]swapchain.Condition, 0, len(sigs))
	for i, sig := range sigs {
		cond, err := verify(db, b, sig, msg, chainID)
		if err != nil {
			return nil, errors.Wrapf(err, "signature #%d", i)
		}
		signers = append(signers, cond)
	}
	return signers, nil
}

// VerifySignature verifies a single signature of msg and increments the
// sequence of the signer.
func VerifySignature(db swapchain.KVStore, sig *StdSignature, msg []byte, chainID string) (swapchain.Condition, error) {
	return verify(db, NewBucket(), sig, msg, chainID)
}

func verify(db swapchain.KVStore, b orm.ModelBucket, sig *StdSignature, msg []byte, chainID string) (swapchain.Condition, error) {
	if sig == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(msg, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}

	user, err := loadOrCreate(db, b, sig.Pubkey)
	if err != nil {
		return nil, errors.Wrap(err, "load user")
	}
	if !user.Pubkey.Verify(digest, &sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}
	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := b.Put(db, user.Pubkey.Address(), user); err != nil {
		return nil, errors.Wrap(err, "save user")
	}
	return user.Pubkey.Condition(), nil
}

// BuildSignBytes returns the digest a signer signs. It is the sha512 hash
// of
//
//   SignCodeV1 | len(chainID) as one byte | chainID | seq as big endian uint64 | msg
//
// Binding the chain id and the sequence prevents replays on another chain
// or a second time on the same one.
func BuildSignBytes(msg []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	}
	if !swapchain.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "chain id: %v", chainID)
	}

	var seqBytes [8]byte
	binary.BigEndian.PutUint64(seqBytes[:], uint64(seq))

	h := sha512.New()
	h.Write(SignCodeV1)
	h.Write([]byte{byte(len(chainID))})
	h.Write([]byte(chainID))
	h.Write(seqBytes[:])
	h.Write(msg)
	return h.Sum(nil), nil
}

// BuildSignBytesTx is BuildSignBytes for the sign bytes of tx.
func BuildSignBytesTx(tx SignedTx, chainID string, seq int64) ([]byte, error) {
	msg, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	return BuildSignBytes(msg, chainID, seq)
}

// SignTx returns the signature of tx by signer with the given sequence.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	digest, err := BuildSignBytesTx(tx, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return nil, err
	}
	return &StdSignature{
		Pubkey:    *signer.PublicKey(),
		Signature: *sig,
		Sequence:  seq,
	}, nil
}
