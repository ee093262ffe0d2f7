package app

import (
	"testing"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/coin"
	"github.com/iov-one/swapchain/errors"
	"github.com/iov-one/swapchain/weavetest"
	"github.com/iov-one/swapchain/x/cash"
	"github.com/iov-one/swapchain/x/offer"
	"github.com/iov-one/swapchain/x/sigs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxEncoding(t *testing.T) {
	key := weavetest.NewKey()
	msgs := map[string]swapchain.Msg{
		"create": &offer.CreateMsg{
			Metadata: swapchain.Metadata{Schema: 1},
			ID:       42,
			Maker:    key.PublicKey().Address(),
			Offered:  coin.NewCoin(1, 2, "IOV"),
			Wanted:   coin.NewCoin(3, 4, "ETH"),
		},
		"fulfill": &offer.FulfillMsg{Metadata: swapchain.Metadata{Schema: 1}, ID: 42},
		"cancel":  &offer.CancelMsg{Metadata: swapchain.Metadata{Schema: 1}, ID: 42},
		"send": &cash.SendMsg{
			Metadata:    swapchain.Metadata{Schema: 1},
			Source:      key.PublicKey().Address(),
			Destination: weavetest.NewCondition().Address(),
			Amount:      coin.NewCoin(5, 0, "IOV"),
			Memo:        "lunch",
		},
	}

	for name, msg := range msgs {
		t.Run(name, func(t *testing.T) {
			tx := &Tx{Msg: msg}
			require.NoError(t, SignTx(tx, key, testChainID, 7))
			raw, err := tx.Marshal()
			require.NoError(t, err)

			decoded, err := TxDecoder(raw)
			require.NoError(t, err)
			got, err := decoded.GetMsg()
			require.NoError(t, err)
			assert.Equal(t, msg, got)

			// The signature still verifies after the round trip.
			stx := decoded.(sigs.SignedTx)
			require.Len(t, stx.GetSignatures(), 1)
			sig := stx.GetSignatures()[0]
			assert.Equal(t, int64(7), sig.Sequence)
			signBytes, err := sigs.BuildSignBytesTx(stx, testChainID, 7)
			require.NoError(t, err)
			assert.True(t, key.PublicKey().Verify(signBytes, &sig.Signature))
		})
	}
}

func TestSignBytesIgnoreSignatures(t *testing.T) {
	tx := &Tx{Msg: &offer.CancelMsg{Metadata: swapchain.Metadata{Schema: 1}, ID: 1}}
	before, err := tx.GetSignBytes()
	require.NoError(t, err)
	require.NoError(t, SignTx(tx, weavetest.NewKey(), testChainID, 0))
	after, err := tx.GetSignBytes()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestTxDecoderErrors(t *testing.T) {
	_, err := TxDecoder(nil)
	assert.True(t, errors.ErrInvalidInput.Is(err))

	_, err = TxDecoder([]byte{0xff, 0xff, 0xff})
	assert.True(t, errors.ErrInvalidInput.Is(err))

	_, err = (&Tx{}).GetMsg()
	assert.True(t, errors.ErrInvalidMsg.Is(err))
}
