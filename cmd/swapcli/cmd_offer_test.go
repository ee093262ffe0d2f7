package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iov-one/swapchain/coin"
	"github.com/iov-one/swapchain/weavetest/assert"
	"github.com/iov-one/swapchain/x/cash"
	"github.com/iov-one/swapchain/x/offer"
	"github.com/iov-one/swapchain/x/sigs"
)

const chainID = "swap-test-1"

func TestCmdCreateOffer(t *testing.T) {
	key, path, cleanup := tempKey(t)
	defer cleanup()

	var output bytes.Buffer
	args := []string{
		"-key", path,
		"-chain-id", chainID,
		"-seq", "3",
		"-id", "9",
		"-offered", "4 IOV",
		"-wanted", "0.5 ETH",
	}
	if err := cmdCreateOffer(nil, &output, args); err != nil {
		t.Fatalf("cannot create offer transaction: %s", err)
	}

	tx, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot read created transaction: %s", err)
	}
	msg, ok := tx.Msg.(*offer.CreateMsg)
	if !ok {
		t.Fatalf("unexpected message: %T", tx.Msg)
	}
	assert.Equal(t, uint64(9), msg.ID)
	assert.Equal(t, coin.NewCoin(4, 0, "IOV"), msg.Offered)
	assert.Equal(t, coin.NewCoin(0, 500000000, "ETH"), msg.Wanted)
	assert.Equal(t, 0, len(msg.Maker))

	if len(tx.Signatures) != 1 {
		t.Fatalf("want one signature, got %d", len(tx.Signatures))
	}
	sig := tx.Signatures[0]
	assert.Equal(t, int64(3), sig.Sequence)
	signBytes, err := sigs.BuildSignBytesTx(tx, chainID, 3)
	assert.Nil(t, err)
	if !key.PublicKey().Verify(signBytes, &sig.Signature) {
		t.Fatal("invalid signature")
	}
}

func TestCmdFulfillAndCancelOffer(t *testing.T) {
	_, path, cleanup := tempKey(t)
	defer cleanup()

	var output bytes.Buffer
	if err := cmdFulfillOffer(nil, &output, []string{"-key", path, "-chain-id", chainID, "-id", "2"}); err != nil {
		t.Fatalf("cannot create fulfill transaction: %s", err)
	}
	tx, err := readTx(&output)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), tx.Msg.(*offer.FulfillMsg).ID)

	output.Reset()
	if err := cmdCancelOffer(nil, &output, []string{"-key", path, "-chain-id", chainID, "-id", "2"}); err != nil {
		t.Fatalf("cannot create cancel transaction: %s", err)
	}
	tx, err = readTx(&output)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), tx.Msg.(*offer.CancelMsg).ID)
}

func TestCmdOfferRejectsInvalid(t *testing.T) {
	_, path, cleanup := tempKey(t)
	defer cleanup()

	cases := map[string][]string{
		"same currency":     {"-key", path, "-chain-id", chainID, "-id", "1", "-offered", "1 IOV", "-wanted", "2 IOV"},
		"missing chain id":  {"-key", path, "-chain-id", "", "-id", "1", "-offered", "1 IOV", "-wanted", "1 ETH"},
		"missing key file":  {"-key", path + ".missing", "-chain-id", chainID, "-id", "1", "-offered", "1 IOV", "-wanted", "1 ETH"},
		"nothing is wanted": {"-key", path, "-chain-id", chainID, "-id", "1", "-offered", "1 IOV"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var output bytes.Buffer
			if err := cmdCreateOffer(nil, &output, args); err == nil {
				t.Fatal("want error")
			}
			assert.Equal(t, 0, output.Len())
		})
	}
}

func TestCmdSendTokens(t *testing.T) {
	_, path, cleanup := tempKey(t)
	defer cleanup()

	var output bytes.Buffer
	args := []string{
		"-key", path,
		"-chain-id", chainID,
		"-dst", "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
		"-amount", "5 IOV",
		"-memo", "a memo",
	}
	if err := cmdSendTokens(nil, &output, args); err != nil {
		t.Fatalf("cannot create transfer transaction: %s", err)
	}
	tx, err := readTx(&output)
	assert.Nil(t, err)
	msg := tx.Msg.(*cash.SendMsg)
	assert.Equal(t, "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0", msg.Destination.String())
	assert.Equal(t, coin.NewCoin(5, 0, "IOV"), msg.Amount)
	assert.Equal(t, "a memo", msg.Memo)
}

func TestCmdTransactionView(t *testing.T) {
	_, path, cleanup := tempKey(t)
	defer cleanup()

	var tx bytes.Buffer
	if err := cmdCancelOffer(nil, &tx, []string{"-key", path, "-chain-id", chainID, "-id", "5"}); err != nil {
		t.Fatalf("cannot create cancel transaction: %s", err)
	}
	var view bytes.Buffer
	if err := cmdTransactionView(&tx, &view, nil); err != nil {
		t.Fatalf("cannot view transaction: %s", err)
	}
	if !strings.Contains(view.String(), `"path": "offer/cancel"`) {
		t.Fatalf("unexpected view: %s", view.String())
	}

	if err := cmdTransactionView(strings.NewReader("zz"), &view, nil); err == nil {
		t.Fatal("invalid hex must be rejected")
	}
}
