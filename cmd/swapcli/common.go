package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/app"
	"github.com/iov-one/swapchain/coin"
)

// signer holds the flags shared by all commands producing a transaction.
type signer struct {
	keyPath *string
	chainID *string
	seq     *int64
}

func signerFlags(fl *flag.FlagSet) signer {
	return signer{
		keyPath: fl.String("key", defaultKeyPath(),
			"Path to the private key file that transaction should be signed with. You can use SWAPCLI_PRIV_KEY environment variable to set it."),
		chainID: fl.String("chain-id", env("SWAPCLI_CHAIN_ID", ""),
			"Chain ID the transaction is signed for. You can use SWAPCLI_CHAIN_ID environment variable to set it."),
		seq: fl.Int64("seq", 0, "Current sequence (nonce) of the signing account."),
	}
}

// writeSigned signs a transaction carrying given message and writes it hex
// encoded to the output.
func (s signer) writeSigned(output io.Writer, msg swapchain.Msg) error {
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("invalid message: %s", err)
	}
	key, err := loadPrivateKey(*s.keyPath)
	if err != nil {
		return err
	}
	tx := &app.Tx{Msg: msg}
	if err := app.SignTx(tx, key, *s.chainID, *s.seq); err != nil {
		return fmt.Errorf("cannot sign transaction: %s", err)
	}
	return writeTx(output, tx)
}

func writeTx(w io.Writer, tx *app.Tx) error {
	raw, err := tx.Marshal()
	if err != nil {
		return fmt.Errorf("cannot serialize transaction: %s", err)
	}
	_, err = fmt.Fprintln(w, hex.EncodeToString(raw))
	return err
}

func readTx(r io.Reader) (*app.Tx, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read transaction: %s", err)
	}
	bin, err := hex.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("cannot decode hex: %s", err)
	}
	tx, err := app.TxDecoder(bin)
	if err != nil {
		return nil, fmt.Errorf("cannot deserialize transaction: %s", err)
	}
	return tx.(*app.Tx), nil
}

// flCoin returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided.
// If given value cannot be deserialized, process is terminated.
func flCoin(fl *flag.FlagSet, name, defaultVal, usage string) *coin.Coin {
	var c coin.Coin
	if defaultVal != "" {
		var err error
		c, err = coin.ParseHumanFormat(defaultVal)
		if err != nil {
			flagDie("cannot parse %q coin flag value: %s", name, err)
		}
	}
	fl.Var(&c, name, usage)
	return &c
}

func flAddress(fl *flag.FlagSet, name, usage string) *swapchain.Address {
	var a swapchain.Address
	fl.Var(&a, name, usage)
	return &a
}

// flagDie terminates the program when a command line flag is not valid.
func flagDie(description string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, description, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(2)
}
