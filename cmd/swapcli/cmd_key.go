package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/crypto"
	"github.com/iov-one/swapchain/x/offer"
)

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new private key.

When successful a new file with hex encoded private key is created. This
command fails if the private key file already exists.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", defaultKeyPath(),
			"Path to the private key file. You can use SWAPCLI_PRIV_KEY environment variable to set it.")
	)
	fl.Parse(args)

	key := crypto.GenPrivKeyEd25519()
	if err := savePrivateKey(key, *keyPathFl); err != nil {
		return err
	}
	return writeAddress(output, key.PublicKey().Address())
}

func cmdAddress(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the address associated with your private key, both in hex and in
bech32 form.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", defaultKeyPath(),
			"Path to the private key file. You can use SWAPCLI_PRIV_KEY environment variable to set it.")
	)
	fl.Parse(args)

	key, err := loadPrivateKey(*keyPathFl)
	if err != nil {
		return err
	}
	return writeAddress(output, key.PublicKey().Address())
}

func cmdHolding(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the address of the wallet holding the escrowed funds of an offer.
Only the offer logic can move funds out of this wallet.
`)
		fl.PrintDefaults()
	}
	var (
		idFl = fl.Uint64("id", 0, "Offer ID.")
	)
	fl.Parse(args)

	if _, err := fmt.Fprintln(output, offer.OfferCondition(*idFl)); err != nil {
		return err
	}
	return writeAddress(output, offer.HoldingAddress(*idFl))
}

func writeAddress(output io.Writer, addr swapchain.Address) error {
	bech, err := addr.Bech32()
	if err != nil {
		return fmt.Errorf("cannot serialize to bech32: %s", err)
	}
	_, err = fmt.Fprintf(output, "%s\n%s\n", addr, bech)
	return err
}
