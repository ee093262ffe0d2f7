package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/x/offer"
)

func cmdCreateOffer(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction offering coins in exchange for a different currency. The
offered amount is moved from the maker wallet into the offer holding wallet
until the offer is fulfilled or cancelled.
`)
		fl.PrintDefaults()
	}
	var (
		s         = signerFlags(fl)
		idFl      = fl.Uint64("id", 0, "Offer ID, unique among the open offers.")
		makerFl   = flAddress(fl, "maker", "Optional maker address. If not provided the main signer is used.")
		offeredFl = flCoin(fl, "offered", "", "Amount the maker gives, for example \"4 IOV\".")
		wantedFl  = flCoin(fl, "wanted", "", "Amount the maker expects in return, for example \"2 ETH\".")
	)
	fl.Parse(args)

	msg := &offer.CreateMsg{
		Metadata: swapchain.Metadata{Schema: 1},
		ID:       *idFl,
		Maker:    *makerFl,
		Offered:  *offeredFl,
		Wanted:   *wantedFl,
	}
	return s.writeSigned(output, msg)
}

func cmdFulfillOffer(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction accepting an open offer. The taker pays the wanted amount
to the maker and receives the escrowed coins.
`)
		fl.PrintDefaults()
	}
	var (
		s       = signerFlags(fl)
		idFl    = fl.Uint64("id", 0, "Offer ID.")
		takerFl = flAddress(fl, "taker", "Optional taker address. If not provided the main signer is used.")
	)
	fl.Parse(args)

	msg := &offer.FulfillMsg{
		Metadata: swapchain.Metadata{Schema: 1},
		ID:       *idFl,
		Taker:    *takerFl,
	}
	return s.writeSigned(output, msg)
}

func cmdCancelOffer(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction withdrawing an open offer. Escrowed coins are returned to
the maker. Only the maker can cancel an offer.
`)
		fl.PrintDefaults()
	}
	var (
		s    = signerFlags(fl)
		idFl = fl.Uint64("id", 0, "Offer ID.")
	)
	fl.Parse(args)

	msg := &offer.CancelMsg{
		Metadata: swapchain.Metadata{Schema: 1},
		ID:       *idFl,
	}
	return s.writeSigned(output, msg)
}
