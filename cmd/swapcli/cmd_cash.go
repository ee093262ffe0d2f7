package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/x/cash"
)

func cmdSendTokens(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for transferring funds from the source account to the
destination account.
`)
		fl.PrintDefaults()
	}
	var (
		s        = signerFlags(fl)
		srcFl    = flAddress(fl, "src", "Optional source address. If not provided the main signer is used.")
		dstFl    = flAddress(fl, "dst", "A destination account address that the funds are sent to.")
		amountFl = flCoin(fl, "amount", "1 IOV", "An amount that is to be transferred.")
		memoFl   = fl.String("memo", "", "A short message attached to the transfer operation.")
	)
	fl.Parse(args)

	msg := &cash.SendMsg{
		Metadata:    swapchain.Metadata{Schema: 1},
		Source:      *srcFl,
		Destination: *dstFl,
		Amount:      *amountFl,
		Memo:        *memoFl,
	}
	return s.writeSigned(output, msg)
}
