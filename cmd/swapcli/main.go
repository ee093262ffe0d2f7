package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iov-one/swapchain"
)

// commands is a register of all available commands. The name is used to
// match with the first argument given.
//
// A command function is given stdin, stdout and the command line arguments
// without the program name and the command name. It must parse the
// arguments itself and read and write only to the provided input and
// output. An invalid argument may be reported to os.Stderr followed by an
// os.Exit(2) call.
//
// Transaction building commands write a signed transaction, hex encoded,
// ready to be broadcast. Use view to check what is being authorized:
//
//   $ swapcli offer-create -id 1 -offered "4 IOV" -wanted "2 ETH" \
//       | swapcli view
//
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"address":       cmdAddress,
	"holding":       cmdHolding,
	"keygen":        cmdKeygen,
	"offer-cancel":  cmdCancelOffer,
	"offer-create":  cmdCreateOffer,
	"offer-fulfill": cmdFulfillOffer,
	"send":          cmdSendTokens,
	"version":       cmdVersion,
	"view":          cmdTransactionView,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for the swapchain application.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	_, err := fmt.Fprintln(out, swapchain.Version())
	return err
}
