// Package cmd implements the CLI application to manage a portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/tkeffer/folio"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&fmtCmd{}, "transactions")

	c.Register(&holdingsCmd{}, "reports")
	c.Register(&closedCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&quoteCmd{}, "quotes")

	c.Register(&publishCmd{}, "widget")
	c.Register(&refreshCmd{}, "widget")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file containing transactions (JSONL format)")
var quotesFile = flag.String("quotes-file", "quotes.json", "Path to the quotes file containing current prices (JSON format)")
var snapshotFile = flag.String("snapshot-file", "snapshot.json", "Path to the published portfolio snapshot (JSON format)")

// DecodeLedger decodes the app ledger file. A missing file is an empty
// ledger, not an error.
func DecodeLedger() (*folio.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, using an empty ledger instead")
		return folio.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return folio.DecodeLedger(f)
}

// DecodeQuotes decodes the app quotes file. A missing file means no quotes.
func DecodeQuotes() (folio.Quotes, error) {
	f, err := os.Open(*quotesFile)
	if errors.Is(err, fs.ErrNotExist) {
		return folio.Quotes{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open quotes file %q: %w", *quotesFile, err)
	}
	defer f.Close()
	return folio.DecodeQuotes(f)
}

// EncodeQuotes writes the quotes back to the app quotes file.
func EncodeQuotes(quotes folio.Quotes) error {
	f, err := os.Create(*quotesFile)
	if err != nil {
		return fmt.Errorf("could not create quotes file %q: %w", *quotesFile, err)
	}
	defer f.Close()
	return folio.EncodeQuotes(f, quotes)
}

// EncodeTransaction appends a single transaction to the app ledger file.
func EncodeTransaction(tx folio.Transaction) subcommands.ExitStatus {
	filename := *ledgerFile
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := folio.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", filename)
	return subcommands.ExitSuccess
}
