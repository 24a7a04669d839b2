package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/tkeffer/folio"
)

// tradeFlags are the flags shared by the buy and sell commands.
type tradeFlags struct {
	asset    string
	quantity string
	price    string
	currency string
	date     string
	note     string
}

func (c *tradeFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "Asset identifier (required)")
	f.StringVar(&c.quantity, "q", "", "Number of units, a decimal string (required)")
	f.StringVar(&c.price, "p", "", "Price per unit, a decimal string (required)")
	f.StringVar(&c.currency, "c", "USD", "Currency of the unit price, 3-letter code")
	f.StringVar(&c.date, "d", "", "Timestamp of the trade (RFC3339 or YYYY-MM-DD), defaults to now")
	f.StringVar(&c.note, "note", "", "Optional note attached to the transaction")
}

// parse validates the shared flags and converts them to domain values.
func (c *tradeFlags) parse() (folio.Quantity, folio.Money, time.Time, error) {
	if c.asset == "" || c.quantity == "" || c.price == "" {
		return folio.Quantity{}, folio.Money{}, time.Time{}, fmt.Errorf("-a, -q and -p flags are required")
	}
	quantity, err := folio.ParseQuantity(c.quantity)
	if err != nil {
		return folio.Quantity{}, folio.Money{}, time.Time{}, fmt.Errorf("invalid quantity %q: %w", c.quantity, err)
	}
	price, err := folio.ParseMoney(c.price, c.currency)
	if err != nil {
		return folio.Quantity{}, folio.Money{}, time.Time{}, fmt.Errorf("invalid price %q: %w", c.price, err)
	}
	at, err := parseTimestamp(c.date)
	if err != nil {
		return folio.Quantity{}, folio.Money{}, time.Time{}, err
	}
	return quantity, price, at, nil
}

// parseTimestamp accepts a full RFC3339 timestamp or a plain date; an empty
// string means now.
func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q, want RFC3339 or YYYY-MM-DD", s)
	}
	return t, nil
}

type buyCmd struct{ tradeFlags }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record the purchase of an asset" }
func (*buyCmd) Usage() string {
	return `buy -a <asset> -q <quantity> -p <unit_price> [-c <currency>] [-d <date>] [-note <note>]

  Appends a buy transaction to the ledger.

Usage Examples:
# Buy half a bitcoin at 45000 USD.
$ fol buy -a BTC -q 0.5 -p 45000
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quantity, price, at, err := c.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return appendTrade(folio.NewBuy(c.asset, quantity, price, at, c.note))
}

type sellCmd struct{ tradeFlags }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of an asset" }
func (*sellCmd) Usage() string {
	return `sell -a <asset> -q <quantity> -p <unit_price> [-c <currency>] [-d <date>] [-note <note>]

  Appends a sell transaction to the ledger.

Usage Examples:
# Sell two bitcoins at 50000 USD.
$ fol sell -a BTC -q 2 -p 50000
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quantity, price, at, err := c.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return appendTrade(folio.NewSell(c.asset, quantity, price, at, c.note))
}

// appendTrade validates the transaction against the existing ledger before
// appending it to the file, so a broken record never reaches the disk.
func appendTrade(tx folio.Transaction) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.Append(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return EncodeTransaction(tx)
}
