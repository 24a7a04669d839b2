package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/tkeffer/folio"
)

type quoteCmd struct {
	asset    string
	symbol   string
	name     string
	price    string
	currency string

	jsonFile string
	path     string
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "set the current price of an asset" }
func (*quoteCmd) Usage() string {
	return `fol quote -a <asset> (-p <price> | -json <file> -path <jsonpath>) [-symbol <symbol>] [-name <name>] [-c <currency>]

  Updates the quotes file with the current price of one asset. The price is
  either given directly with -p, or extracted from a provider JSON payload
  already downloaded to a file, using a jsonpath expression.

Usage Examples:
# Set the bitcoin price directly.
$ fol quote -a BTC -p 48000 -symbol BTC -name Bitcoin

# Extract the price from a provider payload.
$ fol quote -a BTC -json payload.json -path '$.data.last'
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "Asset identifier (required)")
	f.StringVar(&c.symbol, "symbol", "", "Display symbol for the asset")
	f.StringVar(&c.name, "name", "", "Display name for the asset")
	f.StringVar(&c.price, "p", "", "Price per unit, a decimal string")
	f.StringVar(&c.currency, "c", "USD", "Currency of the price, 3-letter code")
	f.StringVar(&c.jsonFile, "json", "", "Provider JSON payload to extract the price from")
	f.StringVar(&c.path, "path", "", "jsonpath expression locating the price in the payload")
}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" {
		fmt.Fprintln(os.Stderr, "Error: -a flag is required.")
		return subcommands.ExitUsageError
	}

	price, status := c.resolvePrice()
	if status != subcommands.ExitSuccess {
		return status
	}

	quotes, err := DecodeQuotes()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Keep the previous identity fields when the flags do not override them.
	quote := quotes[c.asset]
	if c.symbol != "" {
		quote.Symbol = c.symbol
	}
	if c.name != "" {
		quote.Name = c.name
	}
	quote.Price = price
	quote.At = time.Now()
	quotes[c.asset] = quote

	if err := EncodeQuotes(quotes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %s to %s in %s\n", c.asset, price, *quotesFile)
	return subcommands.ExitSuccess
}

// resolvePrice turns the flags into a price, either directly or through a
// jsonpath extraction from a provider payload.
func (c *quoteCmd) resolvePrice() (folio.Money, subcommands.ExitStatus) {
	switch {
	case c.price != "":
		price, err := folio.ParseMoney(c.price, c.currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid price %q: %v\n", c.price, err)
			return folio.Money{}, subcommands.ExitUsageError
		}
		return price, subcommands.ExitSuccess

	case c.jsonFile != "" && c.path != "":
		data, err := os.ReadFile(c.jsonFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading payload %q: %v\n", c.jsonFile, err)
			return folio.Money{}, subcommands.ExitFailure
		}
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing payload %q: %v\n", c.jsonFile, err)
			return folio.Money{}, subcommands.ExitFailure
		}
		d, err := folio.ExtractPrice(doc, c.path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return folio.Money{}, subcommands.ExitFailure
		}
		return folio.M(d, c.currency), subcommands.ExitSuccess

	default:
		fmt.Fprintln(os.Stderr, "Error: either -p or both -json and -path flags are required.")
		return folio.Money{}, subcommands.ExitUsageError
	}
}
