package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/tkeffer/folio"
	"github.com/tkeffer/folio/renderer"
)

// valuate loads the ledger and quotes and runs the full valuation pipeline.
func valuate() (*folio.Valuation, error) {
	ledger, err := DecodeLedger()
	if err != nil {
		return nil, err
	}
	quotes, err := DecodeQuotes()
	if err != nil {
		return nil, err
	}
	return folio.NewValuation(ledger, quotes, time.Now()), nil
}

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the current open positions" }
func (*holdingsCmd) Usage() string {
	return `fol holdings

  Computes and displays the open positions from the ledger and the current
  quotes. Assets without a quote are not displayed.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := valuate()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HoldingsMarkdown(v.Holdings))
	return subcommands.ExitSuccess
}

type closedCmd struct{}

func (*closedCmd) Name() string     { return "closed" }
func (*closedCmd) Synopsis() string { return "display closed positions grouped by asset" }
func (*closedCmd) Usage() string {
	return `fol closed

  Detects the completed trading cycles in the ledger and displays the
  realized profit and loss per asset, most recent close first.
`
}

func (c *closedCmd) SetFlags(f *flag.FlagSet) {}

func (c *closedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := valuate()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ClosedMarkdown(v.Groups))
	return subcommands.ExitSuccess
}

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio-wide profit and loss rollup" }
func (*summaryCmd) Usage() string {
	return `fol summary

  Displays the total market value and the unrealized, realized and partial
  realized profit and loss of the whole portfolio.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := valuate()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(v))
	return subcommands.ExitSuccess
}
