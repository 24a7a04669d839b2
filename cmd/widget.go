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

type publishCmd struct{}

func (*publishCmd) Name() string     { return "publish" }
func (*publishCmd) Synopsis() string { return "write the portfolio snapshot for the widget process" }
func (*publishCmd) Usage() string {
	return `fol publish

  Runs the full valuation and writes the reduced snapshot file that the
  refresh command can later update without access to the ledger.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {}

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := valuate()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	snapshot := folio.NewRefreshSnapshot(v, time.Now())

	out, err := os.Create(*snapshotFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating snapshot file %q: %v\n", *snapshotFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := folio.EncodeSnapshot(out, snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Published snapshot of %d holdings to %s\n", len(snapshot.Holdings), *snapshotFile)
	return subcommands.ExitSuccess
}

type refreshCmd struct {
	write bool
}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "update the published snapshot with current quotes" }
func (*refreshCmd) Usage() string {
	return `fol refresh [-w]

  Reads the published snapshot and the quotes file, recomputes value and
  unrealized P&L from the fresh prices, and displays the compact widget
  view. The ledger is never touched: assets missing from the quotes file
  are left out, and realized P&L is carried over unchanged.
`
}

func (c *refreshCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "Write the refreshed snapshot back to the snapshot file.")
}

func (c *refreshCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := os.Open(*snapshotFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening snapshot file %q: %v\n", *snapshotFile, err)
		return subcommands.ExitFailure
	}
	snapshot, err := folio.DecodeSnapshot(in)
	in.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	quotes, err := DecodeQuotes()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	now := time.Now()
	refreshed := snapshot.Recalculate(quotes.Prices(), now)

	if c.write {
		out, err := os.Create(*snapshotFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating snapshot file %q: %v\n", *snapshotFile, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		if err := folio.EncodeSnapshot(out, refreshed); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.SnapshotMarkdown(refreshed, now))
	return subcommands.ExitSuccess
}
