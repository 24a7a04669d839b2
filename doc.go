// Package folio derives the complete state of an investment portfolio from
// a plain transaction log. Nothing is stored besides the log and the current
// prices: holdings, closed positions and every profit figure are recomputed
// from scratch on each run, so the ledger file is the single source of truth
// and the same inputs always produce the same output.
//
// The core functionality includes:
//   - Ledger Management: an append-only, chronologically ordered record of
//     buy and sell transactions with exact decimal amounts.
//   - Cycle Detection: cutting each asset's history into closed trading
//     cycles (runs whose signed quantity balance returns to zero) and the
//     open remainder that follows.
//   - Valuation: open holdings at weighted average cost, realized profit
//     and loss per closed cycle, partial gains locked in by sells inside
//     open positions, and the portfolio-wide rollup.
//   - Snapshot Refresh: a reduced, versioned projection of the portfolio
//     that a separate constrained process can reprice from a bare price map
//     without access to the transaction history.
//
// This package serves as the foundational logic for the `fol` command-line
// tool.
package folio
