package folio

import (
	"sort"
	"time"
)

// Valuation is the complete derived state of a portfolio: the pure function
// of the transaction ledger and a set of current quotes. It is recomputed
// from scratch on every invocation; nothing here is incrementally patched,
// so the same ledger and quotes always produce the same valuation, whichever
// process runs the computation.
type Valuation struct {
	Time time.Time // generation time, supplied by the caller

	Holdings        []Holding             // open positions, by current value descending
	ClosedPositions []ClosedPosition      // every closed cycle, in detection order
	Groups          []ClosedPositionGroup // per-asset rollups, most recent close first
	PartialRealized Money                 // gains locked in inside still-open positions
	Summary         PortfolioSummary
}

// NewValuation runs the full pipeline once: per asset, cycle detection, then
// holdings from the open remainder, closed positions from the cycles, and
// the portfolio rollups.
//
// Assets without a quote contribute no holding (a partial price feed degrades
// gracefully rather than corrupting totals); their closed cycles still count,
// since realized P&L needs no current price.
func NewValuation(l *Ledger, quotes Quotes, now time.Time) *Valuation {
	v := &Valuation{Time: now}

	for asset := range l.Assets() {
		cycles, remainder := Cycles(l.AssetTransactions(asset))
		quote, quoted := quotes[asset]

		for _, cycle := range cycles {
			if p, ok := NewClosedPosition(asset, cycle, quote); ok {
				v.ClosedPositions = append(v.ClosedPositions, p)
			}
		}

		if quoted {
			if h, ok := NewHolding(asset, remainder, quote); ok {
				v.Holdings = append(v.Holdings, h)
			}
		}

		v.PartialRealized = v.PartialRealized.Add(PartialRealizedGains(remainder))
	}

	sort.SliceStable(v.Holdings, func(i, j int) bool {
		if !v.Holdings[i].CurrentValue.Equal(v.Holdings[j].CurrentValue) {
			return v.Holdings[j].CurrentValue.LessThan(v.Holdings[i].CurrentValue)
		}
		return v.Holdings[i].Asset < v.Holdings[j].Asset
	})

	v.Groups = GroupClosedPositions(v.ClosedPositions)
	v.Summary = NewPortfolioSummary(v.Holdings, v.ClosedPositions)
	return v
}

// TotalRealized composes the full realized P&L figure: closed cycles plus
// the partial gains already locked in inside open positions.
func (v *Valuation) TotalRealized() Money {
	return v.Summary.RealizedPnL.Add(v.PartialRealized)
}
