package folio

import (
	"sort"
	"time"
)

// ClosedPosition is one fully closed trading cycle: a run of transactions
// whose signed quantity balance started and returned to zero.
type ClosedPosition struct {
	Asset  string
	Symbol string
	Name   string

	TotalQuantity Quantity // units bought over the cycle (equals units sold within tolerance)
	AvgCostPrice  Money    // weighted average buy price
	AvgSalePrice  Money    // weighted average sell price
	ClosedDate    time.Time

	RealizedPnL           Money
	RealizedPnLPercentage Percent

	CycleTransactions []Transaction // the slice that produced this position
}

// Invested returns the capital committed to the cycle at average cost.
func (p ClosedPosition) Invested() Money {
	return p.AvgCostPrice.Mul(p.TotalQuantity)
}

// Revenue returns the proceeds of the cycle at average sale price.
func (p ClosedPosition) Revenue() Money {
	return p.AvgSalePrice.Mul(p.TotalQuantity)
}

// NewClosedPosition aggregates one closed cycle into a ClosedPosition. It
// reports false when the cycle has no buy leg or no sell leg; such a
// candidate is dropped as a data-quality filter, not surfaced as an error.
func NewClosedPosition(asset string, cycle []Transaction, quote Quote) (ClosedPosition, bool) {
	var buyQuantity, sellQuantity Quantity
	var buyCost, sellRevenue Money
	var closedDate time.Time

	for _, tx := range cycle {
		switch tx.Kind {
		case Buy:
			buyQuantity = buyQuantity.Add(tx.Quantity)
			buyCost = buyCost.Add(tx.Cost())
		case Sell:
			sellQuantity = sellQuantity.Add(tx.Quantity)
			sellRevenue = sellRevenue.Add(tx.Cost())
			closedDate = tx.Timestamp
		}
	}

	if !buyQuantity.IsPositive() || !sellQuantity.IsPositive() {
		return ClosedPosition{}, false
	}

	avgCost := buyCost.Div(buyQuantity)
	avgSale := sellRevenue.Div(sellQuantity)

	return ClosedPosition{
		Asset:                 asset,
		Symbol:                quote.Symbol,
		Name:                  quote.Name,
		TotalQuantity:         buyQuantity,
		AvgCostPrice:          avgCost,
		AvgSalePrice:          avgSale,
		ClosedDate:            closedDate,
		RealizedPnL:           avgSale.Sub(avgCost).Mul(buyQuantity),
		RealizedPnLPercentage: gainPercent(avgSale, avgCost),
		CycleTransactions:     cycle,
	}, true
}

// ClosedPositionGroup rolls all closed positions of one asset into a single
// per-asset view, most recent close first.
type ClosedPositionGroup struct {
	Asset  string
	Symbol string
	Name   string

	CycleCount       int
	Positions        []ClosedPosition
	TotalRealizedPnL Money
	// TotalRealizedPnLPercentage weights each cycle by its invested capital:
	// it is the ratio of aggregate revenue to aggregate invested capital,
	// not an average of the per-cycle percentages.
	TotalRealizedPnLPercentage Percent
	MostRecentClose            time.Time
}

// GroupClosedPositions groups closed positions by asset and returns the
// groups sorted by most recent close, descending. Ties keep the asset-id
// order so output is deterministic.
func GroupClosedPositions(positions []ClosedPosition) []ClosedPositionGroup {
	byAsset := make(map[string]*ClosedPositionGroup)
	var order []string

	for _, p := range positions {
		g, ok := byAsset[p.Asset]
		if !ok {
			g = &ClosedPositionGroup{Asset: p.Asset, Symbol: p.Symbol, Name: p.Name}
			byAsset[p.Asset] = g
			order = append(order, p.Asset)
		}
		g.CycleCount++
		g.Positions = append(g.Positions, p)
		g.TotalRealizedPnL = g.TotalRealizedPnL.Add(p.RealizedPnL)
		if p.ClosedDate.After(g.MostRecentClose) {
			g.MostRecentClose = p.ClosedDate
		}
	}

	groups := make([]ClosedPositionGroup, 0, len(order))
	for _, asset := range order {
		g := byAsset[asset]
		var invested, revenue Money
		for _, p := range g.Positions {
			invested = invested.Add(p.Invested())
			revenue = revenue.Add(p.Revenue())
		}
		g.TotalRealizedPnLPercentage = gainPercent(revenue, invested)
		groups = append(groups, *g)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if !groups[i].MostRecentClose.Equal(groups[j].MostRecentClose) {
			return groups[i].MostRecentClose.After(groups[j].MostRecentClose)
		}
		return groups[i].Asset < groups[j].Asset
	})
	return groups
}
