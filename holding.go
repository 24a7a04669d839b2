package folio

// Holding is a currently open position, derived from the open remainder of
// one asset's transactions plus a current price.
type Holding struct {
	Asset        string // asset id
	Symbol       string // display symbol from the quote
	Name         string // display name from the quote
	CurrentPrice Money

	TotalQuantity Quantity // net units held, always positive
	AvgCost       Money    // weighted average cost per unit, buys only
	CurrentValue  Money    // TotalQuantity x CurrentPrice

	ProfitLoss           Money   // CurrentValue - TotalQuantity x AvgCost
	ProfitLossPercentage Percent // 0 when AvgCost or TotalQuantity is 0
}

// averageBuyCost returns the weighted average cost per unit of the buys in
// the remainder: total capital spent on buys divided by total units bought.
// It is independent of how many units have since been sold, which keeps the
// cost basis stable across partial sells. Zero when there are no buys.
func averageBuyCost(remainder []Transaction) (avgCost Money, totalBuys Quantity) {
	var totalBuyCost Money
	for _, tx := range remainder {
		if tx.Kind == Buy {
			totalBuys = totalBuys.Add(tx.Quantity)
			totalBuyCost = totalBuyCost.Add(tx.Cost())
		}
	}
	if totalBuys.IsZero() {
		return Money{cur: totalBuyCost.cur}, totalBuys
	}
	return totalBuyCost.Div(totalBuys), totalBuys
}

// NewHolding computes the open holding for one asset from its open remainder
// and current quote. It reports false when the remainder nets out to a
// non-positive quantity: a holding with quantity <= 0 must not exist.
func NewHolding(asset string, remainder []Transaction, quote Quote) (Holding, bool) {
	// Pass 1: average cost from contributed capital only.
	avgCost, _ := averageBuyCost(remainder)

	// Pass 2: net quantity and cost, selling at the already-computed average
	// rather than at the sale price.
	var totalQuantity Quantity
	var totalCost Money
	for _, tx := range remainder {
		switch tx.Kind {
		case Buy:
			totalQuantity = totalQuantity.Add(tx.Quantity)
			totalCost = totalCost.Add(tx.Cost())
		case Sell:
			totalQuantity = totalQuantity.Sub(tx.Quantity)
			totalCost = totalCost.Sub(avgCost.Mul(tx.Quantity))
		}
	}

	if !totalQuantity.IsPositive() {
		return Holding{}, false
	}

	// totalCost now equals totalQuantity x avgCost: cost reduction on a sell
	// is proportional to the average, not to the sale price.
	currentValue := quote.Price.Mul(totalQuantity)
	openCost := totalCost

	return Holding{
		Asset:                asset,
		Symbol:               quote.Symbol,
		Name:                 quote.Name,
		CurrentPrice:         quote.Price,
		TotalQuantity:        totalQuantity,
		AvgCost:              avgCost,
		CurrentValue:         currentValue,
		ProfitLoss:           currentValue.Sub(openCost),
		ProfitLossPercentage: gainPercent(currentValue, openCost),
	}, true
}

// OpenCost returns the capital still tied up in the holding at average cost.
func (h Holding) OpenCost() Money {
	return h.AvgCost.Mul(h.TotalQuantity)
}
