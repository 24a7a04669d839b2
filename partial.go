package folio

// PartialRealizedGains computes the gains already locked in by sells that
// reduced, but did not zero, the position described by one asset's open
// remainder. Each sell realizes (sale price - average cost) per unit, with
// the average cost taken over the remainder's buys only.
//
// The result is additive to, and distinct from, the realized P&L of closed
// cycles: a caller composing a full realized figure must add both.
func PartialRealizedGains(remainder []Transaction) Money {
	avgCost, _ := averageBuyCost(remainder)

	var gains Money
	for _, tx := range remainder {
		if tx.Kind == Sell {
			gains = gains.Add(tx.UnitPrice.Sub(avgCost).Mul(tx.Quantity))
		}
	}
	return gains
}

// TotalPartialRealizedGains sums the partial realized gains over every
// asset's open remainder in the ledger.
func TotalPartialRealizedGains(l *Ledger) Money {
	var total Money
	for asset := range l.Assets() {
		total = total.Add(PartialRealizedGains(OpenRemainder(l.AssetTransactions(asset))))
	}
	return total
}
