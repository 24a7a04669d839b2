package folio

// PortfolioSummary is the portfolio-wide rollup of open holdings and closed
// positions.
type PortfolioSummary struct {
	TotalValue    Money // sum of holding current values
	UnrealizedPnL Money // sum of holding profit/loss
	RealizedPnL   Money // sum of closed-cycle realized P&L

	// cost bases kept only to derive the percentage.
	totalOpenCost   Money
	totalClosedCost Money
}

// NewPortfolioSummary aggregates holdings and closed positions into a
// portfolio summary.
func NewPortfolioSummary(holdings []Holding, closed []ClosedPosition) PortfolioSummary {
	var s PortfolioSummary
	for _, h := range holdings {
		s.TotalValue = s.TotalValue.Add(h.CurrentValue)
		s.UnrealizedPnL = s.UnrealizedPnL.Add(h.ProfitLoss)
		s.totalOpenCost = s.totalOpenCost.Add(h.OpenCost())
	}
	for _, p := range closed {
		s.RealizedPnL = s.RealizedPnL.Add(p.RealizedPnL)
		s.totalClosedCost = s.totalClosedCost.Add(p.Invested())
	}
	return s
}

// TotalPnL returns unrealized plus realized profit and loss.
func (s PortfolioSummary) TotalPnL() Money {
	return s.UnrealizedPnL.Add(s.RealizedPnL)
}

// TotalPnLPercentage relates the total P&L to all capital ever committed,
// open and closed. Zero when no capital was committed.
func (s PortfolioSummary) TotalPnLPercentage() Percent {
	committed := s.totalOpenCost.Add(s.totalClosedCost)
	return gainPercent(committed.Add(s.TotalPnL()), committed)
}
