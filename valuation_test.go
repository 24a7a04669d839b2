package folio

import "testing"

// The end-to-end example: a closed cycle followed by a re-entry, valued at
// the current price.
func TestNewValuation_EndToEnd(t *testing.T) {
	l := mustLedger(
		buy("BTC", 2, 40000, 1),
		sell("BTC", 2, 50000, 3),
		buy("BTC", 1, 45000, 5),
	)
	quotes := Quotes{"BTC": quoted("BTC", 48000)}

	v := NewValuation(l, quotes, day(6))

	if len(v.ClosedPositions) != 1 {
		t.Fatalf("ClosedPositions = %d, want 1", len(v.ClosedPositions))
	}
	p := v.ClosedPositions[0]
	if !p.TotalQuantity.Equal(Q(2)) {
		t.Errorf("cycle quantity = %s, want 2", p.TotalQuantity)
	}
	if !p.AvgCostPrice.Equal(USD(40000)) {
		t.Errorf("cycle avg cost = %s, want 40000", p.AvgCostPrice.value)
	}
	if !p.AvgSalePrice.Equal(USD(50000)) {
		t.Errorf("cycle avg sale = %s, want 50000", p.AvgSalePrice.value)
	}
	if !p.RealizedPnL.Equal(USD(20000)) {
		t.Errorf("cycle realized P&L = %s, want 20000", p.RealizedPnL.value)
	}

	if len(v.Holdings) != 1 {
		t.Fatalf("Holdings = %d, want 1", len(v.Holdings))
	}
	h := v.Holdings[0]
	if !h.TotalQuantity.Equal(Q(1)) {
		t.Errorf("holding quantity = %s, want 1", h.TotalQuantity)
	}
	if !h.AvgCost.Equal(USD(45000)) {
		t.Errorf("holding avg cost = %s, want 45000", h.AvgCost.value)
	}
	if !h.CurrentValue.Equal(USD(48000)) {
		t.Errorf("holding current value = %s, want 48000", h.CurrentValue.value)
	}
	if !h.ProfitLoss.Equal(USD(3000)) {
		t.Errorf("holding profit/loss = %s, want 3000", h.ProfitLoss.value)
	}

	if !v.Summary.TotalPnL().Equal(USD(23000)) {
		t.Errorf("summary total P&L = %s, want 23000", v.Summary.TotalPnL().value)
	}
}

func TestNewValuation_MissingQuoteExcludesHolding(t *testing.T) {
	l := mustLedger(
		buy("BTC", 1, 100, 1),
		buy("ETH", 1, 100, 1),
	)
	quotes := Quotes{"BTC": quoted("BTC", 120)}

	v := NewValuation(l, quotes, day(2))

	if len(v.Holdings) != 1 {
		t.Fatalf("Holdings = %d, want 1 (no quote, no holding)", len(v.Holdings))
	}
	if v.Holdings[0].Asset != "BTC" {
		t.Errorf("held asset = %s, want BTC", v.Holdings[0].Asset)
	}
	// The missing quote shrinks the totals instead of zeroing them.
	if !v.Summary.TotalValue.Equal(USD(120)) {
		t.Errorf("TotalValue = %s, want 120", v.Summary.TotalValue.value)
	}
}

func TestNewValuation_ClosedCycleNeedsNoQuote(t *testing.T) {
	l := mustLedger(
		buy("XRP", 10, 1, 1),
		sell("XRP", 10, 2, 2),
	)

	v := NewValuation(l, Quotes{}, day(3))

	if len(v.ClosedPositions) != 1 {
		t.Fatalf("ClosedPositions = %d, want 1 (realized P&L needs no price)", len(v.ClosedPositions))
	}
	if !v.Summary.RealizedPnL.Equal(USD(10)) {
		t.Errorf("RealizedPnL = %s, want 10", v.Summary.RealizedPnL.value)
	}
}

func TestNewValuation_HoldingsSortedByValue(t *testing.T) {
	l := mustLedger(
		buy("AAA", 1, 10, 1),
		buy("BBB", 1, 10, 1),
		buy("CCC", 1, 10, 1),
	)
	quotes := Quotes{
		"AAA": quoted("AAA", 50),
		"BBB": quoted("BBB", 500),
		"CCC": quoted("CCC", 5),
	}

	v := NewValuation(l, quotes, day(2))

	var got []string
	for _, h := range v.Holdings {
		got = append(got, h.Asset)
	}
	want := []string{"BBB", "AAA", "CCC"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("holding order = %v, want %v", got, want)
		}
	}
}

func TestValuation_TotalRealizedComposesBothSources(t *testing.T) {
	l := mustLedger(
		// closed cycle: +20000.
		buy("BTC", 2, 40000, 1),
		sell("BTC", 2, 50000, 3),
		// open position with a partial sell: +200 locked in.
		buy("ETH", 10, 100, 1),
		sell("ETH", 4, 150, 2),
	)
	quotes := Quotes{"ETH": quoted("ETH", 150)}

	v := NewValuation(l, quotes, day(4))

	if !v.Summary.RealizedPnL.Equal(USD(20000)) {
		t.Errorf("Summary.RealizedPnL = %s, want 20000 (closed cycles only)", v.Summary.RealizedPnL.value)
	}
	if !v.PartialRealized.Equal(USD(200)) {
		t.Errorf("PartialRealized = %s, want 200", v.PartialRealized.value)
	}
	if !v.TotalRealized().Equal(USD(20200)) {
		t.Errorf("TotalRealized() = %s, want 20200", v.TotalRealized().value)
	}
}
