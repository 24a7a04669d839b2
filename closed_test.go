package folio

import "testing"

func TestNewClosedPosition(t *testing.T) {
	cycle := []Transaction{
		buy("BTC", 1, 100, 1),
		sell("BTC", 1, 150, 2),
	}

	p, ok := NewClosedPosition("BTC", cycle, quoted("BTC", 150))
	if !ok {
		t.Fatal("NewClosedPosition() dropped a valid cycle")
	}
	if !p.TotalQuantity.Equal(Q(1)) {
		t.Errorf("TotalQuantity = %s, want 1", p.TotalQuantity)
	}
	if !p.AvgCostPrice.Equal(USD(100)) {
		t.Errorf("AvgCostPrice = %s, want 100", p.AvgCostPrice.value)
	}
	if !p.AvgSalePrice.Equal(USD(150)) {
		t.Errorf("AvgSalePrice = %s, want 150", p.AvgSalePrice.value)
	}
	if !p.RealizedPnL.Equal(USD(50)) {
		t.Errorf("RealizedPnL = %s, want 50", p.RealizedPnL.value)
	}
	if !p.RealizedPnLPercentage.Equal(50) {
		t.Errorf("RealizedPnLPercentage = %s, want 50%%", p.RealizedPnLPercentage)
	}
	if !p.ClosedDate.Equal(day(2)) {
		t.Errorf("ClosedDate = %s, want %s", p.ClosedDate, day(2))
	}
	if len(p.CycleTransactions) != 2 {
		t.Errorf("CycleTransactions = %d, want 2", len(p.CycleTransactions))
	}
}

func TestNewClosedPosition_MultipleLegs(t *testing.T) {
	cycle := []Transaction{
		buy("ETH", 2, 1000, 1),
		buy("ETH", 2, 2000, 2),
		sell("ETH", 1, 1800, 3),
		sell("ETH", 3, 2200, 4),
	}

	p, ok := NewClosedPosition("ETH", cycle, Quote{})
	if !ok {
		t.Fatal("NewClosedPosition() dropped a valid cycle")
	}
	// avg cost (2x1000 + 2x2000) / 4 = 1500; avg sale (1800 + 3x2200) / 4 = 2100.
	if !p.AvgCostPrice.Equal(USD(1500)) {
		t.Errorf("AvgCostPrice = %s, want 1500", p.AvgCostPrice.value)
	}
	if !p.AvgSalePrice.Equal(USD(2100)) {
		t.Errorf("AvgSalePrice = %s, want 2100", p.AvgSalePrice.value)
	}
	if !p.RealizedPnL.Equal(USD(2400)) {
		t.Errorf("RealizedPnL = %s, want 2400", p.RealizedPnL.value)
	}
	if !p.ClosedDate.Equal(day(4)) {
		t.Errorf("ClosedDate = %s, want the closing sell's timestamp %s", p.ClosedDate, day(4))
	}
}

func TestNewClosedPosition_DropsOneLeggedCycle(t *testing.T) {
	onlyBuys := []Transaction{buy("BTC", 1, 100, 1)}
	if _, ok := NewClosedPosition("BTC", onlyBuys, Quote{}); ok {
		t.Error("NewClosedPosition() accepted a cycle without a sell leg")
	}

	onlySells := []Transaction{sell("BTC", 1, 100, 1)}
	if _, ok := NewClosedPosition("BTC", onlySells, Quote{}); ok {
		t.Error("NewClosedPosition() accepted a cycle without a buy leg")
	}
}

func TestGroupClosedPositions_WeightsByCapital(t *testing.T) {
	cycles := [][]Transaction{
		{buy("BTC", 1, 100, 1), sell("BTC", 1, 200, 2)},   // +100%, invested 100
		{buy("BTC", 10, 100, 3), sell("BTC", 10, 110, 4)}, // +10%, invested 1000
	}
	var positions []ClosedPosition
	for _, c := range cycles {
		p, ok := NewClosedPosition("BTC", c, Quote{})
		if !ok {
			t.Fatal("NewClosedPosition() dropped a valid cycle")
		}
		positions = append(positions, p)
	}

	groups := GroupClosedPositions(positions)
	if len(groups) != 1 {
		t.Fatalf("GroupClosedPositions() = %d groups, want 1", len(groups))
	}
	g := groups[0]

	if g.CycleCount != 2 {
		t.Errorf("CycleCount = %d, want 2", g.CycleCount)
	}
	if !g.TotalRealizedPnL.Equal(USD(200)) {
		t.Errorf("TotalRealizedPnL = %s, want 200", g.TotalRealizedPnL.value)
	}
	// Revenue 1300 over invested 1100: +18.18%, not the arithmetic mean 55%.
	want := Percent(200.0 / 1100.0 * 100)
	if !g.TotalRealizedPnLPercentage.Equal(want) {
		t.Errorf("TotalRealizedPnLPercentage = %s, want %s", g.TotalRealizedPnLPercentage, want)
	}
	if !g.MostRecentClose.Equal(day(4)) {
		t.Errorf("MostRecentClose = %s, want %s", g.MostRecentClose, day(4))
	}
}

func TestGroupClosedPositions_SortedByMostRecentClose(t *testing.T) {
	mk := func(asset string, buyDay, sellDay int) ClosedPosition {
		p, ok := NewClosedPosition(asset, []Transaction{
			buy(asset, 1, 100, buyDay),
			sell(asset, 1, 120, sellDay),
		}, Quote{})
		if !ok {
			t.Fatal("NewClosedPosition() dropped a valid cycle")
		}
		return p
	}

	groups := GroupClosedPositions([]ClosedPosition{
		mk("OLD", 1, 2),
		mk("NEW", 3, 9),
		mk("MID", 4, 5),
	})

	var got []string
	for _, g := range groups {
		got = append(got, g.Asset)
	}
	want := []string{"NEW", "MID", "OLD"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("group order = %v, want %v", got, want)
		}
	}
}
