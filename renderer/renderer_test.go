package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/tkeffer/folio"
)

func usd(v float64) folio.Money { return folio.M(v, "USD") }

func at(day int) time.Time {
	return time.Date(2025, time.March, day, 12, 0, 0, 0, time.UTC)
}

func valuationFixture() *folio.Valuation {
	l := folio.NewLedger()
	txs := []folio.Transaction{
		folio.NewBuy("BTC", folio.Q(2), usd(40000), at(1), ""),
		folio.NewSell("BTC", folio.Q(2), usd(50000), at(2), ""),
		folio.NewBuy("BTC", folio.Q(1), usd(45000), at(3), ""),
	}
	if err := l.Append(txs...); err != nil {
		panic(err)
	}
	quotes := folio.Quotes{"BTC": {Symbol: "BTC", Name: "Bitcoin", Price: usd(48000), At: at(4)}}
	return folio.NewValuation(l, quotes, at(4))
}

func TestHoldingsMarkdown(t *testing.T) {
	out := HoldingsMarkdown(valuationFixture().Holdings)

	for _, want := range []string{"# Holdings", "BTC", "$48,000.00", "+$3,000.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("HoldingsMarkdown() misses %q:\n%s", want, out)
		}
	}
}

func TestHoldingsMarkdown_Empty(t *testing.T) {
	out := HoldingsMarkdown(nil)
	if !strings.Contains(out, "No open positions.") {
		t.Errorf("HoldingsMarkdown(nil) = %q, want the empty notice", out)
	}
}

func TestClosedMarkdown(t *testing.T) {
	out := ClosedMarkdown(valuationFixture().Groups)

	for _, want := range []string{"# Closed Positions", "1 cycle", "+$20,000.00", "2025-03-02"} {
		if !strings.Contains(out, want) {
			t.Errorf("ClosedMarkdown() misses %q:\n%s", want, out)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	out := SummaryMarkdown(valuationFixture())

	for _, want := range []string{
		"# Portfolio Summary on 2025-03-04",
		"Total Market Value: $48,000.00",
		"+$23,000.00",
		"Unrealized",
		"Realized (closed cycles)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SummaryMarkdown() misses %q:\n%s", want, out)
		}
	}
}

func TestSnapshotMarkdown_StaleNotice(t *testing.T) {
	v := valuationFixture()
	s := folio.NewRefreshSnapshot(v, at(4))

	fresh := SnapshotMarkdown(s, at(4).Add(5*time.Minute))
	if strings.Contains(fresh, "stale") {
		t.Errorf("fresh snapshot renders a stale notice:\n%s", fresh)
	}

	stale := SnapshotMarkdown(s, at(4).Add(2*time.Hour))
	if !strings.Contains(stale, "stale") {
		t.Errorf("old snapshot misses the stale notice:\n%s", stale)
	}
}

func TestTransaction(t *testing.T) {
	tx := folio.NewBuy("BTC", folio.Q(2), usd(40000), at(1), "")
	if got := Transaction(tx); got != "Bought 2 of BTC at $40,000.00" {
		t.Errorf("Transaction() = %q", got)
	}
}
