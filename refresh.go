package folio

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// SnapshotVersion is the schema version of the persisted refresh snapshot.
// The snapshot is the contract between the full engine process and the
// widget/background-refresh process; the two have independent lifetimes, so
// the shape is versioned and a reader rejects versions it does not know.
const SnapshotVersion = 1

// StaleAfter is the age beyond which a snapshot no longer counts as fresh.
const StaleAfter = 60 * time.Minute

// RefreshableHolding is the reduced projection of one open holding: just
// enough to recompute value and unrealized P&L from a fresh price, with no
// access to the transaction history.
type RefreshableHolding struct {
	Asset    string
	Symbol   string
	Name     string
	Quantity Quantity
	AvgCost  Money

	// display values as of the snapshot's prices.
	CurrentValue  Money
	PnLAmount     Money
	PnLPercentage Percent
}

// RefreshSnapshot is the flat, serializable aggregate written by the full
// engine and read independently by the constrained process.
type RefreshSnapshot struct {
	Version       int
	TotalValue    Money
	UnrealizedPnL Money
	RealizedPnL   Money // carried forward: no new cycle can close in this path
	TotalPnL      Money
	Holdings      []RefreshableHolding // top holdings by current value, at most maxSnapshotHoldings
	LastUpdated   time.Time
}

// maxSnapshotHoldings bounds the snapshot for the widget's display space.
const maxSnapshotHoldings = 5

// NewRefreshSnapshot projects a valuation into a refresh snapshot, keeping
// the top holdings by current value. RealizedPnL carries the full realized
// figure (closed cycles plus partial gains) since the constrained process
// cannot recompute either.
func NewRefreshSnapshot(v *Valuation, now time.Time) RefreshSnapshot {
	s := RefreshSnapshot{
		Version:       SnapshotVersion,
		TotalValue:    v.Summary.TotalValue,
		UnrealizedPnL: v.Summary.UnrealizedPnL,
		RealizedPnL:   v.TotalRealized(),
		LastUpdated:   now,
	}
	s.TotalPnL = s.UnrealizedPnL.Add(s.RealizedPnL)

	// Holdings are already sorted by current value descending.
	for _, h := range v.Holdings {
		if len(s.Holdings) == maxSnapshotHoldings {
			break
		}
		s.Holdings = append(s.Holdings, RefreshableHolding{
			Asset:         h.Asset,
			Symbol:        h.Symbol,
			Name:          h.Name,
			Quantity:      h.TotalQuantity,
			AvgCost:       h.AvgCost,
			CurrentValue:  h.CurrentValue,
			PnLAmount:     h.ProfitLoss,
			PnLPercentage: h.ProfitLossPercentage,
		})
	}
	return s
}

// Stale reports whether the snapshot is older than StaleAfter at the given
// instant. Staleness belongs to the source data, not to the computation.
func (s RefreshSnapshot) Stale(now time.Time) bool {
	return now.Sub(s.LastUpdated) > StaleAfter
}

// Recalculate recomputes value and unrealized P&L from fresh prices, leaving
// realized P&L untouched. It is a pure function with no shared memory: it
// runs unmodified inside a separate process with its own execution budget.
//
// The price map may be partial. A holding whose asset has no price is
// excluded from the result and from the totals; it is not treated as having
// zero value.
func (s RefreshSnapshot) Recalculate(prices map[string]Money, now time.Time) RefreshSnapshot {
	out := RefreshSnapshot{
		Version:     SnapshotVersion,
		RealizedPnL: s.RealizedPnL,
		LastUpdated: now,
	}

	for _, h := range s.Holdings {
		price, ok := prices[h.Asset]
		if !ok {
			continue
		}
		value := price.Mul(h.Quantity)
		cost := h.AvgCost.Mul(h.Quantity)

		out.Holdings = append(out.Holdings, RefreshableHolding{
			Asset:         h.Asset,
			Symbol:        h.Symbol,
			Name:          h.Name,
			Quantity:      h.Quantity,
			AvgCost:       h.AvgCost,
			CurrentValue:  value,
			PnLAmount:     value.Sub(cost),
			PnLPercentage: gainPercent(value, cost),
		})
		out.TotalValue = out.TotalValue.Add(value)
		out.UnrealizedPnL = out.UnrealizedPnL.Add(value.Sub(cost))
	}

	out.TotalPnL = out.UnrealizedPnL.Add(out.RealizedPnL)
	return out
}

// MarshalJSON implements the json.Marshaler interface for RefreshableHolding.
func (h RefreshableHolding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("assetId", h.Asset)
	w.Optional("symbol", h.Symbol)
	w.Optional("name", h.Name)
	w.Append("quantity", h.Quantity)
	w.Append("avgCost", h.AvgCost.value)
	w.Append("currentValue", h.CurrentValue.value)
	w.Append("pnlAmount", h.PnLAmount.value)
	w.Append("pnlPercentage", float64(h.PnLPercentage))
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for RefreshSnapshot.
// All monetary fields are decimal strings; the currency is a single
// top-level field since the whole portfolio shares one.
func (s RefreshSnapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("version", s.Version)
	w.Optional("currency", s.currency())
	w.Append("totalValue", s.TotalValue.value)
	w.Append("unrealizedPnl", s.UnrealizedPnL.value)
	w.Append("realizedPnl", s.RealizedPnL.value)
	w.Append("totalPnl", s.TotalPnL.value)
	w.Append("holdings", s.Holdings)
	w.Append("lastUpdated", s.LastUpdated.UTC().Format(time.RFC3339Nano))
	return w.MarshalJSON()
}

// currency returns the snapshot's single currency, the first one found.
func (s RefreshSnapshot) currency() string {
	if c := s.TotalValue.Currency(); c != "" {
		return c
	}
	for _, h := range s.Holdings {
		if c := h.AvgCost.Currency(); c != "" {
			return c
		}
	}
	return ""
}

// snapshot wire shapes, with decimal-string amounts.
type refreshableHoldingRecord struct {
	Asset         string          `json:"assetId"`
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Quantity      Quantity        `json:"quantity"`
	AvgCost       decimal.Decimal `json:"avgCost"`
	CurrentValue  decimal.Decimal `json:"currentValue"`
	PnLAmount     decimal.Decimal `json:"pnlAmount"`
	PnLPercentage float64         `json:"pnlPercentage"`
}

type refreshSnapshotRecord struct {
	Version       int                        `json:"version"`
	Currency      string                     `json:"currency"`
	TotalValue    decimal.Decimal            `json:"totalValue"`
	UnrealizedPnL decimal.Decimal            `json:"unrealizedPnl"`
	RealizedPnL   decimal.Decimal            `json:"realizedPnl"`
	TotalPnL      decimal.Decimal            `json:"totalPnl"`
	Holdings      []refreshableHoldingRecord `json:"holdings"`
	LastUpdated   time.Time                  `json:"lastUpdated"`
}

// EncodeSnapshot writes the snapshot as a single JSON document.
func EncodeSnapshot(w io.Writer, s RefreshSnapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// DecodeSnapshot reads a snapshot document, rejecting unknown versions.
func DecodeSnapshot(r io.Reader) (RefreshSnapshot, error) {
	var rec refreshSnapshotRecord
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return RefreshSnapshot{}, fmt.Errorf("could not decode snapshot: %w", err)
	}
	if rec.Version != SnapshotVersion {
		return RefreshSnapshot{}, fmt.Errorf("unsupported snapshot version %d, want %d", rec.Version, SnapshotVersion)
	}

	s := RefreshSnapshot{
		Version:       rec.Version,
		TotalValue:    M(rec.TotalValue, rec.Currency),
		UnrealizedPnL: M(rec.UnrealizedPnL, rec.Currency),
		RealizedPnL:   M(rec.RealizedPnL, rec.Currency),
		TotalPnL:      M(rec.TotalPnL, rec.Currency),
		LastUpdated:   rec.LastUpdated,
	}
	for _, h := range rec.Holdings {
		s.Holdings = append(s.Holdings, RefreshableHolding{
			Asset:         h.Asset,
			Symbol:        h.Symbol,
			Name:          h.Name,
			Quantity:      h.Quantity,
			AvgCost:       M(h.AvgCost, rec.Currency),
			CurrentValue:  M(h.CurrentValue, rec.Currency),
			PnLAmount:     M(h.PnLAmount, rec.Currency),
			PnLPercentage: Percent(h.PnLPercentage),
		})
	}
	return s, nil
}
