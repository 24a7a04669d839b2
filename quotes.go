package folio

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Quote is the current market snapshot of one asset, supplied fresh by a
// market-data collaborator. The engine never fetches anything itself.
type Quote struct {
	Symbol string    `json:"symbol,omitempty"` // display symbol, e.g. "BTC"
	Name   string    `json:"name,omitempty"`   // display name, e.g. "Bitcoin"
	Price  Money     `json:"-"`                // current price per unit
	At     time.Time `json:"at,omitzero"`      // when the price was observed
}

// Quotes maps asset ids to their current quote. The map may be partial:
// assets without a quote are excluded from valuations, not zeroed.
type Quotes map[string]Quote

// Prices flattens the quotes to the reduced asset-id to price mapping used
// by the snapshot recalculation path.
func (q Quotes) Prices() map[string]Money {
	prices := make(map[string]Money, len(q))
	for asset, quote := range q {
		prices[asset] = quote.Price
	}
	return prices
}

// quoteRecord is a specialized struct for the wire shape where the price and
// its currency are separate fields.
type quoteRecord struct {
	Asset    string          `json:"assetId"`
	Symbol   string          `json:"symbol,omitempty"`
	Name     string          `json:"name,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency,omitempty"`
	At       time.Time       `json:"at,omitzero"`
}

// DecodeQuotes reads a quotes file: a JSON array of quote records with
// decimal-string prices.
func DecodeQuotes(r io.Reader) (Quotes, error) {
	var records []quoteRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("could not decode quotes: %w", err)
	}
	quotes := make(Quotes, len(records))
	for _, rec := range records {
		if rec.Asset == "" {
			return nil, fmt.Errorf("quote record without assetId")
		}
		quotes[rec.Asset] = Quote{
			Symbol: rec.Symbol,
			Name:   rec.Name,
			Price:  M(rec.Price, rec.Currency),
			At:     rec.At,
		}
	}
	return quotes, nil
}

// EncodeQuotes writes the quotes as a JSON array sorted by asset id, so the
// same quotes always produce the same bytes.
func EncodeQuotes(w io.Writer, quotes Quotes) error {
	assets := make([]string, 0, len(quotes))
	for asset := range quotes {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	records := make([]json.Marshaler, 0, len(assets))
	for _, asset := range assets {
		quote := quotes[asset]
		var rec jsonObjectWriter
		rec.Append("assetId", asset)
		rec.Optional("symbol", quote.Symbol)
		rec.Optional("name", quote.Name)
		rec.Append("price", quote.Price.value)
		rec.Optional("currency", quote.Price.Currency())
		if !quote.At.IsZero() {
			rec.Append("at", quote.At.UTC().Format(time.RFC3339Nano))
		}
		records = append(records, &rec)
	}

	enc := json.NewEncoder(w)
	return enc.Encode(records)
}

// ExtractPrice pulls a decimal price out of an arbitrary provider payload
// (already fetched and unmarshaled by a collaborator) using a jsonpath
// expression. Providers disagree on where the price lives and whether it is
// a number or a string; this accepts both.
func ExtractPrice(doc any, path string) (decimal.Decimal, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error evaluating price path %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("price path %q yields an invalid decimal %q: %w", path, v, err)
		}
		return d, nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("price path %q yields an invalid number %q: %w", path, v, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("price path %q yields %T, not a number or string", path, jval)
	}
}
