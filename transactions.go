package folio

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind is a typed string identifying the side of a transaction.
// It is a two-variant tagged union: every transaction is a buy or a sell.
type Kind string

const (
	Buy  Kind = "buy"
	Sell Kind = "sell"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Transaction is the immutable record of one buy or sell event for one asset.
// The engine never mutates a transaction, it only reorders and groups copies:
// all derived state is recomputed from the full log, never patched.
type Transaction struct {
	ID        uuid.UUID // unique id of the event
	Asset     string    // asset identifier the event belongs to
	Kind      Kind      // buy or sell
	Quantity  Quantity  // number of units, always positive
	UnitPrice Money     // price per unit, never negative
	Timestamp time.Time // when the event occurred
	Note      string    // optional rationale
}

// NewBuy creates a new buy transaction with a fresh id.
func NewBuy(asset string, quantity Quantity, unitPrice Money, at time.Time, note string) Transaction {
	return Transaction{ID: uuid.New(), Asset: asset, Kind: Buy, Quantity: quantity, UnitPrice: unitPrice, Timestamp: at, Note: note}
}

// NewSell creates a new sell transaction with a fresh id.
func NewSell(asset string, quantity Quantity, unitPrice Money, at time.Time, note string) Transaction {
	return Transaction{ID: uuid.New(), Asset: asset, Kind: Sell, Quantity: quantity, UnitPrice: unitPrice, Timestamp: at, Note: note}
}

// Cost returns the total amount of the transaction (quantity times unit price).
func (t Transaction) Cost() Money {
	return t.UnitPrice.Mul(t.Quantity)
}

// Signed returns the quantity signed by the transaction side:
// positive for a buy, negative for a sell.
func (t Transaction) Signed() Quantity {
	if t.Kind == Sell {
		return t.Quantity.Neg()
	}
	return t.Quantity
}

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Asset == o.Asset &&
		t.Kind == o.Kind &&
		t.Quantity.Equal(o.Quantity) &&
		t.UnitPrice.Equal(o.UnitPrice) &&
		t.Timestamp.Equal(o.Timestamp) &&
		t.Note == o.Note
}

// Validate checks the transaction fields. Import-time validation is the
// collaborator's job; this is the engine-side gate that keeps obviously
// broken records out of the ledger.
func (t Transaction) Validate() error {
	if t.Asset == "" {
		return errors.New("transaction asset is missing")
	}
	if _, err := ParseKind(string(t.Kind)); err != nil {
		return err
	}
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("%s transaction quantity must be positive, got %s", t.Kind, t.Quantity)
	}
	if t.UnitPrice.IsNegative() {
		return fmt.Errorf("%s transaction unit price must not be negative, got %s", t.Kind, t.UnitPrice.value)
	}
	if t.Timestamp.IsZero() {
		return errors.New("transaction timestamp is missing")
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
// Quantity and unit price are decimal strings to guarantee round-trip
// precision; the key order is canonical.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", t.Kind)
	w.Append("id", t.ID)
	w.Append("assetId", t.Asset)
	w.Append("quantity", t.Quantity)
	w.Append("unitPrice", t.UnitPrice.value)
	w.Optional("currency", t.UnitPrice.cur)
	w.Append("timestamp", t.Timestamp.UTC().Format(time.RFC3339Nano))
	w.Optional("notes", t.Note)
	return w.MarshalJSON()
}

// txRecord is a specialized struct for decoding the ledger wire shape where
// the unit price and its currency are separate fields.
type txRecord struct {
	Kind      Kind            `json:"kind"`
	ID        uuid.UUID       `json:"id"`
	Asset     string          `json:"assetId"`
	Quantity  Quantity        `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Currency  string          `json:"currency"`
	Timestamp time.Time       `json:"timestamp"`
	Note      string          `json:"notes"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var rec txRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	t.ID = rec.ID
	t.Asset = rec.Asset
	t.Kind = rec.Kind
	t.Quantity = rec.Quantity
	t.UnitPrice = M(rec.UnitPrice, rec.Currency)
	t.Timestamp = rec.Timestamp
	t.Note = rec.Note
	return nil
}
