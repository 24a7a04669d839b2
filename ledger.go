package folio

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Ledger is the append-only record of all buy and sell events.
//
// In a Ledger transactions are always in chronological order; events with
// the same timestamp keep their insertion order, so a replay of the same
// file is deterministic wherever it runs.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append validates and appends transactions, keeping the chronological order.
// The batch is atomic: if any transaction is invalid the ledger is unchanged.
func (l *Ledger) Append(txs ...Transaction) error {
	currency := l.Currency()
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("invalid %s transaction on %s: %w", tx.Kind, tx.Timestamp.Format("2006-01-02"), err)
		}
		if c := tx.UnitPrice.Currency(); c != "" {
			if currency != "" && c != currency {
				return fmt.Errorf("transaction currency %s does not match ledger currency %s", c, currency)
			}
			currency = c
		}
	}
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
	return nil
}

// Remove deletes the transaction with the given id. It reports whether a
// transaction was removed. Derived state is always recomputed from the
// remaining log, never patched.
func (l *Ledger) Remove(id uuid.UUID) bool {
	for i, tx := range l.transactions {
		if tx.ID == id {
			l.transactions = slices.Delete(l.transactions, i, i+1)
			return true
		}
	}
	return false
}

// stableSort sorts the ledger by transaction timestamp. The sort is stable,
// meaning transactions at the same instant maintain their relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Timestamp.Before(l.transactions[j].Timestamp)
	})
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Currency returns the single currency all ledger amounts are expressed in,
// or "" for an empty ledger.
func (l *Ledger) Currency() string {
	for _, tx := range l.transactions {
		if c := tx.UnitPrice.Currency(); c != "" {
			return c
		}
	}
	return ""
}

// Transactions returns an iterator over all transactions in chronological order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Assets iterates over all asset ids that appear in the ledger, sorted for
// deterministic output.
func (l *Ledger) Assets() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, tx := range l.transactions {
			visited[tx.Asset] = struct{}{}
		}
		assets := slices.Collect(maps.Keys(visited))
		slices.Sort(assets)
		for _, asset := range assets {
			if !yield(asset) {
				return
			}
		}
	}
}

// AssetTransactions returns the chronological slice of transactions for one
// asset. The slice holds copies; mutating it does not touch the ledger.
func (l *Ledger) AssetTransactions(asset string) []Transaction {
	var txs []Transaction
	for _, tx := range l.transactions {
		if tx.Asset == asset {
			txs = append(txs, tx)
		}
	}
	return txs
}

// OldestTimestamp returns the timestamp of the earliest transaction.
// The zero time means the ledger is empty.
func (l *Ledger) OldestTimestamp() time.Time {
	if len(l.transactions) == 0 {
		return time.Time{}
	}
	return l.transactions[0].Timestamp
}

// NewestTimestamp returns the timestamp of the latest transaction.
// The zero time means the ledger is empty.
func (l *Ledger) NewestTimestamp() time.Time {
	if len(l.transactions) == 0 {
		return time.Time{}
	}
	return l.transactions[len(l.transactions)-1].Timestamp
}
