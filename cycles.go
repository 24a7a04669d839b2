package folio

import "github.com/shopspring/decimal"

// zeroTolerance is the epsilon under which a running balance counts as zero.
// Quantities are exact decimals, but ledgers imported from external brokers
// can carry rounding remnants (a position of 0.00000001 left over from a
// float-based export), so the tolerance is retained rather than requiring
// exact equality.
var zeroTolerance = decimal.New(1, -8)

// Cycles partitions the chronological transactions of one asset into zero or
// more closed cycles plus one open remainder.
//
// It keeps a running signed balance (+quantity for a buy, -quantity for a
// sell). Each time the balance returns to zero, the slice since the previous
// boundary is a closed cycle and the next slice starts at the following
// transaction. Everything after the last boundary is the open remainder; if
// the balance never returns to zero, all transactions are the remainder.
//
// A run of only buys or only sells never closes. A balance that goes
// negative (selling more than held) does not close a cycle either unless it
// comes back to zero; downstream consumers discard non-positive positions.
func Cycles(txs []Transaction) (closed [][]Transaction, open []Transaction) {
	balance := decimal.Zero
	start := 0

	for i, tx := range txs {
		balance = balance.Add(tx.Signed().value)
		if balance.Abs().LessThanOrEqual(zeroTolerance) {
			cycle := make([]Transaction, i+1-start)
			copy(cycle, txs[start:i+1])
			closed = append(closed, cycle)
			start = i + 1
			balance = decimal.Zero
		}
	}

	if start < len(txs) {
		open = make([]Transaction, len(txs)-start)
		copy(open, txs[start:])
	}
	return closed, open
}

// OpenRemainder returns only the open remainder for the transactions of one
// asset; it is the position-defining tail used by holdings and partial
// realized gains.
func OpenRemainder(txs []Transaction) []Transaction {
	_, open := Cycles(txs)
	return open
}
