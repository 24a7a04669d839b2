package folio

import "time"

// USD is a helper for tests to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for tests to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// day returns a deterministic timestamp n days into the test calendar.
func day(n int) time.Time {
	return time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, n-1)
}

// buy creates a buy transaction for tests on the given day.
func buy(asset string, quantity, unitPrice float64, on int) Transaction {
	return NewBuy(asset, Q(quantity), USD(unitPrice), day(on), "")
}

// sell creates a sell transaction for tests on the given day.
func sell(asset string, quantity, unitPrice float64, on int) Transaction {
	return NewSell(asset, Q(quantity), USD(unitPrice), day(on), "")
}

// quoted builds a quote for tests.
func quoted(symbol string, price float64) Quote {
	return Quote{Symbol: symbol, Price: USD(price), At: day(30)}
}

// mustLedger creates a sorted ledger from transactions.
func mustLedger(txs ...Transaction) *Ledger {
	l := NewLedger()
	if err := l.Append(txs...); err != nil {
		panic(err)
	}
	return l
}
