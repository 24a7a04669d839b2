package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.New(1, 0)
	hundred = decimal.New(1, 2)
)

// Percent is a display-only percentage value (e.g. 50 for +50%).
// It is always derived from exact decimal arithmetic at the very last step.
type Percent float64

// gainPercent returns (value/cost - 1) * 100, or 0 when cost is zero.
// Every percentage in this package goes through this guard so that a zero
// cost basis can never produce NaN or Inf.
func gainPercent(value, cost Money) Percent {
	if cost.value.IsZero() {
		return 0
	}
	ratio := value.value.Div(cost.value)
	pct, _ := ratio.Sub(one).Mul(hundred).Float64()
	return Percent(pct)
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
