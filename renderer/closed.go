package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/tkeffer/folio"
)

// ClosedMarkdown renders the per-asset closed position groups, most recent
// close first, each with its cycle history.
func ClosedMarkdown(groups []folio.ClosedPositionGroup) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Closed Positions")

	if len(groups) == 0 {
		doc.PlainText("No closed positions.")
		return doc.String()
	}

	for _, g := range groups {
		doc.H2(fmt.Sprintf("%s (%s over %s)",
			label(g.Asset, g.Symbol),
			g.TotalRealizedPnL.SignedString(),
			cycles(g.CycleCount)))
		if g.Name != "" {
			doc.PlainText(g.Name)
		}

		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Closed", "Quantity", "Avg Cost", "Avg Sale", "Realized P&L", "P&L %"},
		}
		for _, p := range g.Positions {
			table.Rows = append(table.Rows, []string{
				p.ClosedDate.Format("2006-01-02"),
				p.TotalQuantity.String(),
				p.AvgCostPrice.String(),
				p.AvgSalePrice.String(),
				p.RealizedPnL.SignedString(),
				p.RealizedPnLPercentage.SignedString(),
			})
		}
		table.Rows = append(table.Rows, []string{
			md.Bold("Total"), "", "", "",
			md.Bold(g.TotalRealizedPnL.SignedString()),
			md.Bold(g.TotalRealizedPnLPercentage.SignedString()),
		})
		doc.Table(table)
	}

	return doc.String()
}

func cycles(n int) string {
	if n == 1 {
		return "1 cycle"
	}
	return fmt.Sprintf("%d cycles", n)
}
