package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/tkeffer/folio"
)

// HoldingsMarkdown renders the open positions, one row per holding, in the
// order they were given (current value descending).
func HoldingsMarkdown(holdings []folio.Holding) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")

	if len(holdings) == 0 {
		doc.PlainText("No open positions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Asset", "Quantity", "Avg Cost", "Price", "Value", "P&L", "P&L %"},
	}

	var totalValue, totalPnL folio.Money
	for _, h := range holdings {
		table.Rows = append(table.Rows, []string{
			label(h.Asset, h.Symbol),
			h.TotalQuantity.String(),
			h.AvgCost.String(),
			h.CurrentPrice.String(),
			h.CurrentValue.String(),
			h.ProfitLoss.SignedString(),
			h.ProfitLossPercentage.SignedString(),
		})
		totalValue = totalValue.Add(h.CurrentValue)
		totalPnL = totalPnL.Add(h.ProfitLoss)
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"), "", "", "",
		md.Bold(totalValue.String()),
		md.Bold(totalPnL.SignedString()),
		"",
	})
	doc.Table(table)

	return doc.String()
}

// HoldingMarkdown renders a single holding as a small detail block.
func HoldingMarkdown(h folio.Holding) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Holding %s", label(h.Asset, h.Symbol)))
	if h.Name != "" {
		doc.PlainText(h.Name)
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Value"), md.Bold(h.CurrentValue.String())},
		Rows: [][]string{
			{"Quantity", h.TotalQuantity.String()},
			{"Avg Cost", h.AvgCost.String()},
			{"Price", h.CurrentPrice.String()},
			{"P&L", h.ProfitLoss.SignedString()},
			{"P&L %", h.ProfitLossPercentage.SignedString()},
		},
	})

	return doc.String()
}
