package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/tkeffer/folio"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx folio.Transaction) string {
	switch tx.Kind {
	case folio.Buy:
		return fmt.Sprintf("Bought %s of %s at %s", tx.Quantity, tx.Asset, tx.UnitPrice)
	case folio.Sell:
		return fmt.Sprintf("Sold %s of %s at %s", tx.Quantity, tx.Asset, tx.UnitPrice)
	default:
		return string(tx.Kind)
	}
}

// TransactionsMarkdown renders a chronological transaction table.
func TransactionsMarkdown(txs []folio.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Kind", "Asset", "Quantity", "Unit Price", "Total", "Note"},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			tx.Timestamp.Format("2006-01-02 15:04"),
			string(tx.Kind),
			tx.Asset,
			tx.Quantity.String(),
			tx.UnitPrice.String(),
			tx.Cost().String(),
			tx.Note,
		})
	}
	doc.Table(table)

	return doc.String()
}
