package renderer

import (
	"bytes"
	"fmt"
	"time"

	md "github.com/nao1215/markdown"
	"github.com/tkeffer/folio"
)

// SnapshotMarkdown renders the compact widget view of a refresh snapshot.
func SnapshotMarkdown(s folio.RefreshSnapshot, now time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio")
	doc.PlainText(fmt.Sprintf("%s (%s)", s.TotalValue, s.TotalPnL.SignedString()))
	if s.Stale(now) {
		doc.PlainText(fmt.Sprintf("Prices as of %s (stale)", s.LastUpdated.Format("2006-01-02 15:04")))
	}

	if len(s.Holdings) == 0 {
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Asset", "Value", "P&L", "P&L %"},
	}
	for _, h := range s.Holdings {
		table.Rows = append(table.Rows, []string{
			label(h.Asset, h.Symbol),
			h.CurrentValue.String(),
			h.PnLAmount.SignedString(),
			h.PnLPercentage.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
