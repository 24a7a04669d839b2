package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/tkeffer/folio"
)

// SummaryMarkdown renders the portfolio rollup of a full valuation.
func SummaryMarkdown(v *folio.Valuation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", v.Time.Format("2006-01-02")))
	doc.PlainText(fmt.Sprintf("Total Market Value: %s", v.Summary.TotalValue))

	doc.H2("Profit and Loss")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header: []string{
			md.Bold("Total P&L"),
			md.Bold(v.Summary.TotalPnL().Add(v.PartialRealized).SignedString()),
		},
		Rows: [][]string{
			{"Unrealized", v.Summary.UnrealizedPnL.SignedString()},
			{"Realized (closed cycles)", v.Summary.RealizedPnL.SignedString()},
			{"Realized (partial sells)", v.PartialRealized.SignedString()},
			{"Overall Return", v.Summary.TotalPnLPercentage().SignedString()},
		},
	})

	return doc.String()
}
