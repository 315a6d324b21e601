package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	finance "github.com/sahib-pratap-singh/Ai-Finance"
)

// CashflowMarkdown renders the runway, year-to-date waterfall and income
// flow reports as one document.
func CashflowMarkdown(runway *finance.RunwayReport, waterfall *finance.WaterfallReport, flow *finance.FlowReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cash Flow")

	doc.H2("Runway")
	doc.Table(md.TableSet{
		Header: []string{"", "Value"},
		Rows: [][]string{
			{"Liquid Cash", runway.LiquidCash.String()},
			{"Avg Monthly Expense", runway.AvgMonthlyExpense.String()},
			{"Runway", fmt.Sprintf("%.1f months", runway.Months)},
			{"Health", runway.Tier.String()},
		},
	})

	doc.H2(fmt.Sprintf("%d Year to Date", waterfall.Year))
	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Income", waterfall.IncomeYTD.String()},
			{"Expenses", waterfall.ExpenseYTD.String()},
			{"Net Change", waterfall.NetChange.SignedString()},
		},
	})

	if len(flow.Flows) > 0 {
		doc.H2("Where Income Goes")
		rows := make([][]string, 0, len(flow.Flows))
		for _, f := range flow.Flows {
			rows = append(rows, []string{f.Category, f.Amount.String(), formatShare(f.Share)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Category", "Amount", "Of Income"},
			Rows:   rows,
		})
		doc.PlainText(fmt.Sprintf("Total Income: %s", flow.TotalIncome))
	}

	return doc.String()
}
