package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	finance "github.com/sahib-pratap-singh/Ai-Finance"
)

// BudgetMarkdown renders a month's budget report, row by row, with the
// month totals underneath.
func BudgetMarkdown(r *finance.BudgetReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Budget %s", r.Month))

	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, []string{
			row.Category,
			row.Budgeted.String(),
			row.Spent.String(),
			row.Available.SignedString(),
			fmt.Sprintf("%.0f%%", row.SpentPercentage),
			r.Status(row).String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Budgeted", "Spent", "Available", "Used", "Status"},
		Rows:   rows,
	})

	doc.H2("Month")
	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Income", r.IncomeForMonth.String()},
			{"Budgeted", r.TotalBudgeted.String()},
			{"Spent", r.TotalSpent.String()},
			{"To Be Budgeted", r.ToBeBudgeted.SignedString()},
		},
	})
	if r.CurrentMonth {
		doc.PlainText(fmt.Sprintf("Month pacing: %.0f%%", r.PacingPercentage))
	}

	return doc.String()
}
