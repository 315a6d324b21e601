package renderer

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"

	finance "github.com/sahib-pratap-singh/Ai-Finance"
)

// CalendarMarkdown renders a month's spending day by day with the month's
// category ranking underneath.
func CalendarMarkdown(cal *finance.ExpenseCalendar) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Expenses %s", cal.Month))

	days := make([]int, 0, len(cal.Days))
	for day := range cal.Days {
		days = append(days, day)
	}
	sort.Ints(days)

	rows := make([][]string, 0, len(days))
	for _, day := range days {
		ds := cal.Days[day]
		rows = append(rows, []string{
			fmt.Sprintf("%02d", day),
			ds.Total.String(),
			ds.DominantCategory,
			fmt.Sprintf("%d", len(ds.Transactions)),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Day", "Spent", "Mostly", "Count"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("Total: %s", cal.TotalSpend))

	if len(cal.Categories) > 0 {
		doc.H2("By Category")
		catRows := make([][]string, 0, len(cal.Categories))
		for _, c := range cal.Categories {
			catRows = append(catRows, []string{c.Category, c.Amount.String(), formatShare(c.Share)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Category", "Spent", "Share"},
			Rows:   catRows,
		})
	}

	return doc.String()
}
