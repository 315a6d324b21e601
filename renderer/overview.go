// Package renderer turns derived finance reports into markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	finance "github.com/sahib-pratap-singh/Ai-Finance"
)

// OverviewMarkdown renders net worth, the asset/debt split and the
// spending breakdown.
func OverviewMarkdown(o *finance.Overview) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Overview")
	doc.PlainText(fmt.Sprintf("Net Worth: %s", o.NetWorth.SignedString()))

	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Assets", o.TotalAssets.String()},
			{"Debt", o.TotalDebt.String()},
		},
	})

	if len(o.Spending) > 0 {
		doc.H2("Spending by Category")
		rows := make([][]string, 0, len(o.Spending))
		for _, s := range o.Spending {
			rows = append(rows, []string{s.Category, s.Amount.String(), formatShare(s.Share)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Category", "Spent", "Share"},
			Rows:   rows,
		})
	}

	return doc.String()
}

// AccountsMarkdown renders every account with its derived balance.
func AccountsMarkdown(balances []finance.AccountBalance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	rows := make([][]string, 0, len(balances))
	for _, ab := range balances {
		rows = append(rows, []string{ab.Name, string(ab.Type), ab.CurrentBalance.SignedString(), ab.ID})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Type", "Balance", "ID"},
		Rows:   rows,
	})

	return doc.String()
}

func formatShare(share float64) string {
	return fmt.Sprintf("%.1f%%", share*100)
}
