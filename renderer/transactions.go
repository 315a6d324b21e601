package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	finance "github.com/sahib-pratap-singh/Ai-Finance"
)

// TransactionsMarkdown renders the transactions most recent first. Account
// ids resolve against accounts; ids without a live account print as-is.
func TransactionsMarkdown(transactions []finance.Transaction, accounts []finance.Account, currency string) string {
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}
	name := func(id string) string {
		if id == "" {
			return ""
		}
		if n, ok := names[id]; ok {
			return n
		}
		return id
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	rows := make([][]string, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, []string{
			tx.Date.String(),
			tx.Description,
			tx.Category,
			finance.M(tx.Amount, currency).String(),
			string(tx.Type),
			name(tx.AccountID),
			name(tx.ToAccountID),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Description", "Category", "Amount", "Type", "Account", "To"},
		Rows:   rows,
	})

	return doc.String()
}

// GoalsMarkdown renders savings goals with their progress.
func GoalsMarkdown(goals []finance.Goal, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Goals")
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		progress := 0.0
		if g.TargetAmount.IsPositive() {
			progress = g.CurrentAmount.Div(g.TargetAmount).InexactFloat64()
		}
		target := ""
		if !g.TargetDate.IsZero() {
			target = g.TargetDate.String()
		}
		rows = append(rows, []string{
			g.Name,
			finance.M(g.CurrentAmount, currency).String(),
			finance.M(g.TargetAmount, currency).String(),
			formatShare(progress),
			target,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Goal", "Saved", "Target", "Progress", "By"},
		Rows:   rows,
	})

	return doc.String()
}
