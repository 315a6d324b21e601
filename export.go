package finance

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ExportFilename names a CSV export for the given day, e.g.
// "finance_transactions_2025-04-01.csv".
func ExportFilename(kind string, day Date) string {
	return fmt.Sprintf("finance_%s_%s.csv", kind, day)
}

// ExportTransactionsCSV writes every transaction, most recent first. Account
// ids resolve to names where the account still exists and fall back to the
// raw id otherwise.
func (b *Books) ExportTransactionsCSV(w io.Writer) error {
	names := make(map[string]string, len(b.Accounts))
	for _, a := range b.Accounts {
		names[a.ID] = a.Name
	}
	name := func(id string) string {
		if n, ok := names[id]; ok {
			return n
		}
		return id
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Description", "Category", "Amount",
		"Type", "Account Name", "Merchant", "Source Account ID", "Destination Account ID"}); err != nil {
		return err
	}
	for _, tx := range b.TransactionsByDate() {
		rec := []string{
			tx.Date.String(),
			tx.Description,
			tx.Category,
			tx.Amount.String(),
			string(tx.Type),
			name(tx.AccountID),
			tx.Merchant,
			tx.AccountID,
			tx.ToAccountID,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportAccountsCSV writes every account with its derived current balance.
func (b *Books) ExportAccountsCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Account Name", "Type", "Initial Balance",
		"Current Balance", "Account ID"}); err != nil {
		return err
	}
	for _, ab := range b.Balances() {
		rec := []string{
			ab.Name,
			string(ab.Type),
			ab.InitialBalance.String(),
			ab.CurrentBalance.Amount().String(),
			ab.ID,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
