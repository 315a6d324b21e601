package finance

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestExportFilename(t *testing.T) {
	got := ExportFilename("transactions", NewDate(2025, time.April, 1))
	if want := "finance_transactions_2025-04-01.csv"; got != want {
		t.Errorf("ExportFilename = %q, want %q", got, want)
	}
}

func TestExportTransactionsCSV(t *testing.T) {
	accounts := []Account{
		{ID: "chk", Name: "Everyday Checking", Type: Checking},
		{ID: "sav", Name: "Savings", Type: Savings},
	}
	transactions := []Transaction{
		{
			ID: "t1", AccountID: "chk", Type: Expense,
			Amount: decimal.RequireFromString("12.50"), Category: "Food",
			Date:        NewDate(2025, time.March, 10),
			Description: `milk, eggs and "bread"`,
			Merchant:    "Corner Store",
		},
		{
			ID: "t2", AccountID: "chk", ToAccountID: "sav", Type: Transfer,
			Amount: decimal.NewFromInt(500), Category: "Transfer",
			Date: NewDate(2025, time.March, 15),
		},
	}
	b := NewBooks(accounts, transactions, nil, "USD")

	var sb strings.Builder
	if err := b.ExportTransactionsCSV(&sb); err != nil {
		t.Fatalf("ExportTransactionsCSV failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("export has %d lines, want header + 2 rows", len(lines))
	}
	if want := "Date,Description,Category,Amount,Type,Account Name,Merchant,Source Account ID,Destination Account ID"; lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
	// Most recent first: the transfer leads.
	if !strings.HasPrefix(lines[1], "2025-03-15,") {
		t.Errorf("first row = %q, want the 03-15 transfer", lines[1])
	}
	// Embedded commas and quotes force a quoted field with doubled quotes.
	if !strings.Contains(lines[2], `"milk, eggs and ""bread"""`) {
		t.Errorf("description not CSV-escaped: %q", lines[2])
	}
	if !strings.Contains(lines[2], "Everyday Checking") {
		t.Errorf("account id not resolved to its name: %q", lines[2])
	}
}

func TestExportAccountsCSV(t *testing.T) {
	accounts := []Account{
		{ID: "chk", Name: "Checking", Type: Checking, InitialBalance: decimal.NewFromInt(1000)},
	}
	transactions := []Transaction{
		{ID: "t1", AccountID: "chk", Type: Expense, Amount: decimal.NewFromInt(300), Category: "Food", Date: NewDate(2025, time.March, 10)},
	}
	b := NewBooks(accounts, transactions, nil, "USD")

	var sb strings.Builder
	if err := b.ExportAccountsCSV(&sb); err != nil {
		t.Fatalf("ExportAccountsCSV failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if want := "Account Name,Type,Initial Balance,Current Balance,Account ID"; lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
	if want := "Checking,Checking,1000,700,chk"; lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}
