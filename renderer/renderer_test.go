package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	finance "github.com/sahib-pratap-singh/Ai-Finance"
)

func testBooks() *finance.Books {
	accounts := []finance.Account{
		{ID: "chk", Name: "Checking", Type: finance.Checking, InitialBalance: decimal.NewFromInt(1000)},
		{ID: "cc", Name: "Visa", Type: finance.CreditCard},
	}
	transactions := []finance.Transaction{
		{ID: "t1", AccountID: "chk", Type: finance.Income, Amount: decimal.NewFromInt(3000), Category: "Income", Date: finance.NewDate(2025, time.March, 1)},
		{ID: "t2", AccountID: "chk", Type: finance.Expense, Amount: decimal.NewFromInt(450), Category: "Food", Date: finance.NewDate(2025, time.March, 8), Description: "groceries"},
	}
	budgets := []finance.Budget{
		{ID: "b1", Category: "Food", Amount: decimal.NewFromInt(400), Month: "2025-03"},
	}
	return finance.NewBooks(accounts, transactions, budgets, "USD")
}

func TestOverviewMarkdown(t *testing.T) {
	out := OverviewMarkdown(testBooks().NewOverview())
	for _, want := range []string{
		"# Overview",
		"Net Worth:",
		"## Spending by Category",
		"Food",
		"100.0%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBudgetMarkdown(t *testing.T) {
	b := testBooks()
	report := b.NewBudgetReport("2025-03", finance.NewDate(2025, time.April, 2))
	out := BudgetMarkdown(report)
	for _, want := range []string{
		"# Budget 2025-03",
		"Budgeted",
		"Food",
		"over", // 450 spent against 400 budgeted
		"To Be Budgeted",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Month pacing") {
		t.Error("pacing line rendered for a past month")
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	b := testBooks()
	out := TransactionsMarkdown(b.TransactionsByDate(), b.Accounts, "USD")
	if !strings.Contains(out, "groceries") {
		t.Errorf("output missing the transaction description:\n%s", out)
	}
	if !strings.Contains(out, "Checking") {
		t.Errorf("output did not resolve the account name:\n%s", out)
	}
	// Most recent first.
	if strings.Index(out, "2025-03-08") > strings.Index(out, "2025-03-01") {
		t.Error("transactions not rendered most recent first")
	}
}

func TestCalendarMarkdown(t *testing.T) {
	cal := testBooks().NewExpenseCalendar(2025, time.March)
	out := CalendarMarkdown(cal)
	for _, want := range []string{"# Expenses 2025-03", "Mostly", "08", "Food"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
