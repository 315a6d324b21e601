package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewExpenseCalendar(t *testing.T) {
	march := func(day int) Date { return NewDate(2025, time.March, day) }
	transactions := []Transaction{
		{ID: "t1", AccountID: "chk", Type: Expense, Amount: decimal.NewFromInt(40), Category: "Food", Date: march(5)},
		{ID: "t2", AccountID: "chk", Type: Expense, Amount: decimal.NewFromInt(25), Category: "Food", Date: march(5)},
		{ID: "t3", AccountID: "chk", Type: Expense, Amount: decimal.NewFromInt(60), Category: "Entertainment", Date: march(5)},
		{ID: "t4", AccountID: "chk", Type: Expense, Amount: decimal.NewFromInt(500), Category: "Housing", Date: march(12)},
		// Income and other months never show up on the calendar.
		{ID: "t5", AccountID: "chk", Type: Income, Amount: decimal.NewFromInt(3000), Category: "Income", Date: march(12)},
		{ID: "t6", AccountID: "chk", Type: Expense, Amount: decimal.NewFromInt(77), Category: "Food", Date: NewDate(2025, time.April, 1)},
	}
	b := NewBooks(nil, transactions, nil, "USD")

	cal := b.NewExpenseCalendar(2025, time.March)
	if cal.Month != "2025-03" {
		t.Errorf("Month = %s, want 2025-03", cal.Month)
	}
	if len(cal.Days) != 2 {
		t.Fatalf("calendar has %d days, want 2", len(cal.Days))
	}

	day5 := cal.Days[5]
	if want := decimal.NewFromInt(125); !day5.Total.Amount().Equal(want) {
		t.Errorf("day 5 total = %s, want %s", day5.Total.Amount(), want)
	}
	// Food (65) beats Entertainment (60) even though the single largest
	// transaction is Entertainment.
	if day5.DominantCategory != "Food" {
		t.Errorf("day 5 dominant = %q, want Food", day5.DominantCategory)
	}
	if len(day5.Transactions) != 3 {
		t.Errorf("day 5 has %d transactions, want 3", len(day5.Transactions))
	}

	day12 := cal.Days[12]
	if day12.DominantCategory != "Housing" {
		t.Errorf("day 12 dominant = %q, want Housing", day12.DominantCategory)
	}

	if want := decimal.NewFromInt(625); !cal.TotalSpend.Amount().Equal(want) {
		t.Errorf("TotalSpend = %s, want %s", cal.TotalSpend.Amount(), want)
	}

	if len(cal.Categories) != 3 {
		t.Fatalf("Categories has %d entries, want 3", len(cal.Categories))
	}
	if cal.Categories[0].Category != "Housing" {
		t.Errorf("top category = %q, want Housing", cal.Categories[0].Category)
	}
	if got := cal.Categories[0].Share; got != 0.8 {
		t.Errorf("Housing share = %v, want 0.8", got)
	}
}
