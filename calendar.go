package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// DaySpending aggregates one calendar day's expenses.
type DaySpending struct {
	Day   int
	Total Money
	// DominantCategory is the category with the largest share of the
	// day's spending, ties resolved alphabetically.
	DominantCategory string
	Transactions     []Transaction
}

// ExpenseCalendar is the per-day expense heat-map for one month, with the
// month's category ranking alongside.
type ExpenseCalendar struct {
	Month      MonthKey
	Days       map[int]DaySpending
	TotalSpend Money
	Categories []CategoryAmount // month's expenses by category, descending
}

// NewExpenseCalendar groups the month's expense transactions by day of
// month. The day is read from the transaction's calendar date, the same
// value every other grouping uses.
func (b *Books) NewExpenseCalendar(year int, month time.Month) *ExpenseCalendar {
	key := NewMonthKey(year, month)
	cal := &ExpenseCalendar{Month: key, Days: make(map[int]DaySpending)}

	total := decimal.Zero
	perDayCat := make(map[int]map[string]decimal.Decimal)
	for _, tx := range b.Transactions {
		if tx.Type != Expense || !key.Contains(tx.Date) {
			continue
		}
		day := tx.Date.Day()
		ds := cal.Days[day]
		ds.Day = day
		ds.Total = ds.Total.Add(b.money(tx.Amount))
		ds.Transactions = append(ds.Transactions, tx)
		cal.Days[day] = ds

		if perDayCat[day] == nil {
			perDayCat[day] = make(map[string]decimal.Decimal)
		}
		perDayCat[day][tx.Category] = perDayCat[day][tx.Category].Add(tx.Amount)
		total = total.Add(tx.Amount)
	}

	for day, cats := range perDayCat {
		ds := cal.Days[day]
		best := decimal.Zero
		for cat, sum := range cats {
			if sum.GreaterThan(best) || (sum.Equal(best) && (ds.DominantCategory == "" || cat < ds.DominantCategory)) {
				best = sum
				ds.DominantCategory = cat
			}
		}
		cal.Days[day] = ds
	}

	cal.TotalSpend = b.money(total)
	cal.Categories = b.spendingByCategory(func(tx Transaction) bool { return key.Contains(tx.Date) })
	for i := range cal.Categories {
		if total.IsPositive() {
			cal.Categories[i].Share = cal.Categories[i].Amount.Amount().Div(total).InexactFloat64()
		}
	}
	return cal
}
