package finance

import "github.com/shopspring/decimal"

// BudgetStatus classifies a budget row for presentation.
type BudgetStatus int

const (
	// BudgetOK means spending is within budget and within pace.
	BudgetOK BudgetStatus = iota
	// BudgetWarning means spending outpaces the elapsed fraction of the month.
	BudgetWarning
	// BudgetOver means spending exceeds the allocation.
	BudgetOver
)

func (s BudgetStatus) String() string {
	switch s {
	case BudgetOK:
		return "ok"
	case BudgetWarning:
		return "warning"
	case BudgetOver:
		return "over"
	default:
		return "unknown"
	}
}

// BudgetRow is one category's budget-vs-actual figures for a month.
type BudgetRow struct {
	Category string
	Budgeted Money
	Spent    Money
	// Rollover is always zero: leftovers do not carry across months.
	Rollover  Money
	Available Money // Rollover + Budgeted - Spent
	// SpentPercentage is Spent/Budgeted*100. With no budget set it is 100
	// when anything was spent (flagged fully over) and 0 otherwise.
	SpentPercentage float64
}

// BudgetReport is the full budget-vs-actual rollup for one month.
type BudgetReport struct {
	Month          MonthKey
	Rows           []BudgetRow
	IncomeForMonth Money
	TotalBudgeted  Money
	TotalSpent     Money
	// ToBeBudgeted is IncomeForMonth - TotalBudgeted: income not yet
	// allocated to any category.
	ToBeBudgeted Money
	// PacingPercentage is the elapsed fraction of the month in percent,
	// clamped to 100 when the report month is not the current month.
	PacingPercentage float64
	CurrentMonth     bool
}

// NewBudgetReport rolls up budgets against actual spending for the given
// month. "today" only drives the pacing signal; all sums depend on the
// transaction dates alone.
func (b *Books) NewBudgetReport(month MonthKey, today Date) *BudgetReport {
	report := &BudgetReport{
		Month:        month,
		CurrentMonth: today.MonthKey() == month,
	}

	report.PacingPercentage = 100
	if report.CurrentMonth {
		report.PacingPercentage = float64(today.Day()) / float64(today.DaysInMonth()) * 100
	}

	income := decimal.Zero
	for _, tx := range b.Transactions {
		if tx.Type == Income && month.Contains(tx.Date) {
			income = income.Add(tx.Amount)
		}
	}
	report.IncomeForMonth = b.money(income)

	totalBudgeted := decimal.Zero
	totalSpent := decimal.Zero
	for _, cat := range Categories {
		// The synthetic categories are not budgetable.
		if cat == "Income" || cat == "Transfer" {
			continue
		}

		budgeted := decimal.Zero
		for _, bud := range b.Budgets {
			if bud.Category == cat && bud.Month == month {
				budgeted = bud.Amount
				break
			}
		}

		spent := decimal.Zero
		for _, tx := range b.Transactions {
			if tx.Type == Expense && tx.Category == cat && month.Contains(tx.Date) {
				spent = spent.Add(tx.Amount)
			}
		}

		rollover := decimal.Zero
		available := rollover.Add(budgeted).Sub(spent)

		var spentPct float64
		switch {
		case budgeted.IsPositive():
			spentPct = spent.Div(budgeted).InexactFloat64() * 100
		case spent.IsPositive():
			spentPct = 100
		}

		report.Rows = append(report.Rows, BudgetRow{
			Category:        cat,
			Budgeted:        b.money(budgeted),
			Spent:           b.money(spent),
			Rollover:        b.money(rollover),
			Available:       b.money(available),
			SpentPercentage: spentPct,
		})
		totalBudgeted = totalBudgeted.Add(budgeted)
		totalSpent = totalSpent.Add(spent)
	}

	report.TotalBudgeted = b.money(totalBudgeted)
	report.TotalSpent = b.money(totalSpent)
	report.ToBeBudgeted = b.money(income.Sub(totalBudgeted))
	return report
}

// OverPace reports whether the row's budget is being depleted faster than
// the month has elapsed. Only meaningful while viewing the current month.
func (r *BudgetReport) OverPace(row BudgetRow) bool {
	return r.CurrentMonth && row.SpentPercentage > r.PacingPercentage
}

// Status classifies the row for coloring: over when spending exceeds the
// allocation, warning when over pace in the current month, ok otherwise.
func (r *BudgetReport) Status(row BudgetRow) BudgetStatus {
	if row.Spent.GreaterThan(row.Budgeted) {
		return BudgetOver
	}
	if r.OverPace(row) {
		return BudgetWarning
	}
	return BudgetOK
}
