package finance

import "github.com/shopspring/decimal"

// RunwayTier classifies how long liquid cash lasts at recent spend.
// The thresholds are part of the contract: under one month is critical,
// under three is warning, anything else is healthy.
type RunwayTier int

const (
	RunwayHealthy RunwayTier = iota
	RunwayWarning
	RunwayCritical
)

func (t RunwayTier) String() string {
	switch t {
	case RunwayCritical:
		return "critical"
	case RunwayWarning:
		return "warning"
	default:
		return "healthy"
	}
}

// RunwayReport estimates how many months of expenses liquid cash covers.
type RunwayReport struct {
	LiquidCash Money // balances of Checking, Savings and Cash accounts
	// AvgMonthlyExpense is the trailing-3-month expense average, floored
	// at 1 so an empty expense history never divides by zero.
	AvgMonthlyExpense Money
	Months            float64
	Tier              RunwayTier
}

// NewRunwayReport computes the liquidity runway as of "now".
func (b *Books) NewRunwayReport(now Date) *RunwayReport {
	liquid := decimal.Zero
	for _, ab := range b.Balances() {
		if ab.Type.IsLiquid() {
			liquid = liquid.Add(ab.CurrentBalance.Amount())
		}
	}

	threeMonthsAgo := now.AddMonth(-3)
	recent := decimal.Zero
	for _, tx := range b.Transactions {
		if tx.Type == Expense && tx.Date.After(threeMonthsAgo) {
			recent = recent.Add(tx.Amount)
		}
	}

	avg := recent.Div(decimal.NewFromInt(3))
	if avg.LessThan(decimal.NewFromInt(1)) {
		avg = decimal.NewFromInt(1)
	}

	months := liquid.Div(avg).InexactFloat64()
	tier := RunwayHealthy
	switch {
	case months < 1:
		tier = RunwayCritical
	case months < 3:
		tier = RunwayWarning
	}

	return &RunwayReport{
		LiquidCash:        b.money(liquid),
		AvgMonthlyExpense: b.money(avg),
		Months:            months,
		Tier:              tier,
	}
}

// WaterfallReport is the year-to-date income/expense waterfall. The
// baseline start value is 0 by definition: there is no historical
// balance snapshot to anchor on.
type WaterfallReport struct {
	Year       int
	IncomeYTD  Money
	ExpenseYTD Money
	NetChange  Money
}

// NewWaterfallReport sums income and expenses dated in the current
// calendar year.
func (b *Books) NewWaterfallReport(now Date) *WaterfallReport {
	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range b.Transactions {
		if tx.Date.Year() != now.Year() {
			continue
		}
		switch tx.Type {
		case Income:
			income = income.Add(tx.Amount)
		case Expense:
			expense = expense.Add(tx.Amount)
		}
	}
	return &WaterfallReport{
		Year:       now.Year(),
		IncomeYTD:  b.money(income),
		ExpenseYTD: b.money(expense),
		NetChange:  b.money(income.Sub(expense)),
	}
}

// flowTopCategories is how many categories the flow report keeps
// individually before folding the rest into "Other".
const flowTopCategories = 5

// FlowReport describes where all-time earnings went, category by category.
type FlowReport struct {
	TotalIncome Money
	// Flows holds the top spending categories descending, then an "Other"
	// bucket when the remainder is positive. Each Share is the category's
	// sum divided by total income, not by total expense.
	Flows []CategoryAmount
}

// NewFlowReport computes the all-time category-flow distribution.
func (b *Books) NewFlowReport() *FlowReport {
	totalIncome := decimal.Zero
	for _, tx := range b.Transactions {
		if tx.Type == Income {
			totalIncome = totalIncome.Add(tx.Amount)
		}
	}

	ranked := b.spendingByCategory(nil)
	flows := ranked
	if len(ranked) > flowTopCategories {
		flows = ranked[:flowTopCategories:flowTopCategories]
		other := decimal.Zero
		for _, rest := range ranked[flowTopCategories:] {
			other = other.Add(rest.Amount.Amount())
		}
		if other.IsPositive() {
			flows = append(flows, CategoryAmount{Category: "Other", Amount: b.money(other)})
		}
	}

	for i := range flows {
		if totalIncome.IsPositive() {
			flows[i].Share = flows[i].Amount.Amount().Div(totalIncome).InexactFloat64()
		} else {
			flows[i].Share = 0
		}
	}

	return &FlowReport{TotalIncome: b.money(totalIncome), Flows: flows}
}
