package finance

import "github.com/shopspring/decimal"

// Budget is a monthly allocation for a category.
//
// At most one live Budget exists per (category, month) pair: setting an
// amount for an existing pair replaces the old record, it never merges.
type Budget struct {
	ID       string          `json:"id"`
	UserID   string          `json:"userId,omitempty"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Month    MonthKey        `json:"month"`
}

// Goal is a savings target with manually maintained progress. It has no
// derivation coupling with the ledger.
type Goal struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId,omitempty"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    Date            `json:"targetDate"`
}
