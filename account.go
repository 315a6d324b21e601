package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account. The type decides the sign semantics of
// every transaction touching the account: asset-like accounts grow with
// income, liability-like accounts (debt) grow with expenses.
type AccountType string

const (
	Checking   AccountType = "Checking"
	Savings    AccountType = "Savings"
	CreditCard AccountType = "Credit Card"
	Investment AccountType = "Investment"
	Loan       AccountType = "Loan"
	Cash       AccountType = "Cash"
)

// AccountTypes lists all account types in presentation order.
var AccountTypes = []AccountType{Checking, Savings, Investment, Cash, CreditCard, Loan}

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	for _, t := range AccountTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown account type: %q", s)
}

// IsLiability reports whether the account type represents debt.
func (t AccountType) IsLiability() bool {
	return t == CreditCard || t == Loan
}

// IsLiquid reports whether the account type counts toward liquid cash.
// Investment is asset-like but not liquid.
func (t AccountType) IsLiquid() bool {
	return t == Checking || t == Savings || t == Cash
}

// Account is a user account holding a starting ledger value.
//
// Accounts are immutable after creation except for deletion. Deleting an
// account does not cascade to transactions referencing it; those become
// orphans and contribute nothing to any derivation.
type Account struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId,omitempty"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// AccountBalance is an Account annotated with its derived current balance.
// It is never stored; it is recomputed from scratch on every snapshot.
type AccountBalance struct {
	Account
	CurrentBalance Money
}
