package finance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the tagged variant discriminating transaction semantics.
type TransactionType string

const (
	Income   TransactionType = "income"
	Expense  TransactionType = "expense"
	Transfer TransactionType = "transfer"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income, Expense, Transfer:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Categories is the known category set. It is a hint for forms and budget
// rows, not a constraint: a transaction may carry any category string.
var Categories = []string{
	"Housing", "Food", "Transportation", "Utilities",
	"Entertainment", "Shopping", "Health", "Income",
	"Debt Payment", "Transfer", "Other",
}

// Transaction is a single immutable ledger entry.
//
// Amount is an unsigned magnitude; the sign of its effect on an account is
// decided by effectOn from the transaction type and the account kind.
// ToAccountID is set if and only if Type is Transfer.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId,omitempty"`
	AccountID   string          `json:"accountId"`
	ToAccountID string          `json:"toAccountId,omitempty"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	Merchant    string          `json:"merchantName,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// effectOn returns the signed contribution of the transaction to the given
// account's balance.
//
// This switch is the single place in the repository where sign rules are
// decided. The table, by transaction type, account role and account kind:
//
//	income   source       asset +amount   liability -amount
//	expense  source       asset -amount   liability +amount
//	transfer source       asset -amount   liability -amount
//	transfer destination  asset +amount   liability -amount
//
// A transaction not touching the account at all, including one referencing
// a deleted account, contributes zero.
func (t Transaction) effectOn(a Account) decimal.Decimal {
	liability := a.Type.IsLiability()

	var effect decimal.Decimal
	if t.AccountID == a.ID {
		switch t.Type {
		case Income:
			if liability {
				effect = effect.Sub(t.Amount) // paying income toward debt reduces it
			} else {
				effect = effect.Add(t.Amount)
			}
		case Expense:
			if liability {
				effect = effect.Add(t.Amount) // a charge on debt increases it
			} else {
				effect = effect.Sub(t.Amount)
			}
		case Transfer:
			effect = effect.Sub(t.Amount)
		}
	}
	if t.ToAccountID == a.ID && t.Type == Transfer {
		if liability {
			effect = effect.Sub(t.Amount)
		} else {
			effect = effect.Add(t.Amount)
		}
	}
	return effect
}
