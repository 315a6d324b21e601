package finance

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Books encapsulates a consistent snapshot of all the data required for
// derivation: accounts, transactions and budgets, plus the reporting
// currency. It is the single point of access for derived state: balances,
// budget rollups and cash-flow analytics.
//
// Every derivation is a pure, total function of the snapshot: it never
// fails for a well-formed snapshot (including an empty one), never depends
// on transaction ordering, and recomputes from scratch on each call.
type Books struct {
	Accounts     []Account
	Transactions []Transaction
	Budgets      []Budget
	Currency     string
}

// NewBooks creates a snapshot over the given collections.
func NewBooks(accounts []Account, transactions []Transaction, budgets []Budget, currency string) *Books {
	return &Books{
		Accounts:     accounts,
		Transactions: transactions,
		Budgets:      budgets,
		Currency:     currency,
	}
}

// money wraps a raw decimal in the books' currency.
func (b *Books) money(v decimal.Decimal) Money { return M(v, b.Currency) }

// Balances derives every account's current balance:
//
//	currentBalance(A) = A.initialBalance + Σ effect(T, A)
//
// Summation is commutative, so the result is independent of transaction
// order, and re-invocation with identical inputs yields identical output.
// Transactions referencing deleted accounts are silently ignored.
func (b *Books) Balances() []AccountBalance {
	balances := make([]AccountBalance, 0, len(b.Accounts))
	for _, acc := range b.Accounts {
		balance := acc.InitialBalance
		for _, tx := range b.Transactions {
			balance = balance.Add(tx.effectOn(acc))
		}
		balances = append(balances, AccountBalance{Account: acc, CurrentBalance: b.money(balance)})
	}
	return balances
}

// TransactionsByDate returns the transactions most recent first. Equal
// dates keep their original order.
func (b *Books) TransactionsByDate() []Transaction {
	all := append([]Transaction(nil), b.Transactions...)
	sort.SliceStable(all, func(i, j int) bool { return all[j].Date.Before(all[i].Date) })
	return all
}

// Balance derives the current balance of a single account by id. The second
// return value is false when no such account exists.
func (b *Books) Balance(accountID string) (Money, bool) {
	for _, ab := range b.Balances() {
		if ab.ID == accountID {
			return ab.CurrentBalance, true
		}
	}
	return Money{}, false
}

// CategoryAmount is a category's total with its share of a reference total.
type CategoryAmount struct {
	Category string
	Amount   Money
	Share    float64 // ratio in [0,1], 0 when the reference total is zero
}

// Overview is the at-a-glance dashboard summary of the books.
type Overview struct {
	NetWorth    Money
	TotalAssets Money
	TotalDebt   Money
	Spending    []CategoryAmount // all-time expenses by category, descending
}

// NewOverview computes the dashboard aggregates over derived balances.
// Net worth is total assets minus total debt, where debt balances are the
// positive magnitudes carried by liability-like accounts.
func (b *Books) NewOverview() *Overview {
	assets := decimal.Zero
	debt := decimal.Zero
	for _, ab := range b.Balances() {
		if ab.Type.IsLiability() {
			debt = debt.Add(ab.CurrentBalance.Amount())
		} else {
			assets = assets.Add(ab.CurrentBalance.Amount())
		}
	}

	spending := b.spendingByCategory(nil)
	total := decimal.Zero
	for _, s := range spending {
		total = total.Add(s.Amount.Amount())
	}
	for i := range spending {
		if total.IsPositive() {
			spending[i].Share = spending[i].Amount.Amount().Div(total).InexactFloat64()
		}
	}

	return &Overview{
		NetWorth:    b.money(assets.Sub(debt)),
		TotalAssets: b.money(assets),
		TotalDebt:   b.money(debt),
		Spending:    spending,
	}
}

// spendingByCategory sums expense transactions by category, descending by
// amount. A nil filter accepts every expense.
func (b *Books) spendingByCategory(accept func(Transaction) bool) []CategoryAmount {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range b.Transactions {
		if tx.Type != Expense {
			continue
		}
		if accept != nil && !accept(tx) {
			continue
		}
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}

	out := make([]CategoryAmount, 0, len(sums))
	for cat, sum := range sums {
		out = append(out, CategoryAmount{Category: cat, Amount: b.money(sum)})
	}
	// Descending by amount, category name as a stable tie-break.
	sort.Slice(out, func(i, j int) bool {
		a, c := out[i].Amount.Amount(), out[j].Amount.Amount()
		if !a.Equal(c) {
			return a.GreaterThan(c)
		}
		return out[i].Category < out[j].Category
	})
	return out
}
