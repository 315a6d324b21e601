package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open(%q) failed: %v", dir, err)
	}
	return store, dir
}

func addTestAccount(t *testing.T, s *Store, name string, accountType AccountType, balance int64) Account {
	t.Helper()
	account, err := s.AddAccount(Account{
		Name:           name,
		Type:           accountType,
		InitialBalance: decimal.NewFromInt(balance),
	})
	if err != nil {
		t.Fatalf("AddAccount(%q) failed: %v", name, err)
	}
	return account
}

func TestStore_Roundtrip(t *testing.T) {
	store, dir := openTestStore(t)
	chk := addTestAccount(t, store, "Checking", Checking, 1000)

	tx, err := store.AddTransaction(Transaction{
		AccountID: chk.ID,
		Type:      Expense,
		Amount:    decimal.NewFromInt(200),
		Category:  "Food",
		Date:      NewDate(2025, time.March, 10),
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}
	if tx.ID == "" {
		t.Error("AddTransaction did not assign an id")
	}

	if _, err := store.SetBudget(Budget{Category: "Food", Amount: decimal.NewFromInt(300), Month: "2025-03"}); err != nil {
		t.Fatalf("SetBudget failed: %v", err)
	}
	if _, err := store.SetGoal(Goal{Name: "Vacation", TargetAmount: decimal.NewFromInt(2000)}); err != nil {
		t.Fatalf("SetGoal failed: %v", err)
	}

	// A fresh store on the same directory must see everything.
	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopening store failed: %v", err)
	}
	if got := len(reopened.Accounts()); got != 1 {
		t.Errorf("reopened store has %d accounts, want 1", got)
	}
	if got := len(reopened.Transactions()); got != 1 {
		t.Errorf("reopened store has %d transactions, want 1", got)
	}
	if got := len(reopened.Budgets("2025-03")); got != 1 {
		t.Errorf("reopened store has %d budgets, want 1", got)
	}
	if got := len(reopened.Goals()); got != 1 {
		t.Errorf("reopened store has %d goals, want 1", got)
	}

	balance, ok := reopened.Books().Balance(chk.ID)
	if !ok {
		t.Fatal("reopened store lost the account")
	}
	if want := decimal.NewFromInt(800); !balance.Amount().Equal(want) {
		t.Errorf("balance after reopen = %s, want %s", balance.Amount(), want)
	}
}

func TestStore_TransactionsMostRecentFirst(t *testing.T) {
	store, _ := openTestStore(t)
	chk := addTestAccount(t, store, "Checking", Checking, 0)

	for _, day := range []int{10, 25, 3} {
		if _, err := store.AddTransaction(Transaction{
			AccountID: chk.ID,
			Type:      Expense,
			Amount:    decimal.NewFromInt(int64(day)),
			Category:  "Food",
			Date:      NewDate(2025, time.March, day),
		}); err != nil {
			t.Fatalf("AddTransaction failed: %v", err)
		}
	}

	all := store.Transactions()
	days := []int{all[0].Date.Day(), all[1].Date.Day(), all[2].Date.Day()}
	if days[0] != 25 || days[1] != 10 || days[2] != 3 {
		t.Errorf("transactions ordered %v, want [25 10 3]", days)
	}
}

func TestStore_SetBudgetReplaces(t *testing.T) {
	store, _ := openTestStore(t)

	for _, amount := range []int64{300, 450} {
		if _, err := store.SetBudget(Budget{Category: "Food", Amount: decimal.NewFromInt(amount), Month: "2025-03"}); err != nil {
			t.Fatalf("SetBudget failed: %v", err)
		}
	}
	// A different month must not be touched by the replacement.
	if _, err := store.SetBudget(Budget{Category: "Food", Amount: decimal.NewFromInt(100), Month: "2025-04"}); err != nil {
		t.Fatalf("SetBudget failed: %v", err)
	}

	march := store.Budgets("2025-03")
	if len(march) != 1 {
		t.Fatalf("March has %d budget records for Food, want 1", len(march))
	}
	if want := decimal.NewFromInt(450); !march[0].Amount.Equal(want) {
		t.Errorf("March Food budget = %s, want %s", march[0].Amount, want)
	}
	if got := len(store.Budgets("2025-04")); got != 1 {
		t.Errorf("April has %d budget records, want 1", got)
	}
}

func TestStore_ValidationRejectsBadWrites(t *testing.T) {
	store, _ := openTestStore(t)
	chk := addTestAccount(t, store, "Checking", Checking, 1000)
	day := NewDate(2025, time.March, 10)

	testCases := []struct {
		name string
		tx   Transaction
	}{
		{
			name: "unknown source account",
			tx:   Transaction{AccountID: "nope", Type: Expense, Amount: decimal.NewFromInt(10), Category: "Food", Date: day},
		},
		{
			name: "transfer without destination",
			tx:   Transaction{AccountID: chk.ID, Type: Transfer, Amount: decimal.NewFromInt(10), Category: "Transfer", Date: day},
		},
		{
			name: "transfer to itself",
			tx:   Transaction{AccountID: chk.ID, ToAccountID: chk.ID, Type: Transfer, Amount: decimal.NewFromInt(10), Category: "Transfer", Date: day},
		},
		{
			name: "destination on an expense",
			tx:   Transaction{AccountID: chk.ID, ToAccountID: chk.ID, Type: Expense, Amount: decimal.NewFromInt(10), Category: "Food", Date: day},
		},
		{
			name: "negative amount",
			tx:   Transaction{AccountID: chk.ID, Type: Expense, Amount: decimal.NewFromInt(-10), Category: "Food", Date: day},
		},
		{
			name: "missing date",
			tx:   Transaction{AccountID: chk.ID, Type: Expense, Amount: decimal.NewFromInt(10), Category: "Food"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := store.AddTransaction(tc.tx); err == nil {
				t.Error("AddTransaction accepted an invalid transaction")
			}
		})
	}
	if got := len(store.Transactions()); got != 0 {
		t.Errorf("store kept %d invalid transactions", got)
	}
}

func TestStore_DeleteAccountKeepsTransactions(t *testing.T) {
	store, _ := openTestStore(t)
	chk := addTestAccount(t, store, "Checking", Checking, 1000)
	sav := addTestAccount(t, store, "Savings", Savings, 0)

	if _, err := store.AddTransaction(Transaction{
		AccountID: chk.ID, ToAccountID: sav.ID, Type: Transfer,
		Amount: decimal.NewFromInt(100), Category: "Transfer",
		Date: NewDate(2025, time.March, 10),
	}); err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}

	if err := store.DeleteAccount(chk.ID); err != nil {
		t.Fatalf("DeleteAccount failed: %v", err)
	}
	if got := len(store.Transactions()); got != 1 {
		t.Errorf("store has %d transactions after account deletion, want 1", got)
	}
	// The orphaned source leg is ignored; the surviving destination leg keeps
	// its credit.
	balance, ok := store.Books().Balance(sav.ID)
	if !ok {
		t.Fatal("savings account missing")
	}
	if want := decimal.NewFromInt(100); !balance.Amount().Equal(want) {
		t.Errorf("savings balance = %s, want %s", balance.Amount(), want)
	}
}

func TestStore_SubscribeBroadcasts(t *testing.T) {
	store, _ := openTestStore(t)
	events, cancel := store.Subscribe()
	defer cancel()

	addTestAccount(t, store, "Checking", Checking, 0)

	select {
	case ev := <-events:
		if ev != EventAccounts {
			t.Errorf("event = %q, want %q", ev, EventAccounts)
		}
	default:
		t.Error("no event delivered after AddAccount")
	}
}

func TestStore_DeleteTransactionReverts(t *testing.T) {
	store, _ := openTestStore(t)
	chk := addTestAccount(t, store, "Checking", Checking, 1000)

	tx, err := store.AddTransaction(Transaction{
		AccountID: chk.ID, Type: Expense,
		Amount: decimal.NewFromInt(250), Category: "Food",
		Date: NewDate(2025, time.March, 10),
	})
	if err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}
	if err := store.DeleteTransaction(tx.ID); err != nil {
		t.Fatalf("DeleteTransaction failed: %v", err)
	}

	balance, _ := store.Books().Balance(chk.ID)
	if want := decimal.NewFromInt(1000); !balance.Amount().Equal(want) {
		t.Errorf("balance after deletion = %s, want %s", balance.Amount(), want)
	}
	if err := store.DeleteTransaction(tx.ID); err == nil {
		t.Error("deleting a deleted transaction did not fail")
	}
}
