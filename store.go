package finance

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Event names the collection a mutation touched. Subscribers receive one
// event per committed mutation, after the file has been written.
type Event string

const (
	EventAccounts     Event = "accounts-updated"
	EventTransactions Event = "transactions-updated"
	EventBudgets      Event = "budgets-updated"
	EventGoals        Event = "goals-updated"
)

const (
	accountsFile     = "accounts.jsonl"
	transactionsFile = "transactions.jsonl"
	budgetsFile      = "budgets.jsonl"
	goalsFile        = "goals.jsonl"
)

// DefaultCurrency is used when a store has no explicit currency configured.
const DefaultCurrency = "USD"

// Store is the single writer for all finance records. It keeps every
// collection in memory, persists each one to its own JSONL file under the
// data directory, and notifies subscribers after every committed mutation.
//
// All exported methods are safe for concurrent use. Reads return copies;
// callers can hold query results across later mutations.
type Store struct {
	dir      string
	currency string
	logger   *log.Logger

	mu           sync.Mutex
	accounts     []Account
	transactions []Transaction
	budgets      []Budget
	goals        []Goal

	subs    map[int]chan Event
	nextSub int
}

// StoreOption configures a Store at Open time.
type StoreOption func(*Store)

// WithCurrency sets the ISO 4217 currency code used for derived amounts.
func WithCurrency(code string) StoreOption {
	return func(s *Store) { s.currency = code }
}

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

// Open loads the store from dir, creating the directory on first use.
// Missing collection files mean empty collections.
func Open(dir string, opts ...StoreOption) (*Store, error) {
	s := &Store{
		dir:      dir,
		currency: DefaultCurrency,
		logger:   log.Default(),
		subs:     make(map[int]chan Event),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	var err error
	if s.accounts, err = loadFile[Account](dir, accountsFile); err != nil {
		return nil, err
	}
	if s.transactions, err = loadFile[Transaction](dir, transactionsFile); err != nil {
		return nil, err
	}
	if s.budgets, err = loadFile[Budget](dir, budgetsFile); err != nil {
		return nil, err
	}
	if s.goals, err = loadFile[Goal](dir, goalsFile); err != nil {
		return nil, err
	}
	s.logger.Debug("store opened", "dir", dir,
		"accounts", len(s.accounts), "transactions", len(s.transactions))
	return s, nil
}

func loadFile[T any](dir, name string) ([]T, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	all, err := decodeLines[T](f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return all, nil
}

func saveFile[T any](dir, name string, all []T) error {
	tmp := filepath.Join(dir, name+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := encodeLines(f, all); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(dir, name))
}

// Currency returns the store's display currency.
func (s *Store) Currency() string { return s.currency }

// Subscribe registers for mutation events. The returned cancel func must be
// called when done. Slow subscribers miss events rather than block writers.
func (s *Store) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan Event, 16)
	s.subs[id] = ch
	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
}

// broadcast is called with s.mu held.
func (s *Store) broadcast(ev Event) {
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Books snapshots every collection into a derivation context.
func (s *Store) Books() *Books {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewBooks(
		append([]Account(nil), s.accounts...),
		append([]Transaction(nil), s.transactions...),
		append([]Budget(nil), s.budgets...),
		s.currency,
	)
}

// Accounts returns a copy of every account.
func (s *Store) Accounts() []Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Account(nil), s.accounts...)
}

// Transactions returns a copy of every transaction, most recent first.
// Equal dates keep their insertion order.
func (s *Store) Transactions() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := append([]Transaction(nil), s.transactions...)
	sort.SliceStable(all, func(i, j int) bool { return all[j].Date.Before(all[i].Date) })
	return all
}

// Budgets returns a copy of every budget record for the month.
func (s *Store) Budgets(month MonthKey) []Budget {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []Budget
	for _, b := range s.budgets {
		if b.Month == month {
			all = append(all, b)
		}
	}
	return all
}

// Goals returns a copy of every goal.
func (s *Store) Goals() []Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Goal(nil), s.goals...)
}

// AddAccount validates and stores a new account, assigning an id if the
// caller did not provide one.
func (s *Store) AddAccount(a Account) (Account, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if err := a.validate(); err != nil {
		return Account{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.accounts {
		if existing.ID == a.ID {
			return Account{}, fmt.Errorf("account %q already exists", a.ID)
		}
	}
	s.accounts = append(s.accounts, a)
	if err := saveFile(s.dir, accountsFile, s.accounts); err != nil {
		s.accounts = s.accounts[:len(s.accounts)-1]
		return Account{}, err
	}
	s.logger.Info("account added", "id", a.ID, "name", a.Name, "type", a.Type)
	s.broadcast(EventAccounts)
	return a, nil
}

// DeleteAccount removes the account. Its transactions are kept; balance and
// report derivations simply stop counting them.
func (s *Store) DeleteAccount(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := -1
	for j, a := range s.accounts {
		if a.ID == id {
			i = j
			break
		}
	}
	if i < 0 {
		return fmt.Errorf("account %q not found", id)
	}
	removed := s.accounts[i]
	s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
	if err := saveFile(s.dir, accountsFile, s.accounts); err != nil {
		s.accounts = append(s.accounts[:i], append([]Account{removed}, s.accounts[i:]...)...)
		return err
	}
	s.logger.Info("account deleted", "id", id, "name", removed.Name)
	s.broadcast(EventAccounts)
	return nil
}

// AddTransaction validates the transaction against the current accounts and
// stores it.
func (s *Store) AddTransaction(t Transaction) (Transaction, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := t.validate(s.accounts); err != nil {
		return Transaction{}, err
	}
	s.transactions = append(s.transactions, t)
	if err := saveFile(s.dir, transactionsFile, s.transactions); err != nil {
		s.transactions = s.transactions[:len(s.transactions)-1]
		return Transaction{}, err
	}
	s.logger.Info("transaction added", "id", t.ID, "type", t.Type,
		"amount", t.Amount, "category", t.Category, "date", t.Date)
	s.broadcast(EventTransactions)
	return t, nil
}

// DeleteTransaction removes the transaction. Every balance it affected
// reverts, transfers included.
func (s *Store) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := -1
	for j, t := range s.transactions {
		if t.ID == id {
			i = j
			break
		}
	}
	if i < 0 {
		return fmt.Errorf("transaction %q not found", id)
	}
	removed := s.transactions[i]
	s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
	if err := saveFile(s.dir, transactionsFile, s.transactions); err != nil {
		s.transactions = append(s.transactions[:i], append([]Transaction{removed}, s.transactions[i:]...)...)
		return err
	}
	s.logger.Info("transaction deleted", "id", id)
	s.broadcast(EventTransactions)
	return nil
}

// SetBudget replaces the budget for the record's category and month. At most
// one record per (category, month) pair survives.
func (s *Store) SetBudget(b Budget) (Budget, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if err := b.validate(); err != nil {
		return Budget{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := append([]Budget(nil), s.budgets...)
	kept := s.budgets[:0]
	for _, existing := range s.budgets {
		if existing.Category != b.Category || existing.Month != b.Month {
			kept = append(kept, existing)
		}
	}
	s.budgets = append(kept, b)
	if err := saveFile(s.dir, budgetsFile, s.budgets); err != nil {
		s.budgets = prev
		return Budget{}, err
	}
	s.logger.Info("budget set", "category", b.Category, "month", b.Month, "amount", b.Amount)
	s.broadcast(EventBudgets)
	return b, nil
}

// SetGoal inserts the goal, or replaces it when a goal with the same id
// exists.
func (s *Store) SetGoal(g Goal) (Goal, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if err := g.validate(); err != nil {
		return Goal{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := append([]Goal(nil), s.goals...)
	replaced := false
	for i, existing := range s.goals {
		if existing.ID == g.ID {
			s.goals[i] = g
			replaced = true
			break
		}
	}
	if !replaced {
		s.goals = append(s.goals, g)
	}
	if err := saveFile(s.dir, goalsFile, s.goals); err != nil {
		s.goals = prev
		return Goal{}, err
	}
	s.logger.Info("goal set", "id", g.ID, "name", g.Name, "target", g.TargetAmount)
	s.broadcast(EventGoals)
	return g, nil
}

// DeleteGoal removes the goal.
func (s *Store) DeleteGoal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := -1
	for j, g := range s.goals {
		if g.ID == id {
			i = j
			break
		}
	}
	if i < 0 {
		return fmt.Errorf("goal %q not found", id)
	}
	removed := s.goals[i]
	s.goals = append(s.goals[:i], s.goals[i+1:]...)
	if err := saveFile(s.dir, goalsFile, s.goals); err != nil {
		s.goals = append(s.goals[:i], append([]Goal{removed}, s.goals[i:]...)...)
		return err
	}
	s.logger.Info("goal deleted", "id", id)
	s.broadcast(EventGoals)
	return nil
}
