package finance

import "fmt"

func (a Account) validate() error {
	if a.Name == "" {
		return fmt.Errorf("account needs a name")
	}
	if _, err := ParseAccountType(string(a.Type)); err != nil {
		return err
	}
	return nil
}

// validate checks a transaction against the accounts it references. Writes
// are strict; reads stay tolerant so records that outlive their account keep
// decoding.
func (t Transaction) validate(accounts []Account) error {
	if _, err := ParseTransactionType(string(t.Type)); err != nil {
		return err
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("amount cannot be negative, got %s", t.Amount)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction needs a date")
	}
	if t.Category == "" {
		return fmt.Errorf("transaction needs a category")
	}
	exists := func(id string) bool {
		for _, a := range accounts {
			if a.ID == id {
				return true
			}
		}
		return false
	}
	if !exists(t.AccountID) {
		return fmt.Errorf("account %q not found", t.AccountID)
	}
	switch t.Type {
	case Transfer:
		if t.ToAccountID == "" {
			return fmt.Errorf("transfer needs a destination account")
		}
		if t.ToAccountID == t.AccountID {
			return fmt.Errorf("cannot transfer an account to itself")
		}
		if !exists(t.ToAccountID) {
			return fmt.Errorf("account %q not found", t.ToAccountID)
		}
	default:
		if t.ToAccountID != "" {
			return fmt.Errorf("%s cannot have a destination account", t.Type)
		}
	}
	return nil
}

func (b Budget) validate() error {
	if b.Category == "" {
		return fmt.Errorf("budget needs a category")
	}
	if b.Amount.IsNegative() {
		return fmt.Errorf("budget amount cannot be negative, got %s", b.Amount)
	}
	if _, err := ParseMonthKey(string(b.Month)); err != nil {
		return err
	}
	return nil
}

func (g Goal) validate() error {
	if g.Name == "" {
		return fmt.Errorf("goal needs a name")
	}
	if !g.TargetAmount.IsPositive() {
		return fmt.Errorf("goal target must be positive, got %s", g.TargetAmount)
	}
	if g.CurrentAmount.IsNegative() {
		return fmt.Errorf("goal progress cannot be negative, got %s", g.CurrentAmount)
	}
	return nil
}
