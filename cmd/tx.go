package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	finance "github.com/sahib-pratap-singh/Ai-Finance"
	"github.com/sahib-pratap-singh/Ai-Finance/renderer"
)

// addTxCmd holds the flags for the 'add' subcommand.
type addTxCmd struct {
	txType      string
	amount      string
	category    string
	date        string
	description string
	merchant    string
	account     string
	to          string
}

func (*addTxCmd) Name() string     { return "add" }
func (*addTxCmd) Synopsis() string { return "record an income, expense or transfer" }
func (*addTxCmd) Usage() string {
	return `fin add -t <type> -m <amount> -c <category> -a <account> [-to <account>] [-d <date>] [-desc <text>]

  Records a transaction. Amounts are always positive; the type decides the
  direction. Transfers need a destination account.

Usage Examples:
$ fin add -t expense -m 42.50 -c Food -a Checking -desc "groceries"
$ fin add -t transfer -m 500 -a Checking -to Savings -c Transfer
`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txType, "t", string(finance.Expense), "Transaction type: income, expense or transfer.")
	f.StringVar(&c.amount, "m", "", "Amount, always positive.")
	f.StringVar(&c.category, "c", "Other", "Category.")
	f.StringVar(&c.date, "d", finance.Today().String(), "Transaction date.")
	f.StringVar(&c.description, "desc", "", "Free-form description.")
	f.StringVar(&c.merchant, "merchant", "", "Merchant name.")
	f.StringVar(&c.account, "a", "", "Source account name or id.")
	f.StringVar(&c.to, "to", "", "Destination account name or id, transfers only.")
}

func (c *addTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txType, err := finance.ParseTransactionType(c.txType)
	if err != nil {
		return usageError(err)
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return usageError(fmt.Errorf("parsing amount: %w", err))
	}
	date, err := finance.ParseDate(c.date)
	if err != nil {
		return usageError(fmt.Errorf("parsing date: %w", err))
	}
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	accounts := store.Accounts()
	account, err := findAccount(accounts, c.account)
	if err != nil {
		return usageError(err)
	}
	tx := finance.Transaction{
		Type:        txType,
		Amount:      amount,
		Category:    c.category,
		Date:        date,
		Description: c.description,
		Merchant:    c.merchant,
		AccountID:   account.ID,
		CreatedAt:   time.Now(),
	}
	if c.to != "" {
		to, err := findAccount(accounts, c.to)
		if err != nil {
			return usageError(err)
		}
		tx.ToAccountID = to.ID
	}
	tx, err = store.AddTransaction(tx)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s of %s on %s (%s)\n", tx.Type, tx.Amount, tx.Date, tx.ID)
	return subcommands.ExitSuccess
}

// deleteTxCmd holds the flags for the 'delete' subcommand.
type deleteTxCmd struct {
	id string
}

func (*deleteTxCmd) Name() string     { return "delete" }
func (*deleteTxCmd) Synopsis() string { return "delete a transaction" }
func (*deleteTxCmd) Usage() string {
	return `fin delete -id <transaction-id>

  Deletes the transaction. Every balance it affected reverts, both legs of a
  transfer included.
`
}

func (c *deleteTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id.")
}

func (c *deleteTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	if err := store.DeleteTransaction(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted transaction %s\n", c.id)
	return subcommands.ExitSuccess
}

// transactionsCmd holds the flags for the 'transactions' subcommand.
type transactionsCmd struct{}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list transactions, most recent first" }
func (*transactionsCmd) Usage() string {
	return `fin transactions

  Lists every recorded transaction, most recent first.
`
}

func (*transactionsCmd) SetFlags(f *flag.FlagSet) {}

func (*transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.TransactionsMarkdown(store.Transactions(), store.Accounts(), store.Currency()))
	return subcommands.ExitSuccess
}
