package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	finance "github.com/sahib-pratap-singh/Ai-Finance"
	"github.com/sahib-pratap-singh/Ai-Finance/renderer"
)

// addAccountCmd holds the flags for the 'add-account' subcommand.
type addAccountCmd struct {
	name        string
	accountType string
	balance     string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "add a new account" }
func (*addAccountCmd) Usage() string {
	return `fin add-account -name <name> -type <type> [-balance <amount>]

  Adds an account. Valid types: Checking, Savings, Credit Card, Investment,
  Loan, Cash. The balance is the opening balance before any transactions.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name.")
	f.StringVar(&c.accountType, "type", string(finance.Checking), "Account type.")
	f.StringVar(&c.balance, "balance", "0", "Opening balance.")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accountType, err := finance.ParseAccountType(c.accountType)
	if err != nil {
		return usageError(err)
	}
	balance, err := decimal.NewFromString(c.balance)
	if err != nil {
		return usageError(fmt.Errorf("parsing balance: %w", err))
	}
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	account, err := store.AddAccount(finance.Account{
		Name:           c.name,
		Type:           accountType,
		InitialBalance: balance,
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added account %q (%s)\n", account.Name, account.ID)
	return subcommands.ExitSuccess
}

// deleteAccountCmd holds the flags for the 'delete-account' subcommand.
type deleteAccountCmd struct {
	account string
}

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "delete an account" }
func (*deleteAccountCmd) Usage() string {
	return `fin delete-account -a <name|id>

  Deletes the account. Its transactions are kept but no longer count toward
  any balance.
`
}

func (c *deleteAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account name or id.")
}

func (c *deleteAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	account, err := findAccount(store.Accounts(), c.account)
	if err != nil {
		return usageError(err)
	}
	if err := store.DeleteAccount(account.ID); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted account %q\n", account.Name)
	return subcommands.ExitSuccess
}

// accountsCmd holds the flags for the 'accounts' subcommand.
type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts with their current balances" }
func (*accountsCmd) Usage() string {
	return `fin accounts

  Lists every account with its balance derived from the opening balance and
  all recorded transactions.
`
}

func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (*accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AccountsMarkdown(store.Books().Balances()))
	return subcommands.ExitSuccess
}
