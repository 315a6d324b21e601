// Package cmd implements the CLI application to manage personal finances.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	finance "github.com/sahib-pratap-singh/Ai-Finance"
)

// Register the subcommands.
// A main package calls Register() to install them, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addAccountCmd{}, "accounts")
	c.Register(&deleteAccountCmd{}, "accounts")
	c.Register(&accountsCmd{}, "accounts")

	c.Register(&addTxCmd{}, "transactions")
	c.Register(&deleteTxCmd{}, "transactions")
	c.Register(&transactionsCmd{}, "transactions")

	c.Register(&setBudgetCmd{}, "budgets")
	c.Register(&budgetCmd{}, "budgets")
	c.Register(&setGoalCmd{}, "budgets")
	c.Register(&goalsCmd{}, "budgets")

	c.Register(&overviewCmd{}, "reports")
	c.Register(&cashflowCmd{}, "reports")
	c.Register(&expensesCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&voiceTxCmd{}, "voice")
	c.Register(&voiceAccountCmd{}, "voice")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", ".finance", "Path to the data folder holding the record files")
var currency = flag.String("currency", finance.DefaultCurrency, "ISO 4217 currency code for amounts")

// OpenStore opens the app data folder.
func OpenStore() (*finance.Store, error) {
	return finance.Open(*dataDir, finance.WithCurrency(*currency))
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot be built.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}

// findAccount resolves an account by id or, failing that, by exact name.
func findAccount(accounts []finance.Account, key string) (finance.Account, error) {
	for _, a := range accounts {
		if a.ID == key {
			return a, nil
		}
	}
	for _, a := range accounts {
		if a.Name == key {
			return a, nil
		}
	}
	return finance.Account{}, fmt.Errorf("no account named or identified by %q", key)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

func usageError(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitUsageError
}
