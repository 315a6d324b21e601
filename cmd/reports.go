package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	finance "github.com/sahib-pratap-singh/Ai-Finance"
	"github.com/sahib-pratap-singh/Ai-Finance/renderer"
)

// overviewCmd holds the flags for the 'overview' subcommand.
type overviewCmd struct{}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display net worth and the spending breakdown" }
func (*overviewCmd) Usage() string {
	return `fin overview

  Displays net worth, total assets and debt, and spending by category.
`
}

func (*overviewCmd) SetFlags(f *flag.FlagSet) {}

func (*overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.OverviewMarkdown(store.Books().NewOverview()))
	return subcommands.ExitSuccess
}

// cashflowCmd holds the flags for the 'cashflow' subcommand.
type cashflowCmd struct{}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display runway, year-to-date and income flows" }
func (*cashflowCmd) Usage() string {
	return `fin cashflow

  Displays how long liquid cash lasts at the recent spending rate, the
  year-to-date income and expenses, and where income goes by category.
`
}

func (*cashflowCmd) SetFlags(f *flag.FlagSet) {}

func (*cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	books := store.Books()
	today := finance.Today()
	printMarkdown(renderer.CashflowMarkdown(
		books.NewRunwayReport(today),
		books.NewWaterfallReport(today),
		books.NewFlowReport(),
	))
	return subcommands.ExitSuccess
}

// expensesCmd holds the flags for the 'expenses' subcommand.
type expensesCmd struct {
	month string
}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "display a month's spending day by day" }
func (*expensesCmd) Usage() string {
	return `fin expenses [-month <YYYY-MM>]

  Displays each day's spending with its dominant category, and the month's
  category ranking.
`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", string(finance.Today().MonthKey()), "Month to report on.")
}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month, err := finance.ParseMonthKey(c.month)
	if err != nil {
		return usageError(err)
	}
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	first := month.First()
	cal := store.Books().NewExpenseCalendar(first.Year(), first.Month())
	printMarkdown(renderer.CalendarMarkdown(cal))
	return subcommands.ExitSuccess
}

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	kind string
	dir  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export transactions or accounts to CSV" }
func (*exportCmd) Usage() string {
	return `fin export [-k transactions|accounts] [-o <dir>]

  Writes a CSV file named finance_<kind>_<date>.csv into the output
  directory.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "transactions", "What to export: transactions or accounts.")
	f.StringVar(&c.dir, "o", ".", "Output directory.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.kind != "transactions" && c.kind != "accounts" {
		return usageError(fmt.Errorf("unknown export kind %q", c.kind))
	}
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	books := store.Books()

	filename := filepath.Join(c.dir, finance.ExportFilename(c.kind, finance.Today()))
	out, err := os.Create(filename)
	if err != nil {
		return fail(err)
	}

	if c.kind == "transactions" {
		err = books.ExportTransactionsCSV(out)
	} else {
		err = books.ExportAccountsCSV(out)
	}
	if err != nil {
		out.Close()
		return fail(err)
	}
	if err := out.Close(); err != nil {
		return fail(err)
	}
	fmt.Printf("Exported %s to %s\n", c.kind, filename)
	return subcommands.ExitSuccess
}
