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

// setBudgetCmd holds the flags for the 'set-budget' subcommand.
type setBudgetCmd struct {
	category string
	amount   string
	month    string
}

func (*setBudgetCmd) Name() string     { return "set-budget" }
func (*setBudgetCmd) Synopsis() string { return "set a category's budget for a month" }
func (*setBudgetCmd) Usage() string {
	return `fin set-budget -c <category> -m <amount> [-month <YYYY-MM>]

  Sets the budget for a category and month. Setting the same category and
  month again replaces the previous amount.
`
}

func (c *setBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category to budget.")
	f.StringVar(&c.amount, "m", "", "Budgeted amount.")
	f.StringVar(&c.month, "month", string(finance.Today().MonthKey()), "Month the budget applies to.")
}

func (c *setBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return usageError(fmt.Errorf("parsing amount: %w", err))
	}
	month, err := finance.ParseMonthKey(c.month)
	if err != nil {
		return usageError(err)
	}
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	budget, err := store.SetBudget(finance.Budget{
		Category: c.category,
		Amount:   amount,
		Month:    month,
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Budget for %s in %s set to %s\n", budget.Category, budget.Month, budget.Amount)
	return subcommands.ExitSuccess
}

// budgetCmd holds the flags for the 'budget' subcommand.
type budgetCmd struct {
	month string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "display the budget report for a month" }
func (*budgetCmd) Usage() string {
	return `fin budget [-month <YYYY-MM>]

  Displays budgeted versus spent per category, what is left to budget, and,
  for the current month, how spending paces against the calendar.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", string(finance.Today().MonthKey()), "Month to report on.")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month, err := finance.ParseMonthKey(c.month)
	if err != nil {
		return usageError(err)
	}
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	report := store.Books().NewBudgetReport(month, finance.Today())
	printMarkdown(renderer.BudgetMarkdown(report))
	return subcommands.ExitSuccess
}

// setGoalCmd holds the flags for the 'set-goal' subcommand.
type setGoalCmd struct {
	id      string
	name    string
	target  string
	current string
	by      string
}

func (*setGoalCmd) Name() string     { return "set-goal" }
func (*setGoalCmd) Synopsis() string { return "create or update a savings goal" }
func (*setGoalCmd) Usage() string {
	return `fin set-goal -name <name> -target <amount> [-current <amount>] [-by <date>] [-id <id>]

  Creates a savings goal, or updates the goal with the given id.
`
}

func (c *setGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Goal id, empty to create a new goal.")
	f.StringVar(&c.name, "name", "", "Goal name.")
	f.StringVar(&c.target, "target", "", "Target amount.")
	f.StringVar(&c.current, "current", "0", "Amount saved so far.")
	f.StringVar(&c.by, "by", "", "Target date, optional.")
}

func (c *setGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	target, err := decimal.NewFromString(c.target)
	if err != nil {
		return usageError(fmt.Errorf("parsing target: %w", err))
	}
	current, err := decimal.NewFromString(c.current)
	if err != nil {
		return usageError(fmt.Errorf("parsing current: %w", err))
	}
	goal := finance.Goal{
		ID:            c.id,
		Name:          c.name,
		TargetAmount:  target,
		CurrentAmount: current,
	}
	if c.by != "" {
		by, err := finance.ParseDate(c.by)
		if err != nil {
			return usageError(fmt.Errorf("parsing date: %w", err))
		}
		goal.TargetDate = by
	}
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	goal, err = store.SetGoal(goal)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Goal %q set (%s)\n", goal.Name, goal.ID)
	return subcommands.ExitSuccess
}

// goalsCmd holds the flags for the 'goals' subcommand.
type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list savings goals" }
func (*goalsCmd) Usage() string {
	return `fin goals

  Lists every savings goal with its progress.
`
}

func (*goalsCmd) SetFlags(f *flag.FlagSet) {}

func (*goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.GoalsMarkdown(store.Goals(), store.Currency()))
	return subcommands.ExitSuccess
}
