// Package finance tracks personal accounts, transactions, budgets and
// goals, and derives balances, budget reports and cash-flow analytics from
// them.
//
// Records are plain values persisted as JSONL files by a Store, one file
// per collection. Nothing is ever stored twice: every balance and report is
// recomputed from the raw records on demand, so the records are the single
// source of truth and derived numbers can never drift.
package finance
