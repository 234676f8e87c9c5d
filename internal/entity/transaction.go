package entity

import "time"

type TransactionType string

const (
	TransactionTypeEntry  TransactionType = "entry"
	TransactionTypeOutput TransactionType = "output"
)

func IsValidTransactionType(t string) bool {
	switch TransactionType(t) {
	case TransactionTypeEntry, TransactionTypeOutput:
		return true
	default:
		return false
	}
}

// Transaction is a row of the transactions table. Value is kept in minor
// currency units (cents).
type Transaction struct {
	ID          int64
	Description string
	Value       int64
	Type        string
	Date        time.Time
	UserID      int64
	CategoryID  int64
}

// TransactionFilter is the predicate shared by the listing count and page
// queries. Skip and Take only apply to the page.
type TransactionFilter struct {
	UserID      int64
	CategoryIDs []int64
	Skip        int
	Take        int
}

func (f TransactionFilter) HasCategories() bool {
	return len(f.CategoryIDs) > 0
}

// BalanceSummary is expressed in minor currency units.
type BalanceSummary struct {
	Earnings int64
	Expenses int64
	Balance  int64
}

func NewBalanceSummary(earnings, expenses int64) BalanceSummary {
	return BalanceSummary{
		Earnings: earnings,
		Expenses: expenses,
		Balance:  earnings - expenses,
	}
}

// CategorizedTransaction is a transaction enriched with its category title
// for display.
type CategorizedTransaction struct {
	Transaction
	CategoryName string
}

type TransactionPage struct {
	Total int64
	Items []CategorizedTransaction
}

// TransactionDetail carries the value converted to major currency units.
type TransactionDetail struct {
	CategorizedTransaction
	MajorValue float64
}
