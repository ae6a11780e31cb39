package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind is the nature of a ledger entry.
type TransactionKind string

const (
	Income   TransactionKind = "income"
	Expense  TransactionKind = "expense"
	Transfer TransactionKind = "transfer"
)

// ValidTransactionKind reports whether k is a known transaction kind.
func ValidTransactionKind(k TransactionKind) bool {
	return k == Income || k == Expense || k == Transfer
}

// Transaction is a single ledger entry against one account, denominated in
// that account's native currency. Amount is always positive; the kind
// determines the sign applied when deriving balances.
//
// For transfers the row lives on the source account only; the destination
// side has no mirrored row, its balance effect is folded into the
// destination account's opening balance. CounterpartyAccountID records the
// destination for display.
type Transaction struct {
	TransactionID         string          `json:"transactionID"`
	UserID                string          `json:"userID"`
	AccountID             string          `json:"accountID"`
	Kind                  TransactionKind `json:"kind"`
	Amount                decimal.Decimal `json:"amount"`
	OccurredOn            time.Time       `json:"occurredOn"`
	CategoryID            *string         `json:"categoryID,omitempty"`
	Description           string          `json:"description,omitempty"`
	IsRecurring           bool            `json:"isRecurring"`
	CounterpartyAccountID *string         `json:"counterpartyAccountID,omitempty"`
	AuditFields
}

// CategorySpend is an aggregate of expense amounts for one category in one
// native currency; callers convert per-currency buckets into the base
// currency before summing.
type CategorySpend struct {
	CategoryID   string
	CurrencyCode string
	Total        decimal.Decimal
}

// CurrencyFlow aggregates income and expense sums over a period per native
// currency; the summary converts each bucket to the base currency.
type CurrencyFlow struct {
	CurrencyCode string
	IncomeSum    decimal.Decimal
	ExpenseSum   decimal.Decimal
}

// AccountFlow holds the aggregate income and expense sums for one account,
// in the account's native currency. Transfers are excluded: their effect
// lives in the opening balance.
type AccountFlow struct {
	AccountID  string
	IncomeSum  decimal.Decimal
	ExpenseSum decimal.Decimal
}
