package domain

import "github.com/shopspring/decimal"

// AccountType classifies a financial account.
type AccountType string

const (
	Checking   AccountType = "checking"
	Savings    AccountType = "savings"
	Credit     AccountType = "credit"
	Cash       AccountType = "cash"
	Investment AccountType = "investment"
)

// ValidAccountType reports whether t is one of the known account types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case Checking, Savings, Credit, Cash, Investment:
		return true
	}
	return false
}

// Account represents a financial account owned by a single user. All amounts
// on the account and its transactions are denominated in CurrencyCode.
//
// OpeningBalance is the baseline the derived balance starts from. It is set
// at creation and thereafter rewritten only by transfers, which fold their
// effect directly into the baseline instead of being replayed from the
// ledger.
type Account struct {
	AccountID      string          `json:"accountID"`
	UserID         string          `json:"userID"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	CurrencyCode   string          `json:"currencyCode"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	AuditFields
}

// AccountBalance is the derived read-model for an account:
// opening balance + income sum − expense sum, in the account's native currency.
type AccountBalance struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	CurrencyCode   string          `json:"currencyCode"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}
