package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vantage-fin/vantage/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record a ledger entry.
// Amount is denominated in the (source) account's native currency.
// DestinationAccountID is required for transfers, and ExchangeRate is
// required when the two accounts' currencies differ. The rate arrives as a
// string so the recorder owns parsing and can reject junk explicitly.
type CreateTransactionRequest struct {
	AccountID            string                 `json:"accountID" binding:"required,uuid"`
	Kind                 domain.TransactionKind `json:"kind" binding:"required,oneof=income expense transfer"`
	Amount               decimal.Decimal        `json:"amount" binding:"required"`
	OccurredOn           time.Time              `json:"occurredOn" binding:"required"`
	CategoryID           *string                `json:"categoryID" binding:"omitempty,uuid"`
	Description          string                 `json:"description"`
	IsRecurring          bool                   `json:"isRecurring"`
	DestinationAccountID *string                `json:"destinationAccountID" binding:"omitempty,uuid"`
	ExchangeRate         *string                `json:"exchangeRate"`
}

// UpdateTransactionRequest defines the editable fields of an income or
// expense entry. Transfers are never editable.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	OccurredOn  *time.Time       `json:"occurredOn"`
	CategoryID  *string          `json:"categoryID" binding:"omitempty,uuid"`
	Description *string          `json:"description"`
	IsRecurring *bool            `json:"isRecurring"`
}

// ListTransactionsParams narrows a transaction listing.
type ListTransactionsParams struct {
	AccountID  string `form:"accountID"`
	CategoryID string `form:"categoryID"`
	Kind       string `form:"kind"`
	From       string `form:"from"` // YYYY-MM-DD, inclusive
	To         string `form:"to"`   // YYYY-MM-DD, inclusive
	Limit      int    `form:"limit,default=50"`
	Offset     int    `form:"offset,default=0"`
}

// TransactionResponse mirrors domain.Transaction.
type TransactionResponse struct {
	TransactionID         string                 `json:"transactionID"`
	AccountID             string                 `json:"accountID"`
	Kind                  domain.TransactionKind `json:"kind"`
	Amount                decimal.Decimal        `json:"amount"`
	OccurredOn            time.Time              `json:"occurredOn"`
	CategoryID            *string                `json:"categoryID,omitempty"`
	Description           string                 `json:"description,omitempty"`
	IsRecurring           bool                   `json:"isRecurring"`
	CounterpartyAccountID *string                `json:"counterpartyAccountID,omitempty"`
	CreatedAt             time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:         txn.TransactionID,
		AccountID:             txn.AccountID,
		Kind:                  txn.Kind,
		Amount:                txn.Amount,
		OccurredOn:            txn.OccurredOn,
		CategoryID:            txn.CategoryID,
		Description:           txn.Description,
		IsRecurring:           txn.IsRecurring,
		CounterpartyAccountID: txn.CounterpartyAccountID,
		CreatedAt:             txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
