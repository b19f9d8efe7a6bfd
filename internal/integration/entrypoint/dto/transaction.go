package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/application/usecase/transaction"
	"github.com/finapple/backend/internal/domain/entity"
)

// TransactionRequest represents the request body for creating or editing a transaction.
type TransactionRequest struct {
	ID         string          `json:"id"`
	Type       string          `json:"type" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	WalletID   string          `json:"wallet_id"`
	ToWalletID string          `json:"to_wallet_id"`
	EnvelopeID string          `json:"envelope_id"`
	BudgetID   string          `json:"budget_id"`
	Category   string          `json:"category"`
	Date       string          `json:"date"`
	IsAuto     bool            `json:"is_auto"`
	Frequency  string          `json:"frequency"`
	Comment    string          `json:"comment"`
}

// ToInput converts the request to the use case input.
func (r TransactionRequest) ToInput() (transaction.TransactionInput, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return transaction.TransactionInput{}, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}
	return transaction.TransactionInput{
		Type:       entity.TransactionType(r.Type),
		Amount:     r.Amount,
		Currency:   r.Currency,
		WalletID:   r.WalletID,
		ToWalletID: r.ToWalletID,
		EnvelopeID: r.EnvelopeID,
		BudgetID:   r.BudgetID,
		Category:   r.Category,
		Date:       date,
		IsAuto:     r.IsAuto,
		Frequency:  entity.Frequency(r.Frequency),
		Comment:    r.Comment,
	}, nil
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	WalletID   string          `json:"wallet_id,omitempty"`
	ToWalletID string          `json:"to_wallet_id,omitempty"`
	EnvelopeID string          `json:"envelope_id,omitempty"`
	BudgetID   string          `json:"budget_id,omitempty"`
	Category   string          `json:"category"`
	Date       string          `json:"date"`
	IsAuto     bool            `json:"is_auto"`
	Frequency  string          `json:"frequency"`
	Comment    string          `json:"comment,omitempty"`
}

// TransactionMutationResponse represents the result of a ledger operation.
type TransactionMutationResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Warnings    []WarningResponse   `json:"warnings"`
}

// TransactionDeleteResponse represents the result of a delete.
type TransactionDeleteResponse struct {
	Deleted  bool              `json:"deleted"`
	Warnings []WarningResponse `json:"warnings"`
}

// TransactionListResponse represents a page of the transaction log.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a transaction to its response form.
func ToTransactionResponse(tx entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         tx.ID,
		Type:       string(tx.Type),
		Amount:     tx.Amount,
		Currency:   tx.Currency,
		WalletID:   tx.WalletID,
		ToWalletID: tx.ToWalletID,
		EnvelopeID: tx.EnvelopeID,
		BudgetID:   tx.BudgetID,
		Category:   tx.Category,
		Date:       FormatDate(tx.Date),
		IsAuto:     tx.IsAuto,
		Frequency:  string(tx.Frequency),
		Comment:    tx.Comment,
	}
}

// ToTransactionResponses converts transactions to their response form.
func ToTransactionResponses(txs []entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, ToTransactionResponse(tx))
	}
	return out
}

// ToTransactionListResponse converts the list output to its response form.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	return TransactionListResponse{
		Transactions: ToTransactionResponses(output.Transactions),
		Total:        output.Total,
	}
}
