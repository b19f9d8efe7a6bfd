// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
	"github.com/finapple/backend/internal/domain/ledger"
)

// TransactionInput holds the editable fields of a transaction.
type TransactionInput struct {
	Type       entity.TransactionType
	Amount     decimal.Decimal
	Currency   string
	WalletID   string
	ToWalletID string
	EnvelopeID string
	BudgetID   string
	Category   string
	Date       time.Time
	IsAuto     bool
	Frequency  entity.Frequency
	Comment    string
}

// toEntity builds a transaction with the given id from the input.
func (in TransactionInput) toEntity(id string) entity.Transaction {
	frequency := in.Frequency
	if frequency == "" {
		frequency = entity.FrequencyNone
	}
	return entity.Transaction{
		ID:         id,
		Type:       in.Type,
		Amount:     in.Amount,
		Currency:   in.Currency,
		WalletID:   in.WalletID,
		ToWalletID: in.ToWalletID,
		EnvelopeID: in.EnvelopeID,
		BudgetID:   in.BudgetID,
		Category:   in.Category,
		Date:       in.Date.UTC().Truncate(24 * time.Hour),
		IsAuto:     in.IsAuto,
		Frequency:  frequency,
		Comment:    in.Comment,
	}
}

// validate checks the fields the ledger relies on. Unknown ids are not an error
// here; the ledger reports them as unresolved references.
func validate(tx entity.Transaction) error {
	if !tx.Type.IsValid() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be one of INCOME, EXPENSE, TRANSFER, INVESTMENT",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !tx.Frequency.IsValid() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be one of NONE, DAILY, WEEKLY, MONTHLY, CUSTOM_DATE",
			domainerror.ErrInvalidFrequency,
		)
	}

	if tx.Type != entity.TransactionTypeInvestment && tx.WalletID == "" {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeMissingSourceWallet,
			"walletId is required",
			domainerror.ErrMissingSourceWallet,
		)
	}

	if tx.Type == entity.TransactionTypeTransfer && tx.ToWalletID == "" {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeMissingTransferTarget,
			"toWalletId is required for transfers",
			domainerror.ErrMissingTransferTarget,
		)
	}

	return nil
}

func notFound(id string) error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found: "+id,
		domainerror.ErrTransactionNotFound,
	)
}

func logUnresolved(operation string, refs []ledger.UnresolvedReference) {
	for _, ref := range refs {
		slog.Warn("Unresolved transaction reference",
			"operation", operation,
			"transaction_id", ref.TransactionID,
			"kind", ref.Kind,
			"role", ref.Role,
			"id", ref.ID,
		)
	}
}

// budgetAlerter queues an alert for every budget an operation pushed past its limit.
type budgetAlerter struct {
	emailService adapter.EmailService
}

func (a budgetAlerter) notify(ctx context.Context, before, after []entity.Budget, tx entity.Transaction) {
	if a.emailService == nil {
		return
	}

	for _, b := range after {
		prev, ok := findBudget(before, b.ID)
		if !b.IsExceeded() || (ok && prev.IsExceeded()) {
			continue
		}

		err := a.emailService.QueueBudgetAlert(ctx, adapter.QueueBudgetAlertInput{
			BudgetID:    b.ID,
			BudgetName:  b.Name,
			Limit:       b.Limit.StringFixed(2),
			Spent:       b.Spent.StringFixed(2),
			Overspent:   b.Spent.Sub(b.Limit).StringFixed(2),
			Currency:    b.Currency,
			Transaction: tx.ID,
		})
		if err != nil {
			// The transaction is already committed.
			slog.Error("Failed to queue budget alert", "error", err, "budget_id", b.ID)
		}
	}
}

func findBudget(budgets []entity.Budget, id string) (entity.Budget, bool) {
	for _, b := range budgets {
		if b.ID == id {
			return b, true
		}
	}
	return entity.Budget{}, false
}
