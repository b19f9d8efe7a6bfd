package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	"github.com/finapple/backend/internal/domain/ledger"
)

// UpdateTransactionInput represents the input for transaction update.
type UpdateTransactionInput struct {
	ID string
	TransactionInput
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction entity.Transaction
	Warnings    []ledger.UnresolvedReference
}

// UpdateTransactionUseCase replaces a transaction, reversing the old impact and
// applying the new one.
type UpdateTransactionUseCase struct {
	snapshotRepo adapter.SnapshotRepository
	alerter      budgetAlerter
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(snapshotRepo adapter.SnapshotRepository, emailService adapter.EmailService) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		snapshotRepo: snapshotRepo,
		alerter:      budgetAlerter{emailService: emailService},
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	updated := input.toEntity(input.ID)

	if err := validate(updated); err != nil {
		return nil, err
	}

	var (
		result ledger.Result
		before []entity.Budget
	)
	_, err := uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		old, ok := s.FindTransaction(input.ID)
		if !ok {
			return notFound(input.ID)
		}

		before = slices.Clone(s.Budgets)
		res, err := ledger.UpdateTransaction(ledger.BooksFromSnapshot(s), old, updated)
		if err != nil {
			return err
		}
		res.Books.ApplyTo(s)
		result = res
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	slog.Info("Transaction updated", "transaction_id", updated.ID)
	logUnresolved("update", result.Unresolved)
	uc.alerter.notify(ctx, before, result.Books.Budgets, updated)

	return &UpdateTransactionOutput{
		Transaction: updated,
		Warnings:    result.Unresolved,
	}, nil
}
