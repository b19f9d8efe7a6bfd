package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	"github.com/finapple/backend/internal/domain/ledger"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID string
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	// Deleted is false when the id was not in the log.
	Deleted  bool
	Warnings []ledger.UnresolvedReference
}

// errNotInLog aborts the snapshot update when there is nothing to delete.
var errNotInLog = errors.New("transaction not in log")

// DeleteTransactionUseCase reverses a transaction and removes it from the log.
type DeleteTransactionUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(snapshotRepo adapter.SnapshotRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the transaction deletion. Deleting an unknown id is a no-op.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	output := &DeleteTransactionOutput{}

	_, err := uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		if _, ok := s.FindTransaction(input.ID); !ok {
			return errNotInLog
		}
		output.Deleted = true

		res, err := ledger.DeleteTransaction(ledger.BooksFromSnapshot(s), input.ID)
		if err != nil {
			return err
		}
		res.Books.ApplyTo(s)
		output.Warnings = res.Unresolved
		return nil
	})
	if errors.Is(err, errNotInLog) {
		return output, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	if output.Deleted {
		slog.Info("Transaction deleted", "transaction_id", input.ID)
	}
	logUnresolved("delete", output.Warnings)

	return output, nil
}
