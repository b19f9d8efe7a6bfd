package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
	"github.com/finapple/backend/internal/domain/ledger"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	// ID is optional; a new id is generated when empty.
	ID string
	TransactionInput
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction entity.Transaction
	Warnings    []ledger.UnresolvedReference
}

// CreateTransactionUseCase records a transaction and applies its impact.
type CreateTransactionUseCase struct {
	snapshotRepo adapter.SnapshotRepository
	alerter      budgetAlerter
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
// emailService may be nil, in which case no budget alerts are queued.
func NewCreateTransactionUseCase(snapshotRepo adapter.SnapshotRepository, emailService adapter.EmailService) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		snapshotRepo: snapshotRepo,
		alerter:      budgetAlerter{emailService: emailService},
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}
	tx := input.toEntity(id)

	if err := validate(tx); err != nil {
		return nil, err
	}

	var (
		result ledger.Result
		before []entity.Budget
	)
	_, err := uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		if _, exists := s.FindTransaction(tx.ID); exists {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeDuplicateID,
				"transaction id already in use",
				domainerror.ErrDuplicateID,
			)
		}

		before = slices.Clone(s.Budgets)
		res, err := ledger.CreateTransaction(ledger.BooksFromSnapshot(s), tx)
		if err != nil {
			return err
		}
		res.Books.ApplyTo(s)
		result = res
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	slog.Info("Transaction created", "transaction_id", tx.ID, "type", tx.Type, "amount", tx.Amount.String())
	logUnresolved("create", result.Unresolved)
	uc.alerter.notify(ctx, before, result.Books.Budgets, tx)

	return &CreateTransactionOutput{
		Transaction: tx,
		Warnings:    result.Unresolved,
	}, nil
}
