package transaction

import (
	"context"
	"fmt"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
	"github.com/finapple/backend/internal/domain/ledger"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	// Type filters the log; empty returns every transaction.
	Type entity.TransactionType
	// Limit caps the result; zero means no cap.
	Limit int
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []entity.Transaction
	Total        int
}

// ListTransactionsUseCase returns the transaction log, newest first.
type ListTransactionsUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(snapshotRepo adapter.SnapshotRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Type != "" && !input.Type.IsValid() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be one of INCOME, EXPENSE, TRANSFER, INVESTMENT",
			domainerror.ErrInvalidTransactionType,
		)
	}

	s, err := uc.snapshotRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	txs := ledger.FilterByType(s.Transactions, input.Type)
	total := len(txs)
	if input.Limit > 0 {
		txs = ledger.Recent(txs, input.Limit)
	}

	return &ListTransactionsOutput{
		Transactions: txs,
		Total:        total,
	}, nil
}
