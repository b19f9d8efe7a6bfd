package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	ID string
	BudgetInput
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(snapshotRepo adapter.SnapshotRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the budget creation. A new budget starts with nothing spent.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	b := entity.Budget{ID: input.ID, Spent: decimal.Zero}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if err := input.apply(&b); err != nil {
		return nil, err
	}

	_, err := uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		if indexOf(s.Budgets, b.ID) >= 0 {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeDuplicateID,
				"budget id already in use",
				domainerror.ErrDuplicateID,
			)
		}
		s.Budgets = append(s.Budgets, b)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	slog.Info("Budget created", "budget_id", b.ID, "limit", b.Limit.String())

	return &CreateBudgetOutput{
		Budget: b,
	}, nil
}
