package budget

import (
	"context"
	"fmt"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
)

// UpdateBudgetInput represents the input for budget update.
type UpdateBudgetInput struct {
	ID string
	BudgetInput
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget entity.Budget
}

// UpdateBudgetUseCase replaces the editable fields of a budget and keeps its spent amount.
type UpdateBudgetUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(snapshotRepo adapter.SnapshotRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	var updated entity.Budget

	_, err := uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		i := indexOf(s.Budgets, input.ID)
		if i < 0 {
			return notFound(input.ID)
		}
		b := s.Budgets[i]
		if err := input.apply(&b); err != nil {
			return err
		}
		s.Budgets[i] = b
		updated = b
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{
		Budget: updated,
	}, nil
}
