package budget

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
)

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	ID string
}

// DeleteBudgetUseCase removes a budget.
type DeleteBudgetUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(snapshotRepo adapter.SnapshotRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the budget deletion.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	_, err := uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		i := indexOf(s.Budgets, input.ID)
		if i < 0 {
			return notFound(input.ID)
		}
		s.Budgets = slices.Delete(s.Budgets, i, i+1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	slog.Info("Budget deleted", "budget_id", input.ID)
	return nil
}
