package budget

import (
	"context"
	"fmt"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
)

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []entity.Budget
}

// ListBudgetsUseCase returns every budget.
type ListBudgetsUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(snapshotRepo adapter.SnapshotRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context) (*ListBudgetsOutput, error) {
	s, err := uc.snapshotRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}
	return &ListBudgetsOutput{
		Budgets: s.Budgets,
	}, nil
}
