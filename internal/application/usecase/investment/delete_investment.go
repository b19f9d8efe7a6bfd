package investment

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
)

// DeleteInvestmentInput represents the input for investment deletion.
type DeleteInvestmentInput struct {
	ID string
}

// DeleteInvestmentUseCase removes an investment.
type DeleteInvestmentUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewDeleteInvestmentUseCase creates a new DeleteInvestmentUseCase instance.
func NewDeleteInvestmentUseCase(snapshotRepo adapter.SnapshotRepository) *DeleteInvestmentUseCase {
	return &DeleteInvestmentUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the investment deletion.
func (uc *DeleteInvestmentUseCase) Execute(ctx context.Context, input DeleteInvestmentInput) error {
	_, err := uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		i := indexOf(s.Investments, input.ID)
		if i < 0 {
			return notFound(input.ID)
		}
		s.Investments = slices.Delete(s.Investments, i, i+1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}

	slog.Info("Investment deleted", "investment_id", input.ID)
	return nil
}
