package investment

import (
	"context"
	"fmt"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
)

// UpdateInvestmentInput represents the input for investment update.
type UpdateInvestmentInput struct {
	ID string
	InvestmentInput
}

// UpdateInvestmentOutput represents the output of investment update.
type UpdateInvestmentOutput struct {
	Investment entity.Investment
}

// UpdateInvestmentUseCase replaces the fields of an investment.
type UpdateInvestmentUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewUpdateInvestmentUseCase creates a new UpdateInvestmentUseCase instance.
func NewUpdateInvestmentUseCase(snapshotRepo adapter.SnapshotRepository) *UpdateInvestmentUseCase {
	return &UpdateInvestmentUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the investment update.
func (uc *UpdateInvestmentUseCase) Execute(ctx context.Context, input UpdateInvestmentInput) (*UpdateInvestmentOutput, error) {
	inv, err := input.toEntity(input.ID)
	if err != nil {
		return nil, err
	}

	_, err = uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		i := indexOf(s.Investments, input.ID)
		if i < 0 {
			return notFound(input.ID)
		}
		s.Investments[i] = inv
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}

	return &UpdateInvestmentOutput{
		Investment: inv,
	}, nil
}
