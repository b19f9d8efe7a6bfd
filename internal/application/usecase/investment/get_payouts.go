package investment

import (
	"context"
	"fmt"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/portfolio"
)

// GetPayoutsInput represents the input for the payout calendar.
type GetPayoutsInput struct {
	// Limit caps the calendar; zero uses the default calendar size.
	Limit int
	// All returns the full series and ignores Limit.
	All bool
}

// GetPayoutsOutput represents the projected payout events.
type GetPayoutsOutput struct {
	Events []portfolio.PayoutEvent
}

// GetPayoutsUseCase projects interest payouts for every investment.
type GetPayoutsUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewGetPayoutsUseCase creates a new GetPayoutsUseCase instance.
func NewGetPayoutsUseCase(snapshotRepo adapter.SnapshotRepository) *GetPayoutsUseCase {
	return &GetPayoutsUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the projection.
func (uc *GetPayoutsUseCase) Execute(ctx context.Context, input GetPayoutsInput) (*GetPayoutsOutput, error) {
	s, err := uc.snapshotRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}

	if input.All {
		return &GetPayoutsOutput{Events: portfolio.ProjectPayouts(s.Investments)}, nil
	}
	return &GetPayoutsOutput{Events: portfolio.UpcomingPayouts(s.Investments, input.Limit)}, nil
}
