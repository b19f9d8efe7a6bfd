package investment

import (
	"context"
	"fmt"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
)

// ListInvestmentsOutput represents the output of listing investments.
type ListInvestmentsOutput struct {
	Investments []entity.Investment
}

// ListInvestmentsUseCase returns every investment.
type ListInvestmentsUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase instance.
func NewListInvestmentsUseCase(snapshotRepo adapter.SnapshotRepository) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the listing.
func (uc *ListInvestmentsUseCase) Execute(ctx context.Context) (*ListInvestmentsOutput, error) {
	s, err := uc.snapshotRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}
	return &ListInvestmentsOutput{
		Investments: s.Investments,
	}, nil
}
