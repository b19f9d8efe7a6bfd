package investment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	"github.com/finapple/backend/internal/domain/portfolio"
)

// GetPortfolioOutput represents the portfolio breakdown by type.
type GetPortfolioOutput struct {
	Groups   []portfolio.TypeGroup
	TotalUSD decimal.Decimal
}

// GetPortfolioUseCase aggregates investments by type.
type GetPortfolioUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewGetPortfolioUseCase creates a new GetPortfolioUseCase instance.
func NewGetPortfolioUseCase(snapshotRepo adapter.SnapshotRepository) *GetPortfolioUseCase {
	return &GetPortfolioUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the aggregation.
func (uc *GetPortfolioUseCase) Execute(ctx context.Context) (*GetPortfolioOutput, error) {
	s, err := uc.snapshotRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}

	groups := portfolio.AggregateByType(s.Investments)
	return &GetPortfolioOutput{
		Groups:   groups,
		TotalUSD: portfolio.TotalUSD(groups),
	}, nil
}

// GetTypeDetailsInput represents the input for a single investment type.
type GetTypeDetailsInput struct {
	Type string
}

// GetTypeDetailsOutput represents the investments of one type with their totals.
type GetTypeDetailsOutput struct {
	Group       portfolio.TypeGroup
	Investments []entity.Investment
	Payouts     []portfolio.PayoutEvent
}

// GetTypeDetailsUseCase returns the holdings of one investment type.
type GetTypeDetailsUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewGetTypeDetailsUseCase creates a new GetTypeDetailsUseCase instance.
func NewGetTypeDetailsUseCase(snapshotRepo adapter.SnapshotRepository) *GetTypeDetailsUseCase {
	return &GetTypeDetailsUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the lookup. An unknown type yields an empty group.
func (uc *GetTypeDetailsUseCase) Execute(ctx context.Context, input GetTypeDetailsInput) (*GetTypeDetailsOutput, error) {
	s, err := uc.snapshotRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}

	investments := portfolio.InvestmentsOfType(s.Investments, input.Type)
	output := &GetTypeDetailsOutput{
		Group:       portfolio.TypeGroup{Type: input.Type},
		Investments: investments,
		Payouts:     portfolio.ProjectPayouts(investments),
	}
	for _, g := range portfolio.AggregateByType(s.Investments) {
		if g.Type == input.Type {
			output.Group = g
		}
	}
	return output, nil
}
