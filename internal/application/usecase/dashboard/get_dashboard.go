// Package dashboard contains the home screen summary use case.
package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	"github.com/finapple/backend/internal/domain/ledger"
	"github.com/finapple/backend/internal/domain/portfolio"
	"github.com/finapple/backend/internal/domain/valueobject"
)

// RecentTransactionCount is the number of transactions shown on the home screen.
const RecentTransactionCount = 10

// GetDashboardOutput represents the home screen summary.
type GetDashboardOutput struct {
	TotalLocal         decimal.Decimal
	TotalUSD           decimal.Decimal
	USDHoldings        decimal.Decimal
	EURHoldings        decimal.Decimal
	InvestmentsUSD     decimal.Decimal
	ExceededBudgets    []entity.Budget
	RecentTransactions []entity.Transaction
	UpcomingPayouts    []portfolio.PayoutEvent
}

// GetDashboardUseCase builds the home screen summary.
type GetDashboardUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(snapshotRepo adapter.SnapshotRepository) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute builds the summary.
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*GetDashboardOutput, error) {
	s, err := uc.snapshotRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	exceeded := make([]entity.Budget, 0)
	for _, b := range s.Budgets {
		if b.IsExceeded() {
			exceeded = append(exceeded, b)
		}
	}

	return &GetDashboardOutput{
		TotalLocal:         valueobject.TotalBalance(s.Wallets, valueobject.BasisLocal),
		TotalUSD:           valueobject.TotalBalance(s.Wallets, valueobject.BasisUSD),
		USDHoldings:        valueobject.HoldingsIn(s.Wallets, valueobject.CurrencyUSD),
		EURHoldings:        valueobject.HoldingsIn(s.Wallets, valueobject.CurrencyEUR),
		InvestmentsUSD:     portfolio.TotalUSD(portfolio.AggregateByType(s.Investments)),
		ExceededBudgets:    exceeded,
		RecentTransactions: ledger.Recent(s.Transactions, RecentTransactionCount),
		UpcomingPayouts:    portfolio.UpcomingPayouts(s.Investments, portfolio.DefaultPayoutCalendarSize),
	}, nil
}
