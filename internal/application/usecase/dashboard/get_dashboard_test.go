package dashboard

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/application/usecase/seed"
	"github.com/finapple/backend/internal/integration/persistence"
)

func TestGetDashboardUseCase(t *testing.T) {
	ctx := context.Background()
	demo := seed.DemoSnapshot()
	demo.Budgets[1].Spent = decimal.NewFromInt(3100)
	repo := persistence.NewMemorySnapshotRepository(demo)

	out, err := NewGetDashboardUseCase(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 50000 + 1200 * 41 + 2500
	if !out.TotalLocal.Equal(decimal.NewFromInt(101700)) {
		t.Errorf("expected local total 101700, got %s", out.TotalLocal)
	}
	if !out.USDHoldings.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected USD holdings 1200, got %s", out.USDHoldings)
	}
	if !out.EURHoldings.IsZero() {
		t.Errorf("expected no EUR holdings, got %s", out.EURHoldings)
	}
	if len(out.ExceededBudgets) != 1 || out.ExceededBudgets[0].ID != "b2" {
		t.Errorf("expected b2 exceeded, got %+v", out.ExceededBudgets)
	}
	if len(out.RecentTransactions) != 6 || out.RecentTransactions[0].ID != "t1" {
		t.Errorf("unexpected recent transactions: %d", len(out.RecentTransactions))
	}
	if len(out.UpcomingPayouts) != 2 || out.UpcomingPayouts[0].ISODate() != "2024-07-15" {
		t.Errorf("unexpected payouts: %+v", out.UpcomingPayouts)
	}
	if !out.InvestmentsUSD.GreaterThan(decimal.NewFromInt(3450)) {
		t.Errorf("expected investments above 3450 USD, got %s", out.InvestmentsUSD)
	}
}
