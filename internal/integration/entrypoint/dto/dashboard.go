package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/application/usecase/dashboard"
)

// DashboardResponse represents the home screen summary.
type DashboardResponse struct {
	TotalLocal         decimal.Decimal       `json:"total_local"`
	TotalUSD           decimal.Decimal       `json:"total_usd"`
	USDHoldings        decimal.Decimal       `json:"usd_holdings"`
	EURHoldings        decimal.Decimal       `json:"eur_holdings"`
	InvestmentsUSD     decimal.Decimal       `json:"investments_usd"`
	ExceededBudgets    []BudgetResponse      `json:"exceeded_budgets"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
	UpcomingPayouts    []PayoutEventResponse `json:"upcoming_payouts"`
}

// ToDashboardResponse converts the dashboard output to its response form.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	return DashboardResponse{
		TotalLocal:         output.TotalLocal.Round(2),
		TotalUSD:           output.TotalUSD.Round(2),
		USDHoldings:        output.USDHoldings.Round(2),
		EURHoldings:        output.EURHoldings.Round(2),
		InvestmentsUSD:     output.InvestmentsUSD.Round(2),
		ExceededBudgets:    ToBudgetResponses(output.ExceededBudgets),
		RecentTransactions: ToTransactionResponses(output.RecentTransactions),
		UpcomingPayouts:    ToPayoutEventResponses(output.UpcomingPayouts),
	}
}
