package adapters

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/application/adapter"
)

// budgetWarningPercent is the share of a budget limit that triggers a warning tip.
var budgetWarningPercent = decimal.NewFromInt(80)

var generalTips = []string{
	"Gold is a great hedge against inflation. Check your physical assets.",
	"Emergency funds should ideally cover 3-6 months of expenses.",
	"Diversification is key: don't keep all your savings in a single currency.",
	"Review your recurring subscriptions; are you still using all of them?",
	"Small daily expenses add up. Track your coffee and snacks today.",
}

// LocalAdvisor implements adapter.Advisor with offline heuristics.
type LocalAdvisor struct {
	intn func(n int) int
}

// NewLocalAdvisor creates a new local advisor instance.
func NewLocalAdvisor() *LocalAdvisor {
	return &LocalAdvisor{intn: rand.Intn}
}

// IsAvailable always returns true.
func (a *LocalAdvisor) IsAvailable() bool {
	return true
}

// Advise picks a tip at random among the general tips and the tips that apply
// to the given figures.
func (a *LocalAdvisor) Advise(_ context.Context, request *adapter.AdviceRequest) (string, error) {
	tips := make([]string, 0, len(generalTips)+2)
	tips = append(tips, generalTips...)

	for _, b := range request.Budgets {
		if !b.Limit.IsPositive() {
			continue
		}
		used := b.Spent.Div(b.Limit).Mul(decimal.NewFromInt(100))
		if used.GreaterThanOrEqual(budgetWarningPercent) {
			tips = append(tips, fmt.Sprintf("You've spent %s%% of your '%s' budget. Try to slow down this week.",
				used.Round(0).String(), b.Name))
		}
	}

	if len(request.Envelopes) > 0 && len(request.Wallets) > 0 {
		tips = append(tips, fmt.Sprintf("Consider moving 10%% of your idle cash to your '%s' envelope.",
			request.Envelopes[0].Name))
	}

	return tips[a.intn(len(tips))], nil
}
