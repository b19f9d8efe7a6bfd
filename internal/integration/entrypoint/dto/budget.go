package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/application/usecase/budget"
	"github.com/finapple/backend/internal/domain/entity"
)

// BudgetRequest represents the request body for creating or editing a budget.
// Spent is not accepted; it is maintained by transactions.
type BudgetRequest struct {
	ID       string          `json:"id"`
	Name     string          `json:"name" binding:"required"`
	Limit    decimal.Decimal `json:"limit"`
	Currency string          `json:"currency" binding:"required"`
	Color    string          `json:"color"`
}

// ToInput converts the request to the use case input.
func (r BudgetRequest) ToInput() budget.BudgetInput {
	return budget.BudgetInput{
		Name:     r.Name,
		Limit:    r.Limit,
		Currency: r.Currency,
		Color:    r.Color,
	}
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Limit            decimal.Decimal `json:"limit"`
	Spent            decimal.Decimal `json:"spent"`
	Remaining        decimal.Decimal `json:"remaining"`
	RemainingPercent decimal.Decimal `json:"remaining_percent"`
	Exceeded         bool            `json:"exceeded"`
	Currency         string          `json:"currency"`
	Color            string          `json:"color"`
}

// ToBudgetResponse converts a budget to its response form.
func ToBudgetResponse(b entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:               b.ID,
		Name:             b.Name,
		Limit:            b.Limit,
		Spent:            b.Spent,
		Remaining:        b.Remaining(),
		RemainingPercent: b.RemainingPercent().Round(2),
		Exceeded:         b.IsExceeded(),
		Currency:         b.Currency,
		Color:            b.Color,
	}
}

// ToBudgetResponses converts budgets to their response form.
func ToBudgetResponses(budgets []entity.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, ToBudgetResponse(b))
	}
	return out
}
