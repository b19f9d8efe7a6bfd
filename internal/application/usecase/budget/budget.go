// Package budget contains budget-related use cases.
package budget

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
	"github.com/finapple/backend/internal/domain/valueobject"
)

// BudgetInput holds the user-editable fields of a budget. Spent is not editable.
type BudgetInput struct {
	Name     string
	Limit    decimal.Decimal
	Currency string
	Color    string
}

func (in BudgetInput) apply(b *entity.Budget) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeBlankName,
			"budget name must not be blank",
			domainerror.ErrBlankName,
		)
	}
	b.Name = name
	b.Limit = in.Limit
	b.Currency = valueobject.NormalizeCurrency(in.Currency)
	b.Color = in.Color
	return nil
}

func notFound(id string) error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeBudgetNotFound,
		"budget not found: "+id,
		domainerror.ErrBudgetNotFound,
	)
}

func indexOf(budgets []entity.Budget, id string) int {
	for i := range budgets {
		if budgets[i].ID == id {
			return i
		}
	}
	return -1
}
