package portfolio

import (
	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/domain/entity"
	"github.com/finapple/backend/internal/domain/valueobject"
)

// TypeGroup is the portfolio share of one investment type.
type TypeGroup struct {
	Type string `json:"type"`
	// USDValue is the sum of the group's amounts converted to USD.
	USDValue decimal.Decimal `json:"usdValue"`
	// OriginalSum is the raw sum of amounts, regardless of currency.
	OriginalSum decimal.Decimal `json:"originalSum"`
	// DisplayCurrency is the currency of the last investment seen for the type.
	DisplayCurrency string `json:"displayCurrency"`
	Color           string `json:"color"`
	Count           int    `json:"count"`
}

// AggregateByType groups investments by type in first-seen order.
func AggregateByType(investments []entity.Investment) []TypeGroup {
	groups := make([]TypeGroup, 0)
	index := make(map[string]int)

	for _, inv := range investments {
		i, ok := index[inv.Type]
		if !ok {
			i = len(groups)
			index[inv.Type] = i
			groups = append(groups, TypeGroup{
				Type:  inv.Type,
				Color: entity.AccentColors[i%len(entity.AccentColors)],
			})
		}

		g := &groups[i]
		g.USDValue = g.USDValue.Add(valueobject.Convert(inv.Amount, inv.Currency, valueobject.BasisUSD))
		g.OriginalSum = g.OriginalSum.Add(inv.Amount)
		g.DisplayCurrency = inv.Currency
		g.Count++
	}
	return groups
}

// InvestmentsOfType returns the investments of the given type, keeping order.
func InvestmentsOfType(investments []entity.Investment, investmentType string) []entity.Investment {
	out := make([]entity.Investment, 0)
	for _, inv := range investments {
		if inv.Type == investmentType {
			out = append(out, inv)
		}
	}
	return out
}

// TotalUSD sums the USD value of every group.
func TotalUSD(groups []TypeGroup) decimal.Decimal {
	total := decimal.Zero
	for _, g := range groups {
		total = total.Add(g.USDValue)
	}
	return total
}
