package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/application/usecase/investment"
	"github.com/finapple/backend/internal/domain/entity"
	"github.com/finapple/backend/internal/domain/portfolio"
)

// InvestmentRequest represents the request body for creating or editing an investment.
type InvestmentRequest struct {
	ID              string          `json:"id"`
	Type            string          `json:"type" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency" binding:"required"`
	PurchaseDate    string          `json:"purchase_date" binding:"required"`
	TermDate        string          `json:"term_date"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	PayoutFrequency string          `json:"payout_frequency" binding:"required"`
	InterestType    string          `json:"interest_type"`
	Comment         string          `json:"comment"`
}

// ToInput converts the request to the use case input. An empty term date is perpetual.
func (r InvestmentRequest) ToInput() (investment.InvestmentInput, error) {
	purchase, err := ParseDate(r.PurchaseDate)
	if err != nil {
		return investment.InvestmentInput{}, fmt.Errorf("invalid purchase date %q: %w", r.PurchaseDate, err)
	}
	term, err := entity.ParseTermDate(r.TermDate)
	if err != nil {
		return investment.InvestmentInput{}, err
	}
	return investment.InvestmentInput{
		Type:            r.Type,
		Name:            r.Name,
		Amount:          r.Amount,
		Currency:        r.Currency,
		PurchaseDate:    purchase,
		TermDate:        term,
		InterestRate:    r.InterestRate,
		PayoutFrequency: entity.PayoutFrequency(r.PayoutFrequency),
		InterestType:    entity.InterestType(r.InterestType),
		Comment:         r.Comment,
	}, nil
}

// InvestmentResponse represents an investment in API responses.
type InvestmentResponse struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	PurchaseDate    string          `json:"purchase_date"`
	TermDate        string          `json:"term_date"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	PayoutFrequency string          `json:"payout_frequency"`
	InterestType    string          `json:"interest_type"`
	Comment         string          `json:"comment,omitempty"`
}

// PayoutEventResponse represents a projected payout.
type PayoutEventResponse struct {
	InvestmentID string          `json:"investment_id"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Name         string          `json:"name"`
	Currency     string          `json:"currency"`
}

// PayoutListResponse represents the payout calendar.
type PayoutListResponse struct {
	Payouts []PayoutEventResponse `json:"payouts"`
}

// TypeGroupResponse represents the holdings of one investment type.
type TypeGroupResponse struct {
	Type            string          `json:"type"`
	USDValue        decimal.Decimal `json:"usd_value"`
	OriginalSum     decimal.Decimal `json:"original_sum"`
	DisplayCurrency string          `json:"display_currency"`
	Color           string          `json:"color"`
	Count           int             `json:"count"`
}

// PortfolioResponse represents the portfolio breakdown.
type PortfolioResponse struct {
	Groups   []TypeGroupResponse `json:"groups"`
	TotalUSD decimal.Decimal     `json:"total_usd"`
}

// TypeDetailsResponse represents the holdings and payouts of one type.
type TypeDetailsResponse struct {
	Group       TypeGroupResponse     `json:"group"`
	Investments []InvestmentResponse  `json:"investments"`
	Payouts     []PayoutEventResponse `json:"payouts"`
}

// ToInvestmentResponse converts an investment to its response form.
func ToInvestmentResponse(inv entity.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:              inv.ID,
		Type:            inv.Type,
		Name:            inv.Name,
		Amount:          inv.Amount,
		Currency:        inv.Currency,
		PurchaseDate:    FormatDate(inv.PurchaseDate),
		TermDate:        inv.TermDate.String(),
		InterestRate:    inv.InterestRate,
		PayoutFrequency: string(inv.PayoutFrequency),
		InterestType:    string(inv.InterestType),
		Comment:         inv.Comment,
	}
}

// ToInvestmentResponses converts investments to their response form.
func ToInvestmentResponses(invs []entity.Investment) []InvestmentResponse {
	out := make([]InvestmentResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, ToInvestmentResponse(inv))
	}
	return out
}

// ToPayoutEventResponses converts payout events to their response form.
func ToPayoutEventResponses(events []portfolio.PayoutEvent) []PayoutEventResponse {
	out := make([]PayoutEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, PayoutEventResponse{
			InvestmentID: e.InvestmentID,
			Date:         e.ISODate(),
			Amount:       e.Amount,
			Name:         e.Name,
			Currency:     e.Currency,
		})
	}
	return out
}

// ToTypeGroupResponse converts a type group to its response form.
func ToTypeGroupResponse(g portfolio.TypeGroup) TypeGroupResponse {
	return TypeGroupResponse{
		Type:            g.Type,
		USDValue:        g.USDValue.Round(2),
		OriginalSum:     g.OriginalSum,
		DisplayCurrency: g.DisplayCurrency,
		Color:           g.Color,
		Count:           g.Count,
	}
}

// ToPortfolioResponse converts the portfolio output to its response form.
func ToPortfolioResponse(output *investment.GetPortfolioOutput) PortfolioResponse {
	groups := make([]TypeGroupResponse, 0, len(output.Groups))
	for _, g := range output.Groups {
		groups = append(groups, ToTypeGroupResponse(g))
	}
	return PortfolioResponse{
		Groups:   groups,
		TotalUSD: output.TotalUSD.Round(2),
	}
}

// ToTypeDetailsResponse converts the type details output to its response form.
func ToTypeDetailsResponse(output *investment.GetTypeDetailsOutput) TypeDetailsResponse {
	return TypeDetailsResponse{
		Group:       ToTypeGroupResponse(output.Group),
		Investments: ToInvestmentResponses(output.Investments),
		Payouts:     ToPayoutEventResponses(output.Payouts),
	}
}
