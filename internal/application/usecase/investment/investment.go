// Package investment contains investment-related use cases.
package investment

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
	"github.com/finapple/backend/internal/domain/valueobject"
)

// InvestmentInput holds the editable fields of an investment.
type InvestmentInput struct {
	Type            string
	Name            string
	Amount          decimal.Decimal
	Currency        string
	PurchaseDate    time.Time
	TermDate        entity.TermDate
	InterestRate    decimal.Decimal
	PayoutFrequency entity.PayoutFrequency
	InterestType    entity.InterestType
	Comment         string
}

func (in InvestmentInput) toEntity(id string) (entity.Investment, error) {
	name := strings.TrimSpace(in.Name)
	typ := strings.TrimSpace(in.Type)
	if name == "" || typ == "" {
		return entity.Investment{}, domainerror.NewInvestmentError(
			domainerror.ErrCodeMissingInvestmentField,
			"name and type are required",
			domainerror.ErrBlankName,
		)
	}

	if !in.PayoutFrequency.IsValid() {
		return entity.Investment{}, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidPayoutFrequency,
			"payoutFrequency must be one of semi-annual, annual, end-of-term",
			domainerror.ErrInvalidPayoutFrequency,
		)
	}

	interestType := in.InterestType
	if interestType == "" {
		interestType = entity.InterestSimple
	}
	if !interestType.IsValid() {
		return entity.Investment{}, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidInterestType,
			"interestType must be simple or compound",
			domainerror.ErrInvalidInterestType,
		)
	}

	if in.PurchaseDate.IsZero() {
		return entity.Investment{}, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidPurchaseDate,
			"purchaseDate is required",
			domainerror.ErrInvalidPurchaseDate,
		)
	}

	return entity.Investment{
		ID:              id,
		Type:            typ,
		Name:            name,
		Amount:          in.Amount,
		Currency:        valueobject.NormalizeCurrency(in.Currency),
		PurchaseDate:    in.PurchaseDate.UTC(),
		TermDate:        in.TermDate,
		InterestRate:    in.InterestRate,
		PayoutFrequency: in.PayoutFrequency,
		InterestType:    interestType,
		Comment:         in.Comment,
	}, nil
}

func notFound(id string) error {
	return domainerror.NewInvestmentError(
		domainerror.ErrCodeInvestmentNotFound,
		"investment not found: "+id,
		domainerror.ErrInvestmentNotFound,
	)
}

func indexOf(investments []entity.Investment, id string) int {
	for i := range investments {
		if investments[i].ID == id {
			return i
		}
	}
	return -1
}
