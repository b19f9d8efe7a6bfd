// Package envelope contains savings envelope use cases.
package envelope

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
	"github.com/finapple/backend/internal/domain/valueobject"
)

// EnvelopeInput holds the editable fields of an envelope. The balance may be
// edited directly; transfers into the envelope also move it.
type EnvelopeInput struct {
	Name     string
	Balance  decimal.Decimal
	Goal     decimal.Decimal
	Currency string
	Color    string
}

func (in EnvelopeInput) toEntity(id string) (entity.Envelope, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entity.Envelope{}, domainerror.NewLedgerError(
			domainerror.ErrCodeBlankName,
			"envelope name must not be blank",
			domainerror.ErrBlankName,
		)
	}
	return entity.Envelope{
		ID:       id,
		Name:     name,
		Balance:  in.Balance,
		Goal:     in.Goal,
		Currency: valueobject.NormalizeCurrency(in.Currency),
		Color:    in.Color,
	}, nil
}

func notFound(id string) error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeEnvelopeNotFound,
		"envelope not found: "+id,
		domainerror.ErrEnvelopeNotFound,
	)
}

func indexOf(envelopes []entity.Envelope, id string) int {
	for i := range envelopes {
		if envelopes[i].ID == id {
			return i
		}
	}
	return -1
}
