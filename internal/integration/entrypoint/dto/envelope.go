package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/application/usecase/envelope"
	"github.com/finapple/backend/internal/domain/entity"
)

// EnvelopeRequest represents the request body for creating or editing an envelope.
type EnvelopeRequest struct {
	ID       string          `json:"id"`
	Name     string          `json:"name" binding:"required"`
	Balance  decimal.Decimal `json:"balance"`
	Goal     decimal.Decimal `json:"goal"`
	Currency string          `json:"currency" binding:"required"`
	Color    string          `json:"color"`
}

// ToInput converts the request to the use case input.
func (r EnvelopeRequest) ToInput() envelope.EnvelopeInput {
	return envelope.EnvelopeInput{
		Name:     r.Name,
		Balance:  r.Balance,
		Goal:     r.Goal,
		Currency: r.Currency,
		Color:    r.Color,
	}
}

// EnvelopeResponse represents an envelope in API responses.
type EnvelopeResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	Goal     decimal.Decimal `json:"goal"`
	Progress decimal.Decimal `json:"progress"`
	Currency string          `json:"currency"`
	Color    string          `json:"color"`
}

// EnvelopeDetailsResponse represents an envelope with the transfers into it.
type EnvelopeDetailsResponse struct {
	Envelope  EnvelopeResponse      `json:"envelope"`
	Transfers []TransactionResponse `json:"transfers"`
}

// ToEnvelopeResponse converts an envelope to its response form.
func ToEnvelopeResponse(e entity.Envelope) EnvelopeResponse {
	return EnvelopeResponse{
		ID:       e.ID,
		Name:     e.Name,
		Balance:  e.Balance,
		Goal:     e.Goal,
		Progress: e.Progress().Round(2),
		Currency: e.Currency,
		Color:    e.Color,
	}
}

// ToEnvelopeResponses converts envelopes to their response form.
func ToEnvelopeResponses(envelopes []entity.Envelope) []EnvelopeResponse {
	out := make([]EnvelopeResponse, 0, len(envelopes))
	for _, e := range envelopes {
		out = append(out, ToEnvelopeResponse(e))
	}
	return out
}

// ToEnvelopeDetailsResponse converts the details output to its response form.
func ToEnvelopeDetailsResponse(output *envelope.GetEnvelopeOutput) EnvelopeDetailsResponse {
	return EnvelopeDetailsResponse{
		Envelope:  ToEnvelopeResponse(output.Envelope),
		Transfers: ToTransactionResponses(output.Transfers),
	}
}
