// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finapple/backend/internal/domain/entity"
	"github.com/finapple/backend/internal/domain/ledger"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// WarningResponse describes a transaction reference that matched nothing.
type WarningResponse struct {
	TransactionID string `json:"transaction_id"`
	Kind          string `json:"kind"`
	Role          string `json:"role"`
	ID            string `json:"id"`
}

// ToWarningResponses converts unresolved references to their response form.
func ToWarningResponses(refs []ledger.UnresolvedReference) []WarningResponse {
	out := make([]WarningResponse, 0, len(refs))
	for _, ref := range refs {
		out = append(out, WarningResponse{
			TransactionID: ref.TransactionID,
			Kind:          string(ref.Kind),
			Role:          string(ref.Role),
			ID:            ref.ID,
		})
	}
	return out
}

// ParseDate parses a YYYY-MM-DD day. An empty string yields today.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	return time.Parse(entity.DateLayout, s)
}

// FormatDate formats a day as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(entity.DateLayout)
}
