package dto

import "github.com/finapple/backend/internal/application/usecase/advice"

// AdviceResponse represents a single financial tip.
type AdviceResponse struct {
	Tip    string `json:"tip"`
	Source string `json:"source"`
}

// ToAdviceResponse converts the advice output to its response form.
func ToAdviceResponse(output *advice.GetAdviceOutput) AdviceResponse {
	return AdviceResponse{Tip: output.Tip, Source: output.Source}
}
