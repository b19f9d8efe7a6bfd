package dto

import (
	"github.com/finapple/backend/internal/domain/entity"
)

// UpdateSettingsRequest represents a partial settings change. Omitted fields are kept.
type UpdateSettingsRequest struct {
	Theme       *string `json:"theme"`
	Language    *string `json:"language"`
	AccentColor *string `json:"accent_color"`
}

// CategoryRequest represents the request body for adding a category.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CurrencyRequest represents the request body for adding a currency.
type CurrencyRequest struct {
	Code string `json:"code" binding:"required"`
}

// CategoriesResponse holds the three category lists.
type CategoriesResponse struct {
	Income     []string `json:"income"`
	Expense    []string `json:"expense"`
	Investment []string `json:"investment"`
}

// SettingsResponse represents the settings record in API responses.
type SettingsResponse struct {
	Theme        string             `json:"theme"`
	Language     string             `json:"language"`
	AccentColor  string             `json:"accent_color"`
	AccentColors []string           `json:"accent_colors"`
	Currencies   []string           `json:"currencies"`
	Categories   CategoriesResponse `json:"categories"`
}

// ToSettingsResponse converts settings to their response form.
func ToSettingsResponse(s entity.Settings) SettingsResponse {
	return SettingsResponse{
		Theme:        string(s.Theme),
		Language:     string(s.Language),
		AccentColor:  s.AccentColor,
		AccentColors: entity.AccentColors,
		Currencies:   s.Currencies,
		Categories: CategoriesResponse{
			Income:     s.Categories.Income,
			Expense:    s.Categories.Expense,
			Investment: s.Categories.Investment,
		},
	}
}
