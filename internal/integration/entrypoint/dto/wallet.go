package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/application/usecase/wallet"
	"github.com/finapple/backend/internal/domain/entity"
)

// WalletRequest represents the request body for creating or editing a wallet.
type WalletRequest struct {
	ID       string          `json:"id"`
	Name     string          `json:"name" binding:"required"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency" binding:"required"`
	Color    string          `json:"color"`
}

// ToInput converts the request to the use case input.
func (r WalletRequest) ToInput() wallet.WalletInput {
	return wallet.WalletInput{
		Name:     r.Name,
		Balance:  r.Balance,
		Currency: r.Currency,
		Color:    r.Color,
	}
}

// WalletResponse represents a wallet in API responses.
type WalletResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	Color    string          `json:"color"`
}

// WalletListResponse represents the wallet list with combined totals.
type WalletListResponse struct {
	Wallets    []WalletResponse `json:"wallets"`
	TotalLocal decimal.Decimal  `json:"total_local"`
	TotalUSD   decimal.Decimal  `json:"total_usd"`
}

// ToWalletResponse converts a wallet to its response form.
func ToWalletResponse(w entity.Wallet) WalletResponse {
	return WalletResponse{
		ID:       w.ID,
		Name:     w.Name,
		Balance:  w.Balance,
		Currency: w.Currency,
		Color:    w.Color,
	}
}

// ToWalletListResponse converts the list output to its response form.
func ToWalletListResponse(output *wallet.ListWalletsOutput) WalletListResponse {
	wallets := make([]WalletResponse, 0, len(output.Wallets))
	for _, w := range output.Wallets {
		wallets = append(wallets, ToWalletResponse(w))
	}
	return WalletListResponse{
		Wallets:    wallets,
		TotalLocal: output.TotalLocal.Round(2),
		TotalUSD:   output.TotalUSD.Round(2),
	}
}
