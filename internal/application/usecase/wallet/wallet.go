// Package wallet contains wallet-related use cases.
package wallet

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
	"github.com/finapple/backend/internal/domain/valueobject"
)

// WalletInput holds the editable fields of a wallet.
type WalletInput struct {
	Name     string
	Balance  decimal.Decimal
	Currency string
	Color    string
}

func (in WalletInput) toEntity(id string) (entity.Wallet, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entity.Wallet{}, domainerror.NewLedgerError(
			domainerror.ErrCodeBlankName,
			"wallet name must not be blank",
			domainerror.ErrBlankName,
		)
	}
	return entity.Wallet{
		ID:       id,
		Name:     name,
		Balance:  in.Balance,
		Currency: valueobject.NormalizeCurrency(in.Currency),
		Color:    in.Color,
	}, nil
}

func notFound(id string) error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeWalletNotFound,
		"wallet not found: "+id,
		domainerror.ErrWalletNotFound,
	)
}

func indexOf(wallets []entity.Wallet, id string) int {
	for i := range wallets {
		if wallets[i].ID == id {
			return i
		}
	}
	return -1
}
