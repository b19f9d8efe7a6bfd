package wallet

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	"github.com/finapple/backend/internal/domain/valueobject"
)

// ListWalletsOutput represents the output of listing wallets.
type ListWalletsOutput struct {
	Wallets []entity.Wallet
	// TotalLocal is the sum of all balances in the local currency.
	TotalLocal decimal.Decimal
	// TotalUSD is the sum of all balances in US dollars.
	TotalUSD decimal.Decimal
}

// ListWalletsUseCase returns every wallet with the combined totals.
type ListWalletsUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewListWalletsUseCase creates a new ListWalletsUseCase instance.
func NewListWalletsUseCase(snapshotRepo adapter.SnapshotRepository) *ListWalletsUseCase {
	return &ListWalletsUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the listing.
func (uc *ListWalletsUseCase) Execute(ctx context.Context) (*ListWalletsOutput, error) {
	s, err := uc.snapshotRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallets: %w", err)
	}

	return &ListWalletsOutput{
		Wallets:    s.Wallets,
		TotalLocal: valueobject.TotalBalance(s.Wallets, valueobject.BasisLocal),
		TotalUSD:   valueobject.TotalBalance(s.Wallets, valueobject.BasisUSD),
	}, nil
}
