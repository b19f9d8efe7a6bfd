package wallet

import (
	"context"
	"fmt"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
)

// UpdateWalletInput represents the input for wallet update.
type UpdateWalletInput struct {
	ID string
	WalletInput
}

// UpdateWalletOutput represents the output of wallet update.
type UpdateWalletOutput struct {
	Wallet entity.Wallet
}

// UpdateWalletUseCase replaces the fields of a wallet. The balance is set
// directly; no transaction is recorded.
type UpdateWalletUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewUpdateWalletUseCase creates a new UpdateWalletUseCase instance.
func NewUpdateWalletUseCase(snapshotRepo adapter.SnapshotRepository) *UpdateWalletUseCase {
	return &UpdateWalletUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the wallet update.
func (uc *UpdateWalletUseCase) Execute(ctx context.Context, input UpdateWalletInput) (*UpdateWalletOutput, error) {
	w, err := input.toEntity(input.ID)
	if err != nil {
		return nil, err
	}

	_, err = uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		i := indexOf(s.Wallets, input.ID)
		if i < 0 {
			return notFound(input.ID)
		}
		s.Wallets[i] = w
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}

	return &UpdateWalletOutput{
		Wallet: w,
	}, nil
}
