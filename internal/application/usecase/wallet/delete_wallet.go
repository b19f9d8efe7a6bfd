package wallet

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
)

// DeleteWalletInput represents the input for wallet deletion.
type DeleteWalletInput struct {
	ID string
}

// DeleteWalletUseCase removes a wallet. Transactions that reference it are kept
// and resolve to nothing from then on.
type DeleteWalletUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewDeleteWalletUseCase creates a new DeleteWalletUseCase instance.
func NewDeleteWalletUseCase(snapshotRepo adapter.SnapshotRepository) *DeleteWalletUseCase {
	return &DeleteWalletUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the wallet deletion.
func (uc *DeleteWalletUseCase) Execute(ctx context.Context, input DeleteWalletInput) error {
	_, err := uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		i := indexOf(s.Wallets, input.ID)
		if i < 0 {
			return notFound(input.ID)
		}
		s.Wallets = slices.Delete(s.Wallets, i, i+1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete wallet: %w", err)
	}

	slog.Info("Wallet deleted", "wallet_id", input.ID)
	return nil
}
