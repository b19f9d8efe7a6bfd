package wallet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
)

// CreateWalletInput represents the input for wallet creation.
type CreateWalletInput struct {
	ID string
	WalletInput
}

// CreateWalletOutput represents the output of wallet creation.
type CreateWalletOutput struct {
	Wallet entity.Wallet
}

// CreateWalletUseCase handles wallet creation logic.
type CreateWalletUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewCreateWalletUseCase creates a new CreateWalletUseCase instance.
func NewCreateWalletUseCase(snapshotRepo adapter.SnapshotRepository) *CreateWalletUseCase {
	return &CreateWalletUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the wallet creation.
func (uc *CreateWalletUseCase) Execute(ctx context.Context, input CreateWalletInput) (*CreateWalletOutput, error) {
	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}

	w, err := input.toEntity(id)
	if err != nil {
		return nil, err
	}

	_, err = uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		// Transfers resolve wallets before envelopes, so the id must be unique across both.
		_, isEnvelope := s.FindEnvelope(id)
		if indexOf(s.Wallets, id) >= 0 || isEnvelope {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeDuplicateID,
				"wallet id already in use",
				domainerror.ErrDuplicateID,
			)
		}
		s.Wallets = append(s.Wallets, w)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	slog.Info("Wallet created", "wallet_id", w.ID, "currency", w.Currency)

	return &CreateWalletOutput{
		Wallet: w,
	}, nil
}
