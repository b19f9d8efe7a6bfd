package investment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
)

// CreateInvestmentInput represents the input for investment creation.
type CreateInvestmentInput struct {
	ID string
	InvestmentInput
}

// CreateInvestmentOutput represents the output of investment creation.
type CreateInvestmentOutput struct {
	Investment entity.Investment
}

// CreateInvestmentUseCase records a new investment. Purchases are not booked
// against a wallet.
type CreateInvestmentUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewCreateInvestmentUseCase creates a new CreateInvestmentUseCase instance.
func NewCreateInvestmentUseCase(snapshotRepo adapter.SnapshotRepository) *CreateInvestmentUseCase {
	return &CreateInvestmentUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the investment creation.
func (uc *CreateInvestmentUseCase) Execute(ctx context.Context, input CreateInvestmentInput) (*CreateInvestmentOutput, error) {
	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}

	inv, err := input.toEntity(id)
	if err != nil {
		return nil, err
	}

	_, err = uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		if indexOf(s.Investments, id) >= 0 {
			return domainerror.NewInvestmentError(
				domainerror.ErrCodeDuplicateInvestment,
				"investment id already in use",
				domainerror.ErrDuplicateID,
			)
		}
		s.Investments = append(s.Investments, inv)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	slog.Info("Investment created",
		"investment_id", inv.ID,
		"type", inv.Type,
		"payout_frequency", inv.PayoutFrequency,
		"term", inv.TermDate.String(),
	)

	return &CreateInvestmentOutput{
		Investment: inv,
	}, nil
}
