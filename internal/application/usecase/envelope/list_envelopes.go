package envelope

import (
	"context"
	"fmt"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
)

// ListEnvelopesOutput represents the output of listing envelopes.
type ListEnvelopesOutput struct {
	Envelopes []entity.Envelope
}

// ListEnvelopesUseCase returns every envelope.
type ListEnvelopesUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewListEnvelopesUseCase creates a new ListEnvelopesUseCase instance.
func NewListEnvelopesUseCase(snapshotRepo adapter.SnapshotRepository) *ListEnvelopesUseCase {
	return &ListEnvelopesUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the listing.
func (uc *ListEnvelopesUseCase) Execute(ctx context.Context) (*ListEnvelopesOutput, error) {
	s, err := uc.snapshotRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load envelopes: %w", err)
	}
	return &ListEnvelopesOutput{
		Envelopes: s.Envelopes,
	}, nil
}
