package envelope

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
)

// DeleteEnvelopeInput represents the input for envelope deletion.
type DeleteEnvelopeInput struct {
	ID string
}

// DeleteEnvelopeUseCase removes an envelope.
type DeleteEnvelopeUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewDeleteEnvelopeUseCase creates a new DeleteEnvelopeUseCase instance.
func NewDeleteEnvelopeUseCase(snapshotRepo adapter.SnapshotRepository) *DeleteEnvelopeUseCase {
	return &DeleteEnvelopeUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the envelope deletion.
func (uc *DeleteEnvelopeUseCase) Execute(ctx context.Context, input DeleteEnvelopeInput) error {
	_, err := uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		i := indexOf(s.Envelopes, input.ID)
		if i < 0 {
			return notFound(input.ID)
		}
		s.Envelopes = slices.Delete(s.Envelopes, i, i+1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete envelope: %w", err)
	}

	slog.Info("Envelope deleted", "envelope_id", input.ID)
	return nil
}
