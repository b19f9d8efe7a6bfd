package envelope

import (
	"context"
	"fmt"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
)

// UpdateEnvelopeInput represents the input for envelope update.
type UpdateEnvelopeInput struct {
	ID string
	EnvelopeInput
}

// UpdateEnvelopeOutput represents the output of envelope update.
type UpdateEnvelopeOutput struct {
	Envelope entity.Envelope
}

// UpdateEnvelopeUseCase replaces the fields of an envelope.
type UpdateEnvelopeUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewUpdateEnvelopeUseCase creates a new UpdateEnvelopeUseCase instance.
func NewUpdateEnvelopeUseCase(snapshotRepo adapter.SnapshotRepository) *UpdateEnvelopeUseCase {
	return &UpdateEnvelopeUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the envelope update.
func (uc *UpdateEnvelopeUseCase) Execute(ctx context.Context, input UpdateEnvelopeInput) (*UpdateEnvelopeOutput, error) {
	e, err := input.toEntity(input.ID)
	if err != nil {
		return nil, err
	}

	_, err = uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		i := indexOf(s.Envelopes, input.ID)
		if i < 0 {
			return notFound(input.ID)
		}
		s.Envelopes[i] = e
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update envelope: %w", err)
	}

	return &UpdateEnvelopeOutput{
		Envelope: e,
	}, nil
}
