package settings

import (
	"context"
	"fmt"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
)

// GetSettingsOutput represents the current settings.
type GetSettingsOutput struct {
	Settings     entity.Settings
	AccentColors []string
}

// GetSettingsUseCase returns the settings record.
type GetSettingsUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(snapshotRepo adapter.SnapshotRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute returns the settings.
func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*GetSettingsOutput, error) {
	s, err := uc.snapshotRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &GetSettingsOutput{
		Settings:     s.Settings,
		AccentColors: entity.AccentColors,
	}, nil
}
