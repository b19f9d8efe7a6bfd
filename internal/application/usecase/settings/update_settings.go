package settings

import (
	"context"
	"fmt"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
)

// UpdateSettingsInput represents a partial settings change. Nil fields are left alone.
type UpdateSettingsInput struct {
	Theme       *entity.Theme
	Language    *entity.Language
	AccentColor *string
}

// UpdateSettingsOutput represents the output of a settings change.
type UpdateSettingsOutput struct {
	Settings entity.Settings
}

// UpdateSettingsUseCase changes the presentation preferences.
type UpdateSettingsUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(snapshotRepo adapter.SnapshotRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute applies the change.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input.Theme != nil && *input.Theme != entity.ThemeLight && *input.Theme != entity.ThemeDark {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidTheme,
			"theme must be light or dark",
			domainerror.ErrInvalidTheme,
		)
	}
	if input.Language != nil && *input.Language != entity.LanguageEnglish && *input.Language != entity.LanguageUkrainian {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidLanguage,
			"language must be en or ua",
			domainerror.ErrInvalidLanguage,
		)
	}

	committed, err := uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		next := s.Settings
		if input.Theme != nil {
			next = next.WithTheme(*input.Theme)
		}
		if input.Language != nil {
			next = next.WithLanguage(*input.Language)
		}
		if input.AccentColor != nil {
			next = next.WithAccentColor(*input.AccentColor)
		}
		s.Settings = next
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return &UpdateSettingsOutput{
		Settings: committed.Settings,
	}, nil
}
