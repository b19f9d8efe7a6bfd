package settings

import (
	"context"
	"fmt"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	"github.com/finapple/backend/internal/domain/valueobject"
)

// ListAction selects whether an item is added or removed.
type ListAction int

const (
	ActionAdd ListAction = iota
	ActionRemove
)

// ChangeCategoryInput represents a category list change.
type ChangeCategoryInput struct {
	Action ListAction
	Kind   entity.CategoryKind
	Name   string
}

// ChangeCurrencyInput represents a currency list change.
type ChangeCurrencyInput struct {
	Action ListAction
	Code   string
}

// ChangeListOutput represents the settings after a list change.
type ChangeListOutput struct {
	Settings entity.Settings
}

// ChangeCategoryUseCase adds or removes a category.
type ChangeCategoryUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewChangeCategoryUseCase creates a new ChangeCategoryUseCase instance.
func NewChangeCategoryUseCase(snapshotRepo adapter.SnapshotRepository) *ChangeCategoryUseCase {
	return &ChangeCategoryUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute applies the change. Adding an existing name is a no-op.
func (uc *ChangeCategoryUseCase) Execute(ctx context.Context, input ChangeCategoryInput) (*ChangeListOutput, error) {
	committed, err := uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		var (
			next entity.Settings
			err  error
		)
		if input.Action == ActionAdd {
			next, err = s.Settings.WithCategory(input.Kind, input.Name)
		} else {
			next, err = s.Settings.WithoutCategory(input.Kind, input.Name)
		}
		if err != nil {
			return wrap(err)
		}
		s.Settings = next
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to change categories: %w", err)
	}

	return &ChangeListOutput{Settings: committed.Settings}, nil
}

// ChangeCurrencyUseCase adds or removes a currency.
type ChangeCurrencyUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewChangeCurrencyUseCase creates a new ChangeCurrencyUseCase instance.
func NewChangeCurrencyUseCase(snapshotRepo adapter.SnapshotRepository) *ChangeCurrencyUseCase {
	return &ChangeCurrencyUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute applies the change. Adding an existing code is a no-op.
func (uc *ChangeCurrencyUseCase) Execute(ctx context.Context, input ChangeCurrencyInput) (*ChangeListOutput, error) {
	code := valueobject.NormalizeCurrency(input.Code)

	committed, err := uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		if input.Action == ActionRemove {
			s.Settings = s.Settings.WithoutCurrency(code)
			return nil
		}
		next, err := s.Settings.WithCurrency(code)
		if err != nil {
			return wrap(err)
		}
		s.Settings = next
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to change currencies: %w", err)
	}

	return &ChangeListOutput{Settings: committed.Settings}, nil
}
