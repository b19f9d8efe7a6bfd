// Package seed loads the demo data set into an empty store.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
)

// SeedDemoDataOutput reports whether the demo data was written.
type SeedDemoDataOutput struct {
	Seeded bool
}

// SeedDemoDataUseCase writes the demo data set when the store has never been written.
type SeedDemoDataUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewSeedDemoDataUseCase creates a new SeedDemoDataUseCase instance.
func NewSeedDemoDataUseCase(snapshotRepo adapter.SnapshotRepository) *SeedDemoDataUseCase {
	return &SeedDemoDataUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute seeds the store. A store with any committed state is left untouched.
func (uc *SeedDemoDataUseCase) Execute(ctx context.Context) (*SeedDemoDataOutput, error) {
	output := &SeedDemoDataOutput{}

	current, err := uc.snapshotRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if current.Version > 0 {
		return output, nil
	}

	_, err = uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		if s.Version > 0 {
			return nil
		}
		demo := DemoSnapshot()
		demo.Settings = s.Settings
		*s = *demo
		output.Seeded = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed demo data: %w", err)
	}

	if output.Seeded {
		slog.Info("Demo data seeded")
	}
	return output, nil
}
