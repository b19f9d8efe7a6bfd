// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	"github.com/finapple/backend/internal/integration/persistence/model"
)

// snapshotRepository implements the adapter.SnapshotRepository interface on top
// of a single-row table.
type snapshotRepository struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewSnapshotRepository creates a new snapshot repository instance.
func NewSnapshotRepository(db *gorm.DB) adapter.SnapshotRepository {
	return &snapshotRepository{
		db: db,
	}
}

// Load returns the stored snapshot, or an empty one when nothing was saved yet.
func (r *snapshotRepository) Load(ctx context.Context) (*entity.Snapshot, error) {
	return r.load(r.db.WithContext(ctx))
}

// Update runs fn on the current snapshot inside a database transaction.
func (r *snapshotRepository) Update(ctx context.Context, fn func(s *entity.Snapshot) error) (*entity.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var committed *entity.Snapshot
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := r.load(tx)
		if err != nil {
			return err
		}

		next := current.Clone()
		if err := fn(next); err != nil {
			return err
		}
		next.Version = current.Version + 1
		next.UpdatedAt = time.Now().UTC()

		row, err := model.SnapshotModelFromEntity(next)
		if err != nil {
			return err
		}
		if err := tx.Save(row).Error; err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}

		committed = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	return committed.Clone(), nil
}

// Ping checks the database connection.
func (r *snapshotRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *snapshotRepository) load(db *gorm.DB) (*entity.Snapshot, error) {
	var row model.SnapshotModel
	result := db.Where("id = ?", model.SnapshotRowID).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", result.Error)
	}
	return row.ToEntity()
}
