// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finapple/backend/internal/domain/entity"
)

// SnapshotRepository stores the whole tracker state as a single blob.
type SnapshotRepository interface {
	// Load returns a copy of the current snapshot. A store that was never written
	// returns an empty snapshot with default settings.
	Load(ctx context.Context) (*entity.Snapshot, error)

	// Update runs fn on a copy of the current snapshot and persists the result
	// when fn returns nil. Updates are serialized; the committed snapshot is returned.
	Update(ctx context.Context, fn func(s *entity.Snapshot) error) (*entity.Snapshot, error)

	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}
