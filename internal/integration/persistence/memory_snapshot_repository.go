package persistence

import (
	"context"
	"sync"
	"time"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
)

// memorySnapshotRepository keeps the snapshot in process memory. It backs use
// case and controller tests; the service itself always uses the gorm repository.
type memorySnapshotRepository struct {
	mu       sync.Mutex
	snapshot *entity.Snapshot
}

// NewMemorySnapshotRepository creates an in-memory snapshot repository. A nil
// initial snapshot starts empty.
func NewMemorySnapshotRepository(initial *entity.Snapshot) adapter.SnapshotRepository {
	if initial == nil {
		initial = entity.NewSnapshot()
	}
	return &memorySnapshotRepository{
		snapshot: initial.Clone(),
	}
}

// Load returns a copy of the current snapshot.
func (r *memorySnapshotRepository) Load(_ context.Context) (*entity.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot.Clone(), nil
}

// Update runs fn on a copy and swaps it in when fn succeeds.
func (r *memorySnapshotRepository) Update(ctx context.Context, fn func(s *entity.Snapshot) error) (*entity.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.snapshot.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.Version = r.snapshot.Version + 1
	next.UpdatedAt = time.Now().UTC()
	r.snapshot = next

	return next.Clone(), nil
}

// Ping always succeeds.
func (r *memorySnapshotRepository) Ping(_ context.Context) error {
	return nil
}
