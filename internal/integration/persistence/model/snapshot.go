// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
)

// SnapshotRowID is the primary key of the only row of the snapshots table.
const SnapshotRowID = 1

// SnapshotModel represents the snapshots table. The whole tracker state is kept
// as a single JSON document.
type SnapshotModel struct {
	ID        int       `gorm:"primaryKey;autoIncrement:false"`
	Version   int64     `gorm:"not null;default:0"`
	Data      string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SnapshotModel.
func (SnapshotModel) TableName() string {
	return "snapshots"
}

// ToEntity decodes the stored document.
func (m *SnapshotModel) ToEntity() (*entity.Snapshot, error) {
	s := entity.NewSnapshot()
	if err := json.Unmarshal([]byte(m.Data), s); err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrSnapshotCorrupted, err)
	}
	s.Version = m.Version
	s.UpdatedAt = m.UpdatedAt
	return s, nil
}

// SnapshotModelFromEntity encodes a snapshot into its row.
func SnapshotModelFromEntity(s *entity.Snapshot) (*SnapshotModel, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return &SnapshotModel{
		ID:        SnapshotRowID,
		Version:   s.Version,
		Data:      string(data),
		UpdatedAt: s.UpdatedAt,
	}, nil
}
