// Package error defines domain-specific errors for the finapple backend.
package error

import "errors"

// Snapshot persistence errors.
var (
	// ErrSnapshotNotFound is returned when no snapshot has been stored yet.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrSnapshotCorrupted is returned when the stored blob cannot be decoded.
	ErrSnapshotCorrupted = errors.New("snapshot is corrupted")
)
