package db

import (
	"context"
	"testing"

	"github.com/finapple/backend/config"
	"github.com/finapple/backend/internal/integration/persistence/model"
)

func TestNewConnection(t *testing.T) {
	t.Run("sqlite in memory", func(t *testing.T) {
		database, err := NewConnection(&config.DatabaseConfig{
			Driver: config.DriverSQLite,
			URL:    "file::memory:",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		t.Cleanup(func() { _ = database.Close() })

		if err := database.AutoMigrate(model.AllModels()...); err != nil {
			t.Fatalf("migration failed: %v", err)
		}
		if err := database.Ping(context.Background()); err != nil {
			t.Errorf("expected ping to succeed, got %v", err)
		}
		if !database.DB().Migrator().HasTable(&model.SnapshotModel{}) {
			t.Error("expected snapshots table")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		if _, err := NewConnection(&config.DatabaseConfig{Driver: "mysql"}); err == nil {
			t.Error("expected an error for an unsupported driver")
		}
	})
}
