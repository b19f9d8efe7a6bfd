package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
	"github.com/finapple/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestSnapshotRepository(t *testing.T) {
	ctx := context.Background()
	repos := map[string]func(t *testing.T) adapter.SnapshotRepository{
		"gorm": func(t *testing.T) adapter.SnapshotRepository {
			return NewSnapshotRepository(openTestDB(t))
		},
		"memory": func(t *testing.T) adapter.SnapshotRepository {
			return NewMemorySnapshotRepository(nil)
		},
	}

	for name, newRepo := range repos {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)

			t.Run("empty store loads default snapshot", func(t *testing.T) {
				s, err := repo.Load(ctx)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if s.Version != 0 || len(s.Wallets) != 0 {
					t.Errorf("expected empty snapshot, got version %d with %d wallets", s.Version, len(s.Wallets))
				}
				if len(s.Settings.Currencies) == 0 {
					t.Error("expected default currencies")
				}
			})

			t.Run("update persists and bumps version", func(t *testing.T) {
				committed, err := repo.Update(ctx, func(s *entity.Snapshot) error {
					s.Wallets = append(s.Wallets, entity.Wallet{ID: "1", Name: "Card", Balance: decimal.RequireFromString("50000.25"), Currency: "UAH"})
					s.Investments = append(s.Investments, entity.Investment{ID: "inv", TermDate: entity.Perpetual(), PurchaseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)})
					return nil
				})
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if committed.Version != 1 {
					t.Errorf("expected version 1, got %d", committed.Version)
				}

				loaded, err := repo.Load(ctx)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(loaded.Wallets) != 1 || !loaded.Wallets[0].Balance.Equal(decimal.RequireFromString("50000.25")) {
					t.Errorf("unexpected wallets after reload: %+v", loaded.Wallets)
				}
				if !loaded.Investments[0].TermDate.Perpetual {
					t.Error("expected perpetual term date to survive a round trip")
				}
			})

			t.Run("failed update is not committed", func(t *testing.T) {
				boom := errors.New("boom")
				_, err := repo.Update(ctx, func(s *entity.Snapshot) error {
					s.Wallets = nil
					return boom
				})
				if !errors.Is(err, boom) {
					t.Fatalf("expected boom, got %v", err)
				}

				loaded, _ := repo.Load(ctx)
				if len(loaded.Wallets) != 1 || loaded.Version != 1 {
					t.Errorf("expected previous state to remain, got version %d with %d wallets", loaded.Version, len(loaded.Wallets))
				}
			})

			t.Run("loaded snapshot is a copy", func(t *testing.T) {
				loaded, _ := repo.Load(ctx)
				loaded.Wallets[0].Name = "mutated"

				again, _ := repo.Load(ctx)
				if again.Wallets[0].Name != "Card" {
					t.Error("expected store to be unaffected by caller mutation")
				}
			})

			t.Run("concurrent updates are serialized", func(t *testing.T) {
				var wg sync.WaitGroup
				for i := 0; i < 10; i++ {
					wg.Add(1)
					go func() {
						defer wg.Done()
						_, _ = repo.Update(ctx, func(s *entity.Snapshot) error {
							s.Wallets[0].Balance = s.Wallets[0].Balance.Add(decimal.NewFromInt(1))
							return nil
						})
					}()
				}
				wg.Wait()

				loaded, _ := repo.Load(ctx)
				if !loaded.Wallets[0].Balance.Equal(decimal.RequireFromString("50010.25")) {
					t.Errorf("expected 10 increments to apply, got %s", loaded.Wallets[0].Balance)
				}
			})
		})
	}
}

func TestSnapshotModel_Corrupted(t *testing.T) {
	row := &model.SnapshotModel{ID: model.SnapshotRowID, Data: "{not json"}
	if _, err := row.ToEntity(); !errors.Is(err, domainerror.ErrSnapshotCorrupted) {
		t.Errorf("expected ErrSnapshotCorrupted, got %v", err)
	}
}

func TestEmailQueueRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEmailQueueRepository(openTestDB(t))

	job := entity.NewEmailJob(entity.TemplateBudgetAlert, "owner@example.com", "Owner", "Budget exceeded", map[string]interface{}{
		"BudgetName": "Food",
	})
	if err := repo.Create(ctx, job); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("pending job is returned", func(t *testing.T) {
		jobs, err := repo.GetPendingJobs(ctx, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 1 || jobs[0].ID != job.ID {
			t.Fatalf("expected the queued job, got %+v", jobs)
		}
		if jobs[0].TemplateData["BudgetName"] != "Food" {
			t.Errorf("expected template data to round trip, got %+v", jobs[0].TemplateData)
		}
	})

	t.Run("sent job leaves the pending list", func(t *testing.T) {
		job.MarkSent("provider-1")
		if err := repo.Update(ctx, job); err != nil {
			t.Fatalf("update: %v", err)
		}
		jobs, _ := repo.GetPendingJobs(ctx, 10)
		if len(jobs) != 0 {
			t.Errorf("expected no pending jobs, got %d", len(jobs))
		}

		stored, err := repo.GetByID(ctx, job.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if stored.ProviderID != "provider-1" || stored.Status != entity.EmailStatusSent {
			t.Errorf("unexpected stored job: %+v", stored)
		}
	})

	t.Run("recipient lookup", func(t *testing.T) {
		jobs, err := repo.GetByRecipient(ctx, "owner@example.com")
		if err != nil || len(jobs) != 1 {
			t.Errorf("expected 1 job, got %d (err %v)", len(jobs), err)
		}
	})

	t.Run("old sent jobs are purged", func(t *testing.T) {
		past := time.Now().UTC().AddDate(0, 0, -40)
		job.ProcessedAt = &past
		_ = repo.Update(ctx, job)

		n, err := repo.DeleteOldSentJobs(ctx, 30)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 1 {
			t.Errorf("expected 1 purged job, got %d", n)
		}
		if _, err := repo.GetByID(ctx, job.ID); !errors.Is(err, domainerror.ErrEmailJobNotFound) {
			t.Errorf("expected ErrEmailJobNotFound, got %v", err)
		}
	})
}

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository(openTestDB(t))

	if err := repo.SaveRefreshToken(ctx, "tok", "owner", time.Now().UTC().Add(time.Hour)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SaveRefreshToken(ctx, "old", "owner", time.Now().UTC().Add(-time.Hour)); err != nil {
		t.Fatalf("save: %v", err)
	}

	if ok, err := repo.IsRefreshTokenValid(ctx, "tok"); err != nil || !ok {
		t.Errorf("expected token to be valid, got %v (err %v)", ok, err)
	}
	if ok, _ := repo.IsRefreshTokenValid(ctx, "old"); ok {
		t.Error("expected expired token to be invalid")
	}
	if ok, _ := repo.IsRefreshTokenValid(ctx, "unknown"); ok {
		t.Error("expected unknown token to be invalid")
	}

	if err := repo.InvalidateRefreshToken(ctx, "tok"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if ok, _ := repo.IsRefreshTokenValid(ctx, "tok"); ok {
		t.Error("expected invalidated token to be invalid")
	}

	if n, err := repo.DeleteExpired(ctx); err != nil || n != 1 {
		t.Errorf("expected 1 expired token removed, got %d (err %v)", n, err)
	}
}
