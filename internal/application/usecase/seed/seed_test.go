package seed

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/domain/entity"
	"github.com/finapple/backend/internal/domain/ledger"
	"github.com/finapple/backend/internal/integration/persistence"
)

func TestSeedDemoDataUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store is seeded once", func(t *testing.T) {
		repo := persistence.NewMemorySnapshotRepository(nil)
		uc := NewSeedDemoDataUseCase(repo)

		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Seeded {
			t.Fatal("expected store to be seeded")
		}

		s, _ := repo.Load(ctx)
		if len(s.Wallets) != 3 || len(s.Budgets) != 2 || len(s.Envelopes) != 2 || len(s.Investments) != 3 || len(s.Transactions) != 6 {
			t.Errorf("unexpected demo data sizes: %d wallets %d budgets %d envelopes %d investments %d transactions",
				len(s.Wallets), len(s.Budgets), len(s.Envelopes), len(s.Investments), len(s.Transactions))
		}

		again, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.Seeded {
			t.Error("expected second run to leave the store alone")
		}
	})

	t.Run("written store is left alone", func(t *testing.T) {
		repo := persistence.NewMemorySnapshotRepository(nil)
		if _, err := repo.Update(ctx, func(s *entity.Snapshot) error {
			s.Wallets = append(s.Wallets, entity.Wallet{ID: "mine", Name: "Mine"})
			return nil
		}); err != nil {
			t.Fatalf("update: %v", err)
		}

		out, err := NewSeedDemoDataUseCase(repo).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Seeded {
			t.Error("expected no seeding")
		}
		s, _ := repo.Load(ctx)
		if len(s.Wallets) != 1 {
			t.Errorf("expected the user's wallet only, got %d", len(s.Wallets))
		}
	})
}

func TestDemoSnapshot_DeletingEveryTransactionStaysConsistent(t *testing.T) {
	books := ledger.BooksFromSnapshot(DemoSnapshot())
	start := books.Wallets[0].Balance

	for _, tx := range DemoSnapshot().Transactions {
		res, err := ledger.DeleteTransaction(books, tx.ID)
		if err != nil {
			t.Fatalf("delete %s: %v", tx.ID, err)
		}
		if len(res.Unresolved) != 0 {
			t.Errorf("demo transaction %s has unresolved references: %+v", tx.ID, res.Unresolved)
		}
		books = res.Books
	}

	// Wallet 1: -15000 income, +1200 expense, -100 transfer in, +1000 transfer out.
	expected := start.Sub(decimal.NewFromInt(15000)).Add(decimal.NewFromInt(1200)).Sub(decimal.NewFromInt(100)).Add(decimal.NewFromInt(1000))
	if !books.Wallets[0].Balance.Equal(expected) {
		t.Errorf("expected wallet 1 balance %s, got %s", expected, books.Wallets[0].Balance)
	}
	if len(books.Transactions) != 0 {
		t.Errorf("expected empty log, got %d", len(books.Transactions))
	}
}
