package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
	"github.com/finapple/backend/internal/domain/ledger"
	"github.com/finapple/backend/internal/integration/persistence"
)

func TestWalletUseCases(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewMemorySnapshotRepository(nil)

	created, err := NewCreateWalletUseCase(repo).Execute(ctx, CreateWalletInput{
		ID:          "1",
		WalletInput: WalletInput{Name: "Card 1", Balance: decimal.NewFromInt(50000), Currency: "₴"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Wallet.Currency != "UAH" {
		t.Errorf("expected currency normalized to UAH, got %s", created.Wallet.Currency)
	}

	if _, err := NewCreateWalletUseCase(repo).Execute(ctx, CreateWalletInput{
		ID:          "2",
		WalletInput: WalletInput{Name: "Dollars", Balance: decimal.NewFromInt(1200), Currency: "USD"},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("list totals", func(t *testing.T) {
		out, err := NewListWalletsUseCase(repo).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Wallets) != 2 {
			t.Fatalf("expected 2 wallets, got %d", len(out.Wallets))
		}
		// 50000 + 1200 * 41
		if !out.TotalLocal.Equal(decimal.NewFromInt(99200)) {
			t.Errorf("expected local total 99200, got %s", out.TotalLocal)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := NewCreateWalletUseCase(repo).Execute(ctx, CreateWalletInput{WalletInput: WalletInput{Name: "  "}})
		if !errors.Is(err, domainerror.ErrBlankName) {
			t.Errorf("expected ErrBlankName, got %v", err)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := NewCreateWalletUseCase(repo).Execute(ctx, CreateWalletInput{ID: "1", WalletInput: WalletInput{Name: "Again"}})
		if !errors.Is(err, domainerror.ErrDuplicateID) {
			t.Errorf("expected ErrDuplicateID, got %v", err)
		}
	})

	t.Run("update replaces balance", func(t *testing.T) {
		out, err := NewUpdateWalletUseCase(repo).Execute(ctx, UpdateWalletInput{
			ID:          "1",
			WalletInput: WalletInput{Name: "Card 1", Balance: decimal.NewFromInt(100), Currency: "UAH"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Wallet.Balance.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected balance 100, got %s", out.Wallet.Balance)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := NewDeleteWalletUseCase(repo).Execute(ctx, DeleteWalletInput{ID: "2"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s, _ := repo.Load(ctx)
		if _, ok := s.FindWallet("2"); ok {
			t.Error("expected wallet 2 to be removed")
		}

		err := NewDeleteWalletUseCase(repo).Execute(ctx, DeleteWalletInput{ID: "2"})
		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeWalletNotFound {
			t.Errorf("expected wallet not found, got %v", err)
		}
	})

}

func TestCreateWalletUseCase_EnvelopeIDTaken(t *testing.T) {
	ctx := context.Background()
	initial := entity.NewSnapshot()
	initial.Wallets = []entity.Wallet{{ID: "w", Name: "Cash", Balance: decimal.NewFromInt(1000), Currency: "USD"}}
	initial.Envelopes = []entity.Envelope{{ID: "e", Name: "Trip", Goal: decimal.NewFromInt(500), Currency: "USD"}}
	repo := persistence.NewMemorySnapshotRepository(initial)

	transfer := entity.Transaction{
		ID: "t1", Type: entity.TransactionTypeTransfer, Amount: decimal.NewFromInt(100),
		WalletID: "w", ToWalletID: "e",
	}
	if _, err := repo.Update(ctx, func(s *entity.Snapshot) error {
		res, err := ledger.CreateTransaction(ledger.BooksFromSnapshot(s), transfer)
		if err != nil {
			return err
		}
		res.Books.ApplyTo(s)
		return nil
	}); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	_, err := NewCreateWalletUseCase(repo).Execute(ctx, CreateWalletInput{
		ID:          "e",
		WalletInput: WalletInput{Name: "Shadow", Currency: "USD"},
	})
	var ledgerErr *domainerror.LedgerError
	if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeDuplicateID {
		t.Fatalf("expected duplicate id error, got %v", err)
	}

	s, _ := repo.Load(ctx)
	if len(s.Wallets) != 1 {
		t.Fatalf("expected no wallet to be added, got %d wallets", len(s.Wallets))
	}

	res, err := ledger.DeleteTransaction(ledger.BooksFromSnapshot(s), "t1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !res.Books.Envelopes[0].Balance.IsZero() {
		t.Errorf("expected envelope balance 0 after reversal, got %s", res.Books.Envelopes[0].Balance)
	}
	if !res.Books.Wallets[0].Balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected wallet balance 1000 after reversal, got %s", res.Books.Wallets[0].Balance)
	}
}
