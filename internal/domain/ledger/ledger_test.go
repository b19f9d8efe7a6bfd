package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleBooks() Books {
	return Books{
		Wallets: []entity.Wallet{
			{ID: "1", Name: "Card", Balance: dec("50000"), Currency: "UAH"},
			{ID: "2", Name: "Cash", Balance: dec("1200"), Currency: "USD"},
		},
		Budgets: []entity.Budget{
			{ID: "b1", Name: "Food", Limit: dec("8000"), Spent: dec("4500"), Currency: "UAH"},
		},
		Envelopes: []entity.Envelope{
			{ID: "e1", Name: "Vacation", Balance: dec("15000"), Goal: dec("50000"), Currency: "UAH"},
		},
	}
}

func assertSameBalances(t *testing.T, want, got Books) {
	t.Helper()
	for i := range want.Wallets {
		if !want.Wallets[i].Balance.Equal(got.Wallets[i].Balance) {
			t.Errorf("wallet %s: expected balance %s, got %s", want.Wallets[i].ID, want.Wallets[i].Balance, got.Wallets[i].Balance)
		}
	}
	for i := range want.Budgets {
		if !want.Budgets[i].Spent.Equal(got.Budgets[i].Spent) {
			t.Errorf("budget %s: expected spent %s, got %s", want.Budgets[i].ID, want.Budgets[i].Spent, got.Budgets[i].Spent)
		}
	}
	for i := range want.Envelopes {
		if !want.Envelopes[i].Balance.Equal(got.Envelopes[i].Balance) {
			t.Errorf("envelope %s: expected balance %s, got %s", want.Envelopes[i].ID, want.Envelopes[i].Balance, got.Envelopes[i].Balance)
		}
	}
}

func TestApplyImpact(t *testing.T) {
	tests := []struct {
		name       string
		tx         entity.Transaction
		wallet1    string
		wallet2    string
		spent      string
		envelope   string
		unresolved int
	}{
		{
			name:    "expense with budget debits wallet and adds to spent",
			tx:      entity.Transaction{ID: "t", Type: entity.TransactionTypeExpense, Amount: dec("1200"), WalletID: "1", BudgetID: "b1"},
			wallet1: "48800", wallet2: "1200", spent: "5700", envelope: "15000",
		},
		{
			name:    "expense without budget leaves spent alone",
			tx:      entity.Transaction{ID: "t", Type: entity.TransactionTypeExpense, Amount: dec("100"), WalletID: "1"},
			wallet1: "49900", wallet2: "1200", spent: "4500", envelope: "15000",
		},
		{
			name:    "income credits wallet and ignores budget id",
			tx:      entity.Transaction{ID: "t", Type: entity.TransactionTypeIncome, Amount: dec("45000"), WalletID: "1", BudgetID: "b1"},
			wallet1: "95000", wallet2: "1200", spent: "4500", envelope: "15000",
		},
		{
			name:    "transfer between wallets",
			tx:      entity.Transaction{ID: "t", Type: entity.TransactionTypeTransfer, Amount: dec("100"), WalletID: "2", ToWalletID: "1"},
			wallet1: "50100", wallet2: "1100", spent: "4500", envelope: "15000",
		},
		{
			name:    "transfer into envelope",
			tx:      entity.Transaction{ID: "t", Type: entity.TransactionTypeTransfer, Amount: dec("5000"), WalletID: "1", ToWalletID: "e1"},
			wallet1: "45000", wallet2: "1200", spent: "4500", envelope: "20000",
		},
		{
			name:    "investment has no impact",
			tx:      entity.Transaction{ID: "t", Type: entity.TransactionTypeInvestment, Amount: dec("999"), WalletID: "1"},
			wallet1: "50000", wallet2: "1200", spent: "4500", envelope: "15000",
		},
		{
			name:    "missing wallet is reported and skipped",
			tx:      entity.Transaction{ID: "t", Type: entity.TransactionTypeExpense, Amount: dec("10"), WalletID: "nope", BudgetID: "b1"},
			wallet1: "50000", wallet2: "1200", spent: "4510", envelope: "15000", unresolved: 1,
		},
		{
			name:    "unknown transfer destination is reported",
			tx:      entity.Transaction{ID: "t", Type: entity.TransactionTypeTransfer, Amount: dec("10"), WalletID: "1", ToWalletID: "ghost"},
			wallet1: "49990", wallet2: "1200", spent: "4500", envelope: "15000", unresolved: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books := sampleBooks()
			res, err := ApplyImpact(books, tt.tx, 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := res.Books
			if !got.Wallets[0].Balance.Equal(dec(tt.wallet1)) {
				t.Errorf("expected wallet 1 balance %s, got %s", tt.wallet1, got.Wallets[0].Balance)
			}
			if !got.Wallets[1].Balance.Equal(dec(tt.wallet2)) {
				t.Errorf("expected wallet 2 balance %s, got %s", tt.wallet2, got.Wallets[1].Balance)
			}
			if !got.Budgets[0].Spent.Equal(dec(tt.spent)) {
				t.Errorf("expected spent %s, got %s", tt.spent, got.Budgets[0].Spent)
			}
			if !got.Envelopes[0].Balance.Equal(dec(tt.envelope)) {
				t.Errorf("expected envelope balance %s, got %s", tt.envelope, got.Envelopes[0].Balance)
			}
			if len(res.Unresolved) != tt.unresolved {
				t.Errorf("expected %d unresolved references, got %d: %+v", tt.unresolved, len(res.Unresolved), res.Unresolved)
			}

			// Input must be untouched.
			assertSameBalances(t, sampleBooks(), books)
		})
	}
}

func TestApplyImpact_ReversalIdentity(t *testing.T) {
	txs := []entity.Transaction{
		{ID: "a", Type: entity.TransactionTypeExpense, Amount: dec("0.1"), WalletID: "1", BudgetID: "b1"},
		{ID: "b", Type: entity.TransactionTypeIncome, Amount: dec("1234.56"), WalletID: "2"},
		{ID: "c", Type: entity.TransactionTypeTransfer, Amount: dec("33.33"), WalletID: "1", ToWalletID: "2"},
		{ID: "d", Type: entity.TransactionTypeTransfer, Amount: dec("0.07"), WalletID: "2", ToWalletID: "e1"},
		{ID: "e", Type: entity.TransactionTypeInvestment, Amount: dec("10"), WalletID: "1"},
		{ID: "f", Type: entity.TransactionTypeExpense, Amount: dec("5"), WalletID: "missing", BudgetID: "missing"},
	}

	for _, tx := range txs {
		t.Run(tx.ID, func(t *testing.T) {
			start := sampleBooks()
			applied, err := ApplyImpact(start, tx, 1)
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
			reversed, err := ApplyImpact(applied.Books, tx, -1)
			if err != nil {
				t.Fatalf("reverse: %v", err)
			}
			assertSameBalances(t, start, reversed.Books)
		})
	}
}

func TestApplyImpact_InvalidMultiplier(t *testing.T) {
	tx := entity.Transaction{ID: "t", Type: entity.TransactionTypeIncome, Amount: dec("1"), WalletID: "1"}
	for _, m := range []int{0, 2, -3} {
		if _, err := ApplyImpact(sampleBooks(), tx, m); !errors.Is(err, domainerror.ErrInvalidMultiplier) {
			t.Errorf("multiplier %d: expected ErrInvalidMultiplier, got %v", m, err)
		}
	}
}

func TestApplyImpact_LinearComposition(t *testing.T) {
	a := entity.Transaction{ID: "a", Type: entity.TransactionTypeExpense, Amount: dec("10"), WalletID: "1", BudgetID: "b1"}
	b := entity.Transaction{ID: "b", Type: entity.TransactionTypeTransfer, Amount: dec("25"), WalletID: "1", ToWalletID: "2"}

	ab, _ := ApplyImpact(sampleBooks(), a, 1)
	ab, _ = ApplyImpact(ab.Books, b, 1)
	ba, _ := ApplyImpact(sampleBooks(), b, 1)
	ba, _ = ApplyImpact(ba.Books, a, 1)

	assertSameBalances(t, ab.Books, ba.Books)
}
