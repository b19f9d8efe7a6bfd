package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// DemoSnapshot returns the demo data set. Balances already include the effect of
// the listed transactions.
func DemoSnapshot() *entity.Snapshot {
	s := entity.NewSnapshot()

	s.Wallets = []entity.Wallet{
		{ID: "1", Name: "Card 1", Balance: d("50000"), Currency: "UAH", Color: "#9bd7fe"},
		{ID: "2", Name: "Card 2", Balance: d("1200"), Currency: "USD", Color: "#feb0ec"},
		{ID: "3", Name: "Cash", Balance: d("2500"), Currency: "UAH", Color: "#ffeba4"},
	}

	s.Budgets = []entity.Budget{
		{ID: "b1", Name: "Food", Limit: d("8000"), Spent: d("4500"), Currency: "UAH", Color: "#dae5a5"},
		{ID: "b2", Name: "Entertainment", Limit: d("3000"), Spent: d("1200"), Currency: "UAH", Color: "#a3ebbe"},
	}

	s.Envelopes = []entity.Envelope{
		{ID: "e1", Name: "New Car", Balance: d("15000"), Goal: d("35000"), Currency: "USD", Color: "#9bd7fe"},
		{ID: "e2", Name: "Vacation", Balance: d("2000"), Goal: d("5000"), Currency: "EUR", Color: "#feb0ec"},
	}

	s.Investments = []entity.Investment{
		{
			ID:              "inv1",
			Type:            "ОВДП України",
			Name:            "War Bonds 2025",
			Amount:          d("45000"),
			Currency:        "UAH",
			PurchaseDate:    day("2024-01-15"),
			TermDate:        entity.MaturesOn(day("2025-06-20")),
			InterestRate:    d("15.5"),
			PayoutFrequency: entity.PayoutSemiAnnual,
			InterestType:    entity.InterestSimple,
			Comment:         "Support Ukraine",
		},
		{
			ID:              "inv2",
			Type:            "Physical Gold",
			Name:            "Gold Ingot 1oz",
			Amount:          d("2450"),
			Currency:        "USD",
			PurchaseDate:    day("2023-11-10"),
			TermDate:        entity.Perpetual(),
			InterestRate:    decimal.Zero,
			PayoutFrequency: entity.PayoutEndOfTerm,
			InterestType:    entity.InterestSimple,
			Comment:         "Safe haven asset",
		},
		{
			ID:              "inv3",
			Type:            "USD ($)",
			Name:            "Dollar Cache",
			Amount:          d("1000"),
			Currency:        "USD",
			PurchaseDate:    day("2024-02-01"),
			TermDate:        entity.Perpetual(),
			InterestRate:    decimal.Zero,
			PayoutFrequency: entity.PayoutEndOfTerm,
			InterestType:    entity.InterestSimple,
			Comment:         "Emergency reserve",
		},
	}

	tx := func(id string, typ entity.TransactionType, amount, currency, from, to, category, date string) entity.Transaction {
		return entity.Transaction{
			ID:         id,
			Type:       typ,
			Amount:     d(amount),
			Currency:   currency,
			WalletID:   from,
			ToWalletID: to,
			Category:   category,
			Date:       day(date),
			Frequency:  entity.FrequencyNone,
		}
	}
	s.Transactions = []entity.Transaction{
		tx("t1", entity.TransactionTypeIncome, "15000", "UAH", "1", "", "Salary", "2024-03-25"),
		tx("t2", entity.TransactionTypeIncome, "400", "USD", "2", "", "Freelance", "2024-03-24"),
		tx("t3", entity.TransactionTypeExpense, "1200", "UAH", "1", "", "Rent", "2024-03-23"),
		tx("t4", entity.TransactionTypeExpense, "650", "UAH", "3", "", "Food", "2024-03-22"),
		tx("t5", entity.TransactionTypeTransfer, "100", "USD", "2", "1", "Transfer", "2024-03-21"),
		tx("t6", entity.TransactionTypeTransfer, "1000", "UAH", "1", "3", "Transfer", "2024-03-20"),
	}

	return s
}
