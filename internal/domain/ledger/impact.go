// Package ledger keeps wallet, budget and envelope balances consistent with the
// transaction log. Every function is pure: it receives the books, returns updated
// copies and never retains state between calls.
package ledger

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
)

// Books is the slice of the snapshot the ledger works on.
type Books struct {
	Wallets      []entity.Wallet
	Budgets      []entity.Budget
	Envelopes    []entity.Envelope
	Transactions []entity.Transaction
}

// BooksFromSnapshot extracts the books from a snapshot.
func BooksFromSnapshot(s *entity.Snapshot) Books {
	return Books{
		Wallets:      s.Wallets,
		Budgets:      s.Budgets,
		Envelopes:    s.Envelopes,
		Transactions: s.Transactions,
	}
}

// ApplyTo writes the books back into a snapshot.
func (b Books) ApplyTo(s *entity.Snapshot) {
	s.Wallets = b.Wallets
	s.Budgets = b.Budgets
	s.Envelopes = b.Envelopes
	s.Transactions = b.Transactions
}

func (b Books) clone() Books {
	return Books{
		Wallets:      slices.Clone(b.Wallets),
		Budgets:      slices.Clone(b.Budgets),
		Envelopes:    slices.Clone(b.Envelopes),
		Transactions: slices.Clone(b.Transactions),
	}
}

// ReferenceRole names the field of a transaction that carried a reference.
type ReferenceRole string

const (
	RoleSource      ReferenceRole = "walletId"
	RoleDestination ReferenceRole = "toWalletId"
	RoleBudget      ReferenceRole = "budgetId"
)

// ReferenceKind names the collection a reference was looked up in.
type ReferenceKind string

const (
	KindWallet           ReferenceKind = "wallet"
	KindBudget           ReferenceKind = "budget"
	KindWalletOrEnvelope ReferenceKind = "wallet_or_envelope"
)

// UnresolvedReference reports an id that matched no entity. The impact for that
// reference was skipped; every other effect of the transaction was applied.
type UnresolvedReference struct {
	TransactionID string        `json:"transactionId"`
	Kind          ReferenceKind `json:"kind"`
	Role          ReferenceRole `json:"role"`
	ID            string        `json:"id"`
}

// Result is the outcome of a ledger operation.
type Result struct {
	Books      Books
	Unresolved []UnresolvedReference
}

// ApplyImpact applies the balance effect of tx to the books, scaled by
// multiplier, which must be 1 (apply) or -1 (reverse).
//
//   - EXPENSE debits the source wallet and, with a budget id, adds to the budget's spent.
//   - INCOME credits the source wallet.
//   - TRANSFER debits the source wallet and credits the destination, which is
//     looked up among wallets first and then among envelopes.
//   - INVESTMENT has no balance effect.
//
// The input books are not modified.
func ApplyImpact(books Books, tx entity.Transaction, multiplier int) (Result, error) {
	if multiplier != 1 && multiplier != -1 {
		return Result{}, domainerror.ErrInvalidMultiplier
	}

	out := books.clone()
	r := &impact{books: &out, tx: tx, delta: tx.Amount.Mul(decimal.NewFromInt(int64(multiplier)))}

	switch tx.Type {
	case entity.TransactionTypeExpense:
		r.wallet(tx.WalletID, RoleSource, r.delta.Neg())
		if tx.HasBudget() {
			r.budget(tx.BudgetID, r.delta)
		}
	case entity.TransactionTypeIncome:
		r.wallet(tx.WalletID, RoleSource, r.delta)
	case entity.TransactionTypeTransfer:
		r.wallet(tx.WalletID, RoleSource, r.delta.Neg())
		r.destination(tx.ToWalletID, r.delta)
	}

	return Result{Books: out, Unresolved: r.unresolved}, nil
}

type impact struct {
	books      *Books
	tx         entity.Transaction
	delta      decimal.Decimal
	unresolved []UnresolvedReference
}

func (r *impact) miss(kind ReferenceKind, role ReferenceRole, id string) {
	r.unresolved = append(r.unresolved, UnresolvedReference{
		TransactionID: r.tx.ID,
		Kind:          kind,
		Role:          role,
		ID:            id,
	})
}

func (r *impact) creditWallet(id string, delta decimal.Decimal) bool {
	i := slices.IndexFunc(r.books.Wallets, func(w entity.Wallet) bool { return w.ID == id })
	if id == "" || i < 0 {
		return false
	}
	r.books.Wallets[i].Balance = r.books.Wallets[i].Balance.Add(delta)
	return true
}

func (r *impact) wallet(id string, role ReferenceRole, delta decimal.Decimal) {
	if !r.creditWallet(id, delta) {
		r.miss(KindWallet, role, id)
	}
}

func (r *impact) budget(id string, delta decimal.Decimal) {
	i := slices.IndexFunc(r.books.Budgets, func(b entity.Budget) bool { return b.ID == id })
	if i < 0 {
		r.miss(KindBudget, RoleBudget, id)
		return
	}
	r.books.Budgets[i].Spent = r.books.Budgets[i].Spent.Add(delta)
}

func (r *impact) destination(id string, delta decimal.Decimal) {
	if r.creditWallet(id, delta) {
		return
	}
	i := slices.IndexFunc(r.books.Envelopes, func(e entity.Envelope) bool { return e.ID == id })
	if id == "" || i < 0 {
		r.miss(KindWalletOrEnvelope, RoleDestination, id)
		return
	}
	r.books.Envelopes[i].Balance = r.books.Envelopes[i].Balance.Add(delta)
}
