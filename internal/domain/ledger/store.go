package ledger

import (
	"slices"

	"github.com/finapple/backend/internal/domain/entity"
)

// CreateTransaction applies tx and prepends it to the log. The log is ordered
// most recent insertion first; the date field is not a sort key.
func CreateTransaction(books Books, tx entity.Transaction) (Result, error) {
	res, err := ApplyImpact(books, tx, 1)
	if err != nil {
		return Result{}, err
	}
	res.Books.Transactions = append([]entity.Transaction{tx}, res.Books.Transactions...)
	return res, nil
}

// UpdateTransaction reverses old, applies updated and replaces old in place.
// When old is not in the log, updated is prepended.
func UpdateTransaction(books Books, old, updated entity.Transaction) (Result, error) {
	reversed, err := ApplyImpact(books, old, -1)
	if err != nil {
		return Result{}, err
	}
	applied, err := ApplyImpact(reversed.Books, updated, 1)
	if err != nil {
		return Result{}, err
	}

	out := applied.Books
	if i := indexOf(out.Transactions, old.ID); i >= 0 {
		out.Transactions[i] = updated
	} else {
		out.Transactions = append([]entity.Transaction{updated}, out.Transactions...)
	}

	return Result{
		Books:      out,
		Unresolved: append(reversed.Unresolved, applied.Unresolved...),
	}, nil
}

// DeleteTransaction reverses the transaction with the given id and removes it
// from the log. An unknown id leaves the books unchanged.
func DeleteTransaction(books Books, id string) (Result, error) {
	i := indexOf(books.Transactions, id)
	if i < 0 {
		return Result{Books: books.clone()}, nil
	}
	res, err := ApplyImpact(books, books.Transactions[i], -1)
	if err != nil {
		return Result{}, err
	}
	res.Books.Transactions = slices.Delete(res.Books.Transactions, i, i+1)
	return res, nil
}

// FilterByType returns the transactions of the given type, keeping log order.
// An empty type returns the whole log.
func FilterByType(txs []entity.Transaction, t entity.TransactionType) []entity.Transaction {
	if t == "" {
		return slices.Clone(txs)
	}
	out := make([]entity.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Type == t {
			out = append(out, tx)
		}
	}
	return out
}

// TransactionsTo returns the transactions whose destination is the given id.
func TransactionsTo(txs []entity.Transaction, id string) []entity.Transaction {
	out := make([]entity.Transaction, 0)
	if id == "" {
		return out
	}
	for _, tx := range txs {
		if tx.ToWalletID == id {
			out = append(out, tx)
		}
	}
	return out
}

// Recent returns at most n transactions from the head of the log.
func Recent(txs []entity.Transaction, n int) []entity.Transaction {
	if n < 0 {
		n = 0
	}
	return slices.Clone(txs[:min(n, len(txs))])
}

func indexOf(txs []entity.Transaction, id string) int {
	return slices.IndexFunc(txs, func(t entity.Transaction) bool { return t.ID == id })
}
