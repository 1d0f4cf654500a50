// Package ledger defines the transaction record shared by the statement
// sources and the reporting packages.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one dated, signed movement on a statement.
type Transaction struct {
	Date   time.Time
	Amount decimal.Decimal
	Memo   string

	// ID is the institution's transaction identifier (OFX FITID), if any.
	ID string
	// Name is the payee/name field, if any.
	Name string
}

// Source reads the transactions of a statement file.
type Source interface {
	// Parse returns the transactions of the file at path, in file order.
	Parse(path string) ([]Transaction, error)
}

// Sum returns the exact sum of the amounts of txns.
func Sum(txns []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		total = total.Add(txn.Amount)
	}
	return total
}
