// Package summary groups statement transactions by calendar month and
// selects the largest credits and debits of each month.
package summary

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pigeonworks-llc/bank-report/pkg/ledger"
)

// GroupKey identifies a calendar month.
type GroupKey struct {
	Year  int
	Month time.Month
}

// KeyOf returns the month a date falls in, in the date's own location.
func KeyOf(date time.Time) GroupKey {
	return GroupKey{Year: date.Year(), Month: date.Month()}
}

// YearString returns the year as four digits, e.g. "2024".
func (k GroupKey) YearString() string {
	return fmt.Sprintf("%04d", k.Year)
}

// MonthString returns the month as two digits, e.g. "01".
func (k GroupKey) MonthString() string {
	return fmt.Sprintf("%02d", int(k.Month))
}

// String returns the key in YYYY-MM format.
func (k GroupKey) String() string {
	return k.YearString() + "-" + k.MonthString()
}

// Group holds the transactions of one month.
type Group struct {
	Key          GroupKey
	Transactions []ledger.Transaction
	Sum          decimal.Decimal
}

func (g *Group) add(txn ledger.Transaction) {
	g.Transactions = append(g.Transactions, txn)
	g.Sum = g.Sum.Add(txn.Amount)
}

// Summary is the result of Aggregate.
type Summary struct {
	// Groups are ordered by the first appearance of their month in the input.
	Groups []*Group
	Total  decimal.Decimal

	index map[GroupKey]*Group
}

// Aggregate groups txns by month. Input order is preserved within each group.
func Aggregate(txns []ledger.Transaction) *Summary {
	s := &Summary{
		Total: decimal.Zero,
		index: make(map[GroupKey]*Group),
	}

	for _, txn := range txns {
		key := KeyOf(txn.Date)

		g, ok := s.index[key]
		if !ok {
			g = &Group{Key: key, Sum: decimal.Zero}
			s.index[key] = g
			s.Groups = append(s.Groups, g)
		}

		g.add(txn)
		s.Total = s.Total.Add(txn.Amount)
	}

	return s
}

// Group returns the group for key.
func (s *Summary) Group(key GroupKey) (*Group, bool) {
	g, ok := s.index[key]
	return g, ok
}

// Len returns the number of groups.
func (s *Summary) Len() int {
	return len(s.Groups)
}

// Count returns the number of transactions across all groups.
func (s *Summary) Count() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Transactions)
	}
	return n
}
