package summary

import (
	"fmt"
	"slices"

	"github.com/pigeonworks-llc/bank-report/pkg/ledger"
)

// DefaultTopN is the number of transactions listed per month when not configured.
const DefaultTopN = 3

// Policy controls the order of truncation and sign filtering in SelectExtremes.
type Policy string

const (
	// PolicyTruncateFirst takes the n largest (or smallest) amounts, then
	// drops those with the wrong sign. A month with only credits therefore
	// has an empty bottom list.
	PolicyTruncateFirst Policy = "truncate-first"

	// PolicyFilterFirst drops amounts with the wrong sign, then takes n.
	PolicyFilterFirst Policy = "filter-first"
)

// ParsePolicy parses a policy name. An empty name selects PolicyTruncateFirst.
func ParsePolicy(name string) (Policy, error) {
	switch Policy(name) {
	case "", PolicyTruncateFirst:
		return PolicyTruncateFirst, nil
	case PolicyFilterFirst:
		return PolicyFilterFirst, nil
	}
	return "", fmt.Errorf("unknown selection policy %q: must be %q or %q", name, PolicyTruncateFirst, PolicyFilterFirst)
}

// SelectExtremes returns up to n credits of g by descending amount (top) and
// up to n debits or zero amounts by ascending amount (bottom). Equal amounts
// keep their order in g. g is not modified.
func SelectExtremes(g *Group, n int, policy Policy) (top, bottom []ledger.Transaction) {
	if g == nil || n <= 0 || len(g.Transactions) == 0 {
		return []ledger.Transaction{}, []ledger.Transaction{}
	}

	isCredit := func(t ledger.Transaction) bool { return t.Amount.IsPositive() }
	isDebit := func(t ledger.Transaction) bool { return !t.Amount.IsPositive() }

	desc := func(a, b ledger.Transaction) int { return b.Amount.Cmp(a.Amount) }
	asc := func(a, b ledger.Transaction) int { return a.Amount.Cmp(b.Amount) }

	if policy == PolicyFilterFirst {
		top = firstN(sorted(filter(g.Transactions, isCredit), desc), n)
		bottom = firstN(sorted(filter(g.Transactions, isDebit), asc), n)
		return top, bottom
	}

	top = filter(firstN(sorted(g.Transactions, desc), n), isCredit)
	bottom = filter(firstN(sorted(g.Transactions, asc), n), isDebit)
	return top, bottom
}

func sorted(txns []ledger.Transaction, cmp func(a, b ledger.Transaction) int) []ledger.Transaction {
	out := slices.Clone(txns)
	slices.SortStableFunc(out, cmp)
	return out
}

func firstN(txns []ledger.Transaction, n int) []ledger.Transaction {
	if len(txns) > n {
		return txns[:n]
	}
	return txns
}

func filter(txns []ledger.Transaction, keep func(ledger.Transaction) bool) []ledger.Transaction {
	out := make([]ledger.Transaction, 0, len(txns))
	for _, t := range txns {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
