// Package report renders a monthly summary as a markdown document.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pigeonworks-llc/bank-report/pkg/ledger"
	"github.com/pigeonworks-llc/bank-report/pkg/summary"
)

// DefaultTitle is the document heading used when Options.Title is empty.
const DefaultTitle = "Report"

// Options controls report rendering.
type Options struct {
	Title  string
	TopN   int
	Policy summary.Policy
}

// Render writes the report for s to w.
func Render(w io.Writer, s *summary.Summary, opts Options) error {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", title))

	// Resume
	sb.WriteString("## Resume\n\n")
	sb.WriteString(fmt.Sprintf("total: %s\n\n", FormatAmount(s.Total)))
	sb.WriteString("|year|month|amont|\n")
	sb.WriteString("|---|---|---|\n")
	for _, g := range s.Groups {
		sb.WriteString(fmt.Sprintf("|%s|%s|%s|\n", g.Key.YearString(), g.Key.MonthString(), FormatAmount(g.Sum)))
	}
	sb.WriteString("\n")

	// Details
	sb.WriteString("## Details\n\n")
	for _, g := range s.Groups {
		top, bottom := summary.SelectExtremes(g, opts.TopN, opts.Policy)

		sb.WriteString(fmt.Sprintf("### %s/%s\n\n", g.Key.YearString(), g.Key.MonthString()))
		writeTable(&sb, "top", top)
		writeTable(&sb, "bottom", bottom)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTable(sb *strings.Builder, label string, txns []ledger.Transaction) {
	sb.WriteString(fmt.Sprintf("\t* %s:\n\n", label))
	sb.WriteString("|Date|amount|memo|\n")
	sb.WriteString("|---|---|---|\n")
	for _, txn := range txns {
		sb.WriteString(fmt.Sprintf("|%s|%s|%s|\n",
			txn.Date.Format("2006-01-02"),
			FormatAmount(txn.Amount),
			CleanMemo(txn.Memo),
		))
	}
	sb.WriteString("\n")
}

// FormatAmount prints d with at least two decimals and without rounding.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(max(2, -d.Exponent()))
}

// CleanMemo collapses whitespace runs, newlines included, to single spaces
// and escapes pipes so the memo fits in one table cell.
func CleanMemo(memo string) string {
	memo = strings.Join(strings.Fields(memo), " ")
	return strings.ReplaceAll(memo, "|", `\|`)
}
