// Package ofx reads bank and credit card statements from OFX files.
package ofx

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/pigeonworks-llc/bank-report/pkg/ledger"
	"github.com/pigeonworks-llc/bank-report/pkg/logging"
)

// Extension is the file extension expected for OFX exports.
const Extension = ".ofx"

// ErrNoStatements is returned when a file has neither bank nor credit card statements.
var ErrNoStatements = errors.New("no bank or credit card statements")

// Source is a ledger.Source backed by ofxgo.
type Source struct {
	logger *slog.Logger
}

var _ ledger.Source = (*Source)(nil)

// NewSource creates a new Source. A nil logger discards log output.
func NewSource(logger *slog.Logger) *Source {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Source{logger: logger}
}

// Parse opens the file at path and returns its transactions.
func (s *Source) Parse(path string) ([]ledger.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ofx file: %w", err)
	}
	defer f.Close()

	txns, err := s.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return txns, nil
}

// Decode reads an OFX response from r. Bank statements come first, then
// credit card statements, each in file order. Posting dates are returned in UTC.
func (s *Source) Decode(r io.Reader) ([]ledger.Transaction, error) {
	resp, err := ofxgo.ParseResponse(r)
	if err != nil {
		return nil, err
	}

	if len(resp.Bank) == 0 && len(resp.CreditCard) == 0 {
		return nil, ErrNoStatements
	}

	if n := len(resp.Bank) + len(resp.CreditCard); n > 1 {
		s.logger.Warn("File has several statements, combining their transactions", "statements", n)
	}

	var txns []ledger.Transaction
	for _, msg := range append(resp.Bank, resp.CreditCard...) {
		var (
			account string
			list    *ofxgo.TransactionList
		)

		switch stmt := msg.(type) {
		case *ofxgo.StatementResponse:
			account = string(stmt.BankAcctFrom.AcctID)
			list = stmt.BankTranList
		case *ofxgo.CCStatementResponse:
			account = string(stmt.CCAcctFrom.AcctID)
			list = stmt.BankTranList
		default:
			s.logger.Warn("Skipping unsupported statement message", "type", fmt.Sprintf("%T", msg))
			continue
		}

		if list == nil {
			s.logger.Info("Statement has no transaction list", "account", account)
			continue
		}

		s.logger.Info("Reading statement",
			"account", account,
			"start", list.DtStart.Format("2006-01-02"),
			"end", list.DtEnd.Format("2006-01-02"),
			"transactions", len(list.Transactions),
		)

		for _, t := range list.Transactions {
			txn, err := convert(t)
			if err != nil {
				return nil, err
			}
			s.logger.Debug("Read transaction",
				"fitid", txn.ID,
				"date", txn.Date.Format("2006-01-02"),
				"amount", txn.Amount.String(),
			)
			txns = append(txns, txn)
		}
	}

	return txns, nil
}

func convert(t ofxgo.Transaction) (ledger.Transaction, error) {
	amount, err := decimal.NewFromString(t.TrnAmt.String())
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("invalid amount for transaction %s: %w", t.FiTID, err)
	}

	return ledger.Transaction{
		Date:   t.DtPosted.Time.UTC(),
		Amount: amount,
		Memo:   string(t.Memo),
		ID:     string(t.FiTID),
		Name:   string(t.Name),
	}, nil
}
