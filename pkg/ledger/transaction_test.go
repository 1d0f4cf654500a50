package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	date := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		amounts  []string
		expected string
	}{
		{"empty", nil, "0"},
		{"single", []string{"12.34"}, "12.34"},
		{"mixed signs", []string{"100", "-20", "-5"}, "75"},
		{"no float drift", []string{"0.1", "0.2"}, "0.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var txns []Transaction
			for _, a := range tt.amounts {
				txns = append(txns, Transaction{Date: date, Amount: decimal.RequireFromString(a)})
			}

			got := Sum(txns)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "Sum() = %s, expected %s", got, tt.expected)
		})
	}
}
