package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pigeonworks-llc/bank-report/pkg/ledger"
	"github.com/pigeonworks-llc/bank-report/pkg/summary"
)

func TestFileRepositoryOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the new one"), 0644))

	repo := NewFileRepository(path)
	assert.Equal(t, path, repo.Path())
	require.NoError(t, repo.Write([]byte("fresh")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
}

func TestFileRepositoryCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "report.md")

	require.NoError(t, NewFileRepository(path).Write([]byte("x")))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	s := summary.Aggregate([]ledger.Transaction{txn("2023-01-05", "100", "Salary")})

	require.NoError(t, Save(NewFileRepository(path), s, defaultOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "total: 100.00\n")
	assert.Contains(t, string(data), "|2023|01|100.00|\n")
}
