package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pigeonworks-llc/bank-report/pkg/summary"
)

// Repository defines where a rendered report is stored.
type Repository interface {
	// Write replaces the stored report with content.
	Write(content []byte) error

	// Path returns the location of the report.
	Path() string
}

// FileRepository stores the report in a single file, overwritten on every write.
type FileRepository struct {
	path string
}

// NewFileRepository creates a new FileRepository.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Write creates or truncates the report file and writes content to it.
func (r *FileRepository) Write(content []byte) error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(r.path, content, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// Path returns the report file path.
func (r *FileRepository) Path() string {
	return r.path
}

// Save renders s and stores it in repo. Nothing is written if rendering fails.
func Save(repo Repository, s *summary.Summary, opts Options) error {
	var buf bytes.Buffer
	if err := Render(&buf, s, opts); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return repo.Write(buf.Bytes())
}
