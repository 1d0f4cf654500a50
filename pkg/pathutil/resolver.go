// Package pathutil provides centralized path management for the input
// statement, the generated report and the log file.
package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotAFile is returned when the input path does not name a regular file.
var ErrNotAFile = errors.New("is not a file")

// ErrWrongExtension is returned when the input file has an unexpected extension.
var ErrWrongExtension = errors.New("has the wrong extension")

// InputError reports an input file rejected by CheckInput.
type InputError struct {
	Path string
	Ext  string
	Err  error
}

func (e *InputError) Error() string {
	if e.Err == ErrWrongExtension {
		return fmt.Sprintf("%s is not a %s file", e.Path, strings.TrimPrefix(e.Ext, "."))
	}
	return fmt.Sprintf("%s is not a file", e.Path)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// PathResolver manages the paths written by a report run.
type PathResolver struct {
	workDir    string
	reportPath string
	logPath    string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// WorkDir is the directory relative paths are resolved against (e.g., the current directory)
	WorkDir string
	// ReportPath is the markdown report file
	ReportPath string
	// LogPath is the file diagnostic output is appended to
	LogPath string
}

// New creates a new PathResolver with the given configuration.
// If WorkDir is empty, it defaults to the current directory.
// If ReportPath is empty, it defaults to {WorkDir}/report.md
// If LogPath is empty, it defaults to {WorkDir}/bank-report.log
func New(config Config) *PathResolver {
	workDir := config.WorkDir
	if workDir == "" {
		workDir = "."
	}

	return &PathResolver{
		workDir:    workDir,
		reportPath: resolve(workDir, config.ReportPath, "report.md"),
		logPath:    resolve(workDir, config.LogPath, "bank-report.log"),
	}
}

func resolve(workDir, path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workDir, path)
}

// GetWorkDir returns the working directory.
func (p *PathResolver) GetWorkDir() string {
	return p.workDir
}

// GetReportPath returns the report file path.
func (p *PathResolver) GetReportPath() string {
	return p.reportPath
}

// GetLogPath returns the log file path.
func (p *PathResolver) GetLogPath() string {
	return p.logPath
}

// CheckInput verifies that path is an existing regular file with extension ext.
// The comparison is case-sensitive.
func (p *PathResolver) CheckInput(path, ext string) error {
	if !p.IsFile(path) {
		return &InputError{Path: path, Ext: ext, Err: ErrNotAFile}
	}
	if filepath.Ext(path) != ext {
		return &InputError{Path: path, Ext: ext, Err: ErrWrongExtension}
	}
	return nil
}

// IsFile checks if a path is a regular file.
func (p *PathResolver) IsFile(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
