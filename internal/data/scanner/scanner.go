package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/penwyp/go-timesheets/internal/util"
)

// Fatal input path conditions, wrapped in a *PathError by Check.
var (
	ErrFileNotExist = errors.New("file does not exist")
	ErrNotAFile     = errors.New("not a file")
	ErrNotReadable  = errors.New("file is not readable")
)

// PathError records an input path rejected by Check.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// FileScanner checks the timesheet paths supplied on the command line.
type FileScanner struct {
	paths []string
}

// NewFileScanner creates a new FileScanner for the given paths, kept in order.
func NewFileScanner(paths []string) *FileScanner {
	return &FileScanner{paths: append([]string(nil), paths...)}
}

// Paths returns the paths in the order they were given.
func (s *FileScanner) Paths() []string {
	return s.paths
}

// Scan checks every path in order and stops at the first failure.
func (s *FileScanner) Scan() error {
	start := time.Now()
	for _, path := range s.paths {
		if err := Check(path); err != nil {
			return err
		}
	}
	util.LogDebug(fmt.Sprintf("File check completed: duration %v, %d files", time.Since(start), len(s.paths)))
	return nil
}

// Check verifies that path exists, is a regular file and can be read.
func Check(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &PathError{Path: path, Err: ErrFileNotExist}
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return &PathError{Path: path, Err: ErrNotAFile}
	}
	if err := readable(path); err != nil {
		util.LogDebug(fmt.Sprintf("Access check failed: %s - %v", path, err))
		return &PathError{Path: path, Err: ErrNotReadable}
	}

	util.LogDebug(fmt.Sprintf("Input file ok: %s (%d bytes, modified %s)",
		path, info.Size(), info.ModTime().Format("2006-01-02 15:04:05")))
	return nil
}

// AbsPaths resolves every path against the working directory.
func (s *FileScanner) AbsPaths() []string {
	out := make([]string, 0, len(s.paths))
	for _, p := range s.paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		out = append(out, abs)
	}
	return out
}
