package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileScanner(t *testing.T) {
	paths := []string{"b.xlsx", "a.xlsx"}
	scanner := NewFileScanner(paths)

	assert.NotNil(t, scanner)
	assert.Equal(t, []string{"b.xlsx", "a.xlsx"}, scanner.Paths())

	// The scanner keeps its own copy.
	paths[0] = "changed.xlsx"
	assert.Equal(t, "b.xlsx", scanner.Paths()[0])
}

func TestCheckRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))

	assert.NoError(t, Check(path))
}

func TestCheckMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.xlsx")

	err := Check(path)
	assert.ErrorIs(t, err, ErrFileNotExist)
	assert.Equal(t, "file does not exist: "+path, err.Error())

	var pathErr *PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, path, pathErr.Path)
}

func TestCheckDirectory(t *testing.T) {
	dir := t.TempDir()

	err := Check(dir)
	assert.ErrorIs(t, err, ErrNotAFile)
	assert.Equal(t, "not a file: "+dir, err.Error())
}

func TestCheckUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read any file")
	}
	path := filepath.Join(t.TempDir(), "locked.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0000))

	assert.ErrorIs(t, Check(path), ErrNotReadable)
}

func TestFileScannerScanStopsAtFirstFailure(t *testing.T) {
	tempDir := t.TempDir()
	good := filepath.Join(tempDir, "good.xlsx")
	require.NoError(t, os.WriteFile(good, []byte("data"), 0644))
	missing := filepath.Join(tempDir, "missing.xlsx")
	dir := filepath.Join(tempDir, "dir.xlsx")
	require.NoError(t, os.Mkdir(dir, 0755))

	err := NewFileScanner([]string{good, missing, dir}).Scan()
	assert.ErrorIs(t, err, ErrFileNotExist)
	assert.NotErrorIs(t, err, ErrNotAFile)

	assert.NoError(t, NewFileScanner([]string{good, good}).Scan())
	assert.NoError(t, NewFileScanner(nil).Scan())
}

func TestFileScannerAbsPaths(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	paths := NewFileScanner([]string{"rel.xlsx", "/abs/file.csv"}).AbsPaths()
	assert.Equal(t, []string{filepath.Join(cwd, "rel.xlsx"), "/abs/file.csv"}, paths)
}
