package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteDefinitions writes a YAML definitions document to a file in a
// per-test temporary directory and returns its path.
//
// Example:
//
//	path := testutil.WriteDefinitions(t, "Colour:\n  values:\n    RED: 1\n")
//	set, err := enumfile.LoadFile(path)
func WriteDefinitions(t *testing.T, doc string) string {
	t.Helper()
	return WriteFile(t, "enums.yml", doc)
}

// WriteFile writes content to name inside t.TempDir().
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// MissingPath returns a path inside t.TempDir() that does not exist.
func MissingPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing", name)
}
