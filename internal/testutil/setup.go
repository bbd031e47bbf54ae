package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteLink writes data to a file named name inside a fresh temporary
// directory and returns its path. Calls t.Fatal if the write fails.
//
// Example:
//
//	path := testutil.WriteLink(t, "notepad.lnk", testutil.NewBuilder().Bytes())
func WriteLink(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	writeFile(t, path, data)
	return path
}

// WriteTree writes every file in files (relative path to contents) beneath a
// fresh temporary directory and returns the directory.
func WriteTree(t *testing.T, files map[string][]byte) string {
	t.Helper()
	root := t.TempDir()
	for rel, data := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create fixture dir: %v", err)
		}
		writeFile(t, path, data)
	}
	return root
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", path, err)
	}
}
