// Package fsutil holds the file-writing helpers shared by the icon and
// manifest writers.
package fsutil

import (
	"os"
	"path/filepath"
)

const (
	DirPerm  = 0o755
	FilePerm = 0o644
)

// AtomicWrite writes data to path via a temporary file + rename so readers
// never observe a partially written file. The parent directory is created
// if needed and an existing file at path is replaced.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
