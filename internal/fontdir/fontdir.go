// Package fontdir knows where each platform keeps its TrueType fonts and
// which file names hold its bold sans-serif face.
package fontdir

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Find walks dirs in order and returns the first regular file whose base
// name matches one of names, case-insensitively. Names are tried in
// priority order: every directory is searched for names[0] before
// names[1] is considered.
func Find(dirs, names []string) (string, bool) {
	for _, name := range names {
		for _, dir := range dirs {
			if path, ok := findIn(dir, name); ok {
				return path, true
			}
		}
	}
	return "", false
}

func findIn(root, name string) (string, bool) {
	var found string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, a missing root ends the walk.
			if path == root {
				return err
			}
			return nil
		}
		if d.IsDir() || !strings.EqualFold(d.Name(), name) {
			return nil
		}
		if info, err := d.Info(); err != nil || !info.Mode().IsRegular() {
			return nil
		}
		found = path
		return fs.SkipAll
	})
	return found, found != ""
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

func appendNonEmpty(dst []string, dirs ...string) []string {
	for _, d := range dirs {
		if d != "" {
			dst = append(dst, d)
		}
	}
	return dst
}
