//go:build !windows && !darwin

package fontdir

import (
	"os"
	"path/filepath"
)

// BoldSans lists the msttcorefonts names for Arial Bold and Arial.
var BoldSans = []string{"arialbd.ttf", "Arial_Bold.ttf", "arial.ttf"}

// Dirs returns the XDG data font directories followed by the system ones.
func Dirs() []string {
	var dirs []string
	if data := os.Getenv("XDG_DATA_HOME"); data != "" {
		dirs = append(dirs, filepath.Join(data, "fonts"))
	}
	if home := homeDir(); home != "" {
		dirs = append(dirs,
			filepath.Join(home, ".local", "share", "fonts"),
			filepath.Join(home, ".fonts"),
		)
	}
	return appendNonEmpty(dirs,
		"/usr/local/share/fonts",
		"/usr/share/fonts",
	)
}
