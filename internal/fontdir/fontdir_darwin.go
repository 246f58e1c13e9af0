package fontdir

import "path/filepath"

// BoldSans lists Arial Bold before regular Arial.
var BoldSans = []string{"Arial Bold.ttf", "Arial.ttf"}

// Dirs returns the system and per-user font directories.
func Dirs() []string {
	var dirs []string
	if home := homeDir(); home != "" {
		dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
	}
	return appendNonEmpty(dirs,
		"/Library/Fonts",
		"/System/Library/Fonts/Supplemental",
		"/System/Library/Fonts",
	)
}
