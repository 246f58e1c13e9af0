package fontdir

import (
	"os"
	"path/filepath"
)

// BoldSans lists Arial Bold before regular Arial.
var BoldSans = []string{"arialbd.ttf", "arial.ttf"}

// Dirs returns the system and per-user font directories.
func Dirs() []string {
	root := os.Getenv("WINDIR")
	if root == "" {
		root = `C:\Windows`
	}
	var dirs []string
	dirs = appendNonEmpty(dirs, filepath.Join(root, "Fonts"))
	if local := os.Getenv("LOCALAPPDATA"); local != "" {
		dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
	}
	return dirs
}
