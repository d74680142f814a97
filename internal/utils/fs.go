package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// StripExt returns the file name with its extension removed. Names without
// an extension come back unchanged; dotfiles like ".forceignore" have no
// extension by this rule and are returned as-is.
func StripExt(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		// The whole name is the "extension" (e.g. ".forceignore").
		return name
	}
	return strings.TrimSuffix(name, ext)
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	return path
}
