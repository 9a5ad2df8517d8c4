// Package pathutil provides path manipulation utilities.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading ~ in path with the user's home directory.
// If the home directory cannot be determined, the path is returned unchanged.
func ExpandHome(path string) string {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Display formats a working directory for human-readable trace messages,
// normalized with a trailing OS path separator. An empty dir means the
// current directory.
func Display(dir string) string {
	if dir == "" {
		dir = "."
	}
	sep := string(os.PathSeparator)
	if strings.HasSuffix(dir, sep) {
		return dir
	}
	return dir + sep
}
