package shell

import (
	"os"
	"path/filepath"
	"strings"
)

// buildExecutableMap scans every directory on PATH and records each
// non-directory entry with an execute permission bit, its basename
// mapped to its absolute path
// (spec §4.5 step 3). Earlier PATH entries win on collision, matching
// ordinary $PATH lookup precedence.
func buildExecutableMap() map[string]string {
	m := make(map[string]string)

	for _, dir := range strings.Split(os.Getenv("PATH"), ":") {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if _, exists := m[entry.Name()]; exists {
				continue
			}
			info, err := entry.Info()
			if err != nil || info.Mode()&0111 == 0 {
				continue
			}
			m[entry.Name()] = filepath.Join(dir, entry.Name())
		}
	}

	return m
}
