package utils

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces a leading "~" with the invoking user's home
// directory. Only the bare "~" and "~/..." forms are supported;
// "~username" and a "~" anywhere else are left untouched. This is
// narrower than argument expansion, which replaces every "~".
func ExpandTilde(path string) string {
	home := os.Getenv("HOME")
	if home == "" {
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}
	if home == "" {
		return path
	}

	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// BootstrapPath computes the value PATH should take when it is unset at
// startup: the lines of /etc/paths, followed by the lines of every
// regular file under /etc/paths.d, joined with ':' (§6 PATH bootstrap).
func BootstrapPath() string {
	var dirs []string

	dirs = append(dirs, readLines("/etc/paths")...)

	entries, err := os.ReadDir("/etc/paths.d")
	if err == nil {
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			info, err := e.Info()
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			dirs = append(dirs, readLines(filepath.Join("/etc/paths.d", e.Name()))...)
		}
	}

	return strings.Join(dirs, ":")
}

func readLines(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
