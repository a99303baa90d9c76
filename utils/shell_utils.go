package utils

import "os"

// HomeDir returns the invoking user's home directory, preferring $HOME
// and falling back to os.UserHomeDir.
func HomeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}
