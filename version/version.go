// Package version holds the build-time version constants consumed by the
// \v and \V prompt escapes and by the "about" builtin.
package version

import "fmt"

const (
	// Major, Minor and Patch are fixed at compile time; as constants
	// they cannot be set with -ldflags -X.
	Major = "1"
	Minor = "0"
	Patch = "0"
)

// ShellName is the value the \s prompt escape expands to and the name
// reported by "about".
const ShellName = "wsh"

// Short returns "MAJOR.MINOR", the value of the \v prompt escape.
func Short() string {
	return fmt.Sprintf("%s.%s", Major, Minor)
}

// Full returns "MAJOR.MINOR.PATCH", the value of the \V prompt escape.
func Full() string {
	return fmt.Sprintf("%s.%s.%s", Major, Minor, Patch)
}
