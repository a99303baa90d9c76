// Package eval turns a parsed command tree into concrete argv slices:
// variable/tilde expansion, escape processing, sub-command capture, and
// alias resolution (spec §4.4, §4.5).
package eval

import "github.com/l-donovan/wsh/parser"

// Context supplies everything expansion needs from the running shell
// without eval importing the shell/process packages directly.
type Context struct {
	// Getenv looks up an environment variable, returning "" if unset.
	Getenv func(name string) string
	// Home returns the invoking user's home directory for "~" expansion.
	Home func() string
	// RunSubCommand evaluates a parsed command list as a sub-command,
	// returning its captured stdout+stderr unmodified; expansion strips
	// at most one trailing newline from it (§4.4 "Sub-command").
	RunSubCommand func(list *parser.CommandList) (string, error)
}
