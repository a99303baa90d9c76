// Package builtin implements wsh's built-in commands. Per the redesign
// in spec §9 ("Effect-record IPC vs direct mutation"), builtins run
// in-process in the parent and mutate shell state directly through the
// State interface rather than writing to a shared-memory effect record
// read back after a fork. A builtin that needs its output piped has its
// stdout/stderr redirected around the call by the caller, same as an
// external command would.
package builtin

import "fmt"

// Result is a builtin's outcome: the exit status that becomes
// last_status, and whether the shell should terminate after applying
// it (the vestige of FLAG_EXIT).
type Result struct {
	Code int
	Exit bool
}

// ok is the zero-value "ran fine" result (CODE_CONTINUE in the
// original's vocabulary).
func ok() Result { return Result{Code: 0} }

// fail is returned when a builtin is called with too few arguments
// (spec §4.8 "If too few arguments are supplied... returns CODE_FAIL").
func fail() Result { return Result{Code: 1} }

// Func is a builtin's implementation. argv[0] is the builtin's own
// name; argv[1:] are its arguments, already fully expanded.
type Func func(state State, argv []string) Result

// Registry maps builtin names to their implementations.
var Registry = map[string]Func{
	"exit":    biExit,
	"cd":      biCd,
	"about":   biAbout,
	"and":     biAnd,
	"or":      biOr,
	"silence": biSilence,
	"set":     biSet,
	"unset":   biUnset,
	"ladd":    biLadd,
	"radd":    biRadd,
	"reload":  biReload,
	"alias":   biAlias,
	"unalias": biUnalias,
	"with":    biWith,
	"without": biWithout,
	"exists":  biExists,
	"equals":  biEquals,
	"which":   biWhich,
	"fg":      biFg,
	"kill":    biKill,
	"run":     biRun,
	"source":  biSource,
	"history": biHistory,
}

// IsBuiltin reports whether name names a registered builtin.
func IsBuiltin(name string) bool {
	_, ok := Registry[name]
	return ok
}

// Dispatch runs the named builtin. It panics if name is not registered;
// callers must check IsBuiltin (or go through alias/PATH resolution
// first, per §4.5) before calling Dispatch.
func Dispatch(state State, argv []string) Result {
	fn, found := Registry[argv[0]]
	if !found {
		panic(fmt.Sprintf("builtin: dispatch of unregistered name %q", argv[0]))
	}
	return fn(state, argv)
}
