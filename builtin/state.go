package builtin

// State is everything a builtin may observe or mutate on the running
// shell. It is satisfied by *shell.Shell; builtin never imports shell
// itself, so the dependency only runs one way.
type State interface {
	Getenv(name string) string
	Setenv(name, value string) error
	Unsetenv(name string) error

	Cwd() (string, error)
	Chdir(path string) error
	PreviousDir() string
	SetPreviousDir(path string)

	LastStatus() int
	SetSkipNext(skip bool)

	Silent() bool
	SetSilent(silent bool)

	// Reload rebuilds the executable map from PATH and re-reads the .env
	// configuration layer (spec §4.8 "reload"). No rc file is read.
	Reload() error

	Aliases() map[string]string
	Alias(name string) (string, bool)
	SetAlias(name, value string)
	DeleteAlias(name string)

	// PushWith records the prior value (or absence) of name so a later
	// Without call can restore it, then sets name=value (spec §9
	// "with/without scope", modelled as a stack of save frames).
	PushWith(name, value string) error
	// Without pops every pushed frame, restoring each variable to its
	// prior state.
	Without()

	// Which resolves name the way §4.5 resolution would, without
	// running anything. kind is "alias" (detail: the alias text),
	// "builtin", "path" (detail: the absolute path), or "" if
	// unresolvable.
	Which(name string) (kind string, detail string)

	// SuspendedPID looks up a suspended job by its "%N" slot index.
	SuspendedPID(slot int) (pid int, ok bool)
	// ResumeForeground SIGCONTs the most recently suspended job and
	// resumes waiting on it in the foreground. If the job is stopped
	// again before exiting, suspended is true and code is meaningless;
	// otherwise code is the job's actual exit status.
	ResumeForeground() (code int, suspended bool, err error)
	// Kill sends SIGTERM to pid (numeric) or to the job at the given
	// "%N" slot index.
	Kill(target string) error

	// RunFile executes the named script against the current shell,
	// leaving the silent setting as it is (spec's "run" builtin).
	RunFile(path string) (exitCode int, err error)
	// SourceFile executes the named script in the current shell, in
	// silent mode (spec's "source" builtin).
	SourceFile(path string) error

	History() []string

	Version() (major, minor, patch string)
	BuiltinNames() []string
}
