// Package shell ties every other package into the running wsh process:
// state (environment overrides, aliases, history, jobs), the evaluator
// that walks a parsed command list, and the interactive REPL.
package shell

import (
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/l-donovan/wsh/builtin"
	"github.com/l-donovan/wsh/config"
	"github.com/l-donovan/wsh/process"
	"github.com/l-donovan/wsh/utils"
	"github.com/l-donovan/wsh/version"
)

// withFrame is one saved variable from an open "with" scope (spec §9
// "with/without scope", modelled as a stack of save frames).
type withFrame struct {
	name     string
	hadPrior bool
	prior    string
}

// Shell holds all mutable state shared across one evaluation session:
// last exit status, the skip_next/silent flags, the previous working
// directory, alias and executable maps, the with-scope stack, and the
// process manager's job table.
type Shell struct {
	logger *zap.Logger
	cfg    *config.Manager
	procs  *process.Manager
	watch  *process.PathWatcher

	history *History

	aliases map[string]string
	execMap map[string]string

	lastStatus int
	skipNext   bool
	silent     bool

	previousDir string
	withStack   []withFrame

	exitRequested bool
	exitCode      int
}

// New constructs a Shell with PATH bootstrapped, the executable map
// built, and history loaded from the default history file.
func New(logger *zap.Logger, cfg *config.Manager) (*Shell, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	bootstrapPath()

	home := utils.HomeDir()
	historyPath := home + string(os.PathSeparator) + config.DefaultHistoryFile
	h := NewHistory(historyPath, cfg.MaxHistorySize(), logger)
	if err := h.Load(); err != nil {
		logger.Warn("failed to load history", zap.Error(err))
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("shell: %w", err)
	}

	sh := &Shell{
		logger:      logger,
		cfg:         cfg,
		procs:       process.NewManager(logger),
		history:     h,
		aliases:     make(map[string]string),
		execMap:     buildExecutableMap(),
		previousDir: wd,
	}

	watcher, err := process.NewPathWatcher(rcPath(), logger)
	if err != nil {
		logger.Warn("failed to start path watcher", zap.Error(err))
	} else {
		sh.watch = watcher
		go sh.watchPathChanges()
	}

	return sh, nil
}

// watchPathChanges runs Reload whenever the path watcher observes a
// change to /etc/paths, /etc/paths.d, or the rc file, so "reload"
// becomes automatic rather than mandatory.
func (sh *Shell) watchPathChanges() {
	for range sh.watch.Changed {
		if err := sh.Reload(); err != nil {
			sh.logger.Warn("automatic reload failed", zap.Error(err))
		}
	}
}

// Close persists history and releases the shell's background resources
// (the path watcher). Safe to call more than once.
func (sh *Shell) Close() {
	if err := sh.history.Save(); err != nil {
		sh.logger.Warn("failed to save history", zap.Error(err))
	}
	if sh.watch != nil {
		sh.watch.Close()
		sh.watch = nil
	}
}

// --- builtin.State ---

func (sh *Shell) Getenv(name string) string { return os.Getenv(name) }

func (sh *Shell) Setenv(name, value string) error { return os.Setenv(name, value) }

func (sh *Shell) Unsetenv(name string) error { return os.Unsetenv(name) }

func (sh *Shell) Cwd() (string, error) { return os.Getwd() }

func (sh *Shell) Chdir(path string) error {
	return os.Chdir(utils.ExpandTilde(path))
}

func (sh *Shell) PreviousDir() string { return sh.previousDir }

func (sh *Shell) SetPreviousDir(path string) { sh.previousDir = path }

func (sh *Shell) LastStatus() int { return sh.lastStatus }

func (sh *Shell) SetSkipNext(skip bool) { sh.skipNext = skip }

func (sh *Shell) Silent() bool { return sh.silent }

func (sh *Shell) SetSilent(silent bool) { sh.silent = silent }

// Reload rebuilds the executable map from the current PATH and reloads
// layered config (spec §4.8 "reload"). PATH itself is bootstrapped from
// /etc/paths only when it is unset.
func (sh *Shell) Reload() error {
	bootstrapPath()
	sh.execMap = buildExecutableMap()
	sh.cfg.Reload()
	return nil
}

func (sh *Shell) Aliases() map[string]string { return sh.aliases }

func (sh *Shell) Alias(name string) (string, bool) {
	v, ok := sh.aliases[name]
	return v, ok
}

func (sh *Shell) SetAlias(name, value string) { sh.aliases[name] = value }

func (sh *Shell) DeleteAlias(name string) { delete(sh.aliases, name) }

// PushWith saves name's prior value (or absence) and sets it to value.
func (sh *Shell) PushWith(name, value string) error {
	prior, had := os.LookupEnv(name)
	sh.withStack = append(sh.withStack, withFrame{name: name, hadPrior: had, prior: prior})
	return os.Setenv(name, value)
}

// Without restores every variable saved by the currently open
// with-scope and clears the stack.
func (sh *Shell) Without() {
	for i := len(sh.withStack) - 1; i >= 0; i-- {
		frame := sh.withStack[i]
		if frame.hadPrior {
			os.Setenv(frame.name, frame.prior)
		} else {
			os.Unsetenv(frame.name)
		}
	}
	sh.withStack = nil
}

// HasOpenWithScope reports whether a "with" is waiting for the
// evaluator to close it after the next command (spec §4.6).
func (sh *Shell) HasOpenWithScope() bool { return len(sh.withStack) > 0 }

func (sh *Shell) Which(name string) (string, string) {
	if v, ok := sh.aliases[name]; ok {
		return "alias", v
	}
	if builtin.IsBuiltin(name) {
		return "builtin", ""
	}
	if path, ok := sh.execMap[name]; ok {
		return "path", path
	}
	return "", ""
}

func (sh *Shell) SuspendedPID(slot int) (int, bool) { return sh.procs.SuspendedPID(slot) }

func (sh *Shell) ResumeForeground() (int, bool, error) {
	code, err := sh.procs.ResumeForeground()
	if err == process.ErrSuspended {
		return 0, true, nil
	}
	return code, false, err
}

func (sh *Shell) Kill(target string) error { return sh.procs.Kill(target) }

func (sh *Shell) RunFile(path string) (int, error) {
	return sh.runScript(path, false)
}

func (sh *Shell) SourceFile(path string) error {
	_, err := sh.runScript(path, true)
	return err
}

func (sh *Shell) History() []string { return sh.history.Lines() }

func (sh *Shell) Version() (string, string, string) {
	return version.Major, version.Minor, version.Patch
}

// ExitRequested reports whether a builtin (typically "exit") has asked
// the run loop to stop.
func (sh *Shell) ExitRequested() bool { return sh.exitRequested }

// ExitCode returns the status an "exit" builtin recorded, or the last
// command's status if the shell is stopping for another reason.
func (sh *Shell) ExitCode() int {
	if sh.exitRequested {
		return sh.exitCode
	}
	return sh.lastStatus
}

func (sh *Shell) BuiltinNames() []string {
	names := make([]string, 0, len(builtin.Registry))
	for name := range builtin.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
