package builtin

import "sort"

// fakeState is a minimal in-memory State used by the builtin tests.
type fakeState struct {
	env         map[string]string
	cwd         string
	previousDir string
	lastStatus  int
	skipNext    bool
	silent      bool
	aliases     map[string]string
	withStack   []withFrame
	reloaded    bool
	history     []string
	sourced     []string
	ran         []string
	killed      []string
	resumed     bool
	resumeCode      int
	resumeSuspended bool
}

type withFrame struct {
	name     string
	hadPrior bool
	prior    string
}

func newFakeState() *fakeState {
	return &fakeState{
		env:     map[string]string{},
		aliases: map[string]string{},
		cwd:     "/start",
	}
}

func (f *fakeState) Getenv(name string) string { return f.env[name] }

func (f *fakeState) Setenv(name, value string) error {
	f.env[name] = value
	return nil
}

func (f *fakeState) Unsetenv(name string) error {
	delete(f.env, name)
	return nil
}

func (f *fakeState) Cwd() (string, error) { return f.cwd, nil }

func (f *fakeState) Chdir(path string) error {
	f.cwd = path
	return nil
}

func (f *fakeState) PreviousDir() string          { return f.previousDir }
func (f *fakeState) SetPreviousDir(path string)   { f.previousDir = path }
func (f *fakeState) LastStatus() int              { return f.lastStatus }
func (f *fakeState) SetSkipNext(skip bool)        { f.skipNext = skip }
func (f *fakeState) Silent() bool                 { return f.silent }
func (f *fakeState) SetSilent(silent bool)        { f.silent = silent }

func (f *fakeState) Reload() error {
	f.reloaded = true
	return nil
}

func (f *fakeState) Aliases() map[string]string { return f.aliases }

func (f *fakeState) Alias(name string) (string, bool) {
	v, ok := f.aliases[name]
	return v, ok
}

func (f *fakeState) SetAlias(name, value string) { f.aliases[name] = value }
func (f *fakeState) DeleteAlias(name string)      { delete(f.aliases, name) }

func (f *fakeState) PushWith(name, value string) error {
	prior, had := f.env[name]
	f.withStack = append(f.withStack, withFrame{name: name, hadPrior: had, prior: prior})
	f.env[name] = value
	return nil
}

func (f *fakeState) Without() {
	for i := len(f.withStack) - 1; i >= 0; i-- {
		frame := f.withStack[i]
		if frame.hadPrior {
			f.env[frame.name] = frame.prior
		} else {
			delete(f.env, frame.name)
		}
	}
	f.withStack = nil
}

func (f *fakeState) Which(name string) (string, string) {
	if v, ok := f.aliases[name]; ok {
		return "alias", v
	}
	if IsBuiltin(name) {
		return "builtin", ""
	}
	return "", ""
}

func (f *fakeState) SuspendedPID(slot int) (int, bool) { return 0, false }

func (f *fakeState) ResumeForeground() (int, bool, error) {
	f.resumed = true
	return f.resumeCode, f.resumeSuspended, nil
}

func (f *fakeState) Kill(target string) error {
	f.killed = append(f.killed, target)
	return nil
}

func (f *fakeState) RunFile(path string) (int, error) {
	f.ran = append(f.ran, path)
	return 0, nil
}

func (f *fakeState) SourceFile(path string) error {
	f.sourced = append(f.sourced, path)
	return nil
}

func (f *fakeState) History() []string { return f.history }

func (f *fakeState) Version() (string, string, string) { return "1", "0", "0" }

func (f *fakeState) BuiltinNames() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
