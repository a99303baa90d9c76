package shell

import (
	"bufio"
	"fmt"
	"os"
)

// runScript executes every line of the file at path in this shell.
// "source" (silent=true) suppresses any interactive echoing for the
// duration; "run" (silent=false) leaves the current silence setting as
// the user configured it. Both distinguish themselves from the
// builtin table only by this flag — the original's "launches a nested
// shell" is realized here as running the script against the same
// in-process state rather than spawning a second wsh binary.
func (sh *Shell) runScript(path string, silent bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 1, err
	}
	defer f.Close()

	priorSilent := sh.silent
	if silent {
		sh.silent = true
	}
	defer func() { sh.silent = priorSilent }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if err := sh.EvalLine(line); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			continue
		}
		if sh.exitRequested {
			return sh.exitCode, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return 1, err
	}

	return sh.lastStatus, nil
}
