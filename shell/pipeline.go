package shell

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/l-donovan/wsh/builtin"
	"github.com/l-donovan/wsh/eval"
	"github.com/l-donovan/wsh/parser"
	"github.com/l-donovan/wsh/process"
	"github.com/l-donovan/wsh/utils"
)

// EvalLine parses and evaluates one input line (spec §4.6). A lex or
// parse error aborts only this line; it is the caller's job to print
// the diagnostic and leave last_status untouched.
func (sh *Shell) EvalLine(line string) error {
	list, err := parser.ParseLine(utils.NormalizeLine(line))
	if err != nil {
		return err
	}
	return sh.EvalCommandList(list)
}

// EvalCommandList walks list in order, applying alias resolution,
// expansion, terminator semantics, and pipe rotation (spec §4.6–§4.7).
func (sh *Shell) EvalCommandList(list *parser.CommandList) error {
	if err := eval.ResolveAliases(list, sh.aliases); err != nil {
		return err
	}

	var pipeInput *os.File

	for i := 0; i < len(list.Commands); i++ {
		cmd := list.Commands[i]

		if sh.skipNext {
			sh.skipNext = false
			continue
		}
		if cmd.Empty() {
			continue
		}

		ctx := sh.evalContext()
		argv, err := ctx.ExpandArgv(cmd.Args)
		if err != nil {
			return err
		}
		if len(argv) == 0 {
			continue
		}

		var pipeOutR, pipeOutW *os.File
		if cmd.PipeNext {
			r, w, perr := os.Pipe()
			if perr != nil {
				return perr
			}
			pipeOutR, pipeOutW = r, w
		}

		status, suspended, runErr := sh.dispatch(argv, pipeInput, pipeOutW, cmd.Background)

		if pipeInput != nil {
			pipeInput.Close()
		}
		if pipeOutW != nil {
			pipeOutW.Close()
		}
		pipeInput = pipeOutR

		if runErr != nil {
			fmt.Fprintln(os.Stderr, runErr)
			status = 1
		}

		if !suspended {
			sh.lastStatus = status
		}

		if cmd.AndNext {
			sh.skipNext = sh.lastStatus != 0
		}
		if cmd.OrNext {
			sh.skipNext = sh.lastStatus == 0
		}

		// The with-scope spans exactly one following command: it stays
		// open after the "with" that opened it, and "without" itself is
		// responsible for clearing it (spec §4.6, §9).
		if sh.HasOpenWithScope() && argv[0] != "with" && argv[0] != "without" {
			sh.Without()
		}

		if sh.exitRequested {
			return nil
		}
	}

	return nil
}

// evalContext builds the eval.Context this shell uses for expansion,
// wiring sub-command capture back through runSubCommand.
func (sh *Shell) evalContext() *eval.Context {
	return &eval.Context{
		Getenv:        os.Getenv,
		Home:          utils.HomeDir,
		RunSubCommand: sh.runSubCommand,
	}
}

// dispatch runs one already-expanded command: a builtin in-process, or
// an external command via the process manager.
func (sh *Shell) dispatch(argv []string, stdin, stdout *os.File, background bool) (status int, suspended bool, err error) {
	if builtin.IsBuiltin(argv[0]) {
		return sh.runBuiltin(argv, stdout)
	}

	resolved := sh.resolveExecutable(argv)
	return sh.runExternal(resolved, stdin, stdout, background)
}

// resolveExecutable replaces argv[0] with its recorded absolute path
// if it is a key in the executable map; otherwise argv[0] is passed
// through verbatim, to be resolved (or fail) via PATH at spawn time
// (spec §4.5 steps 3–4).
func (sh *Shell) resolveExecutable(argv []string) []string {
	path, ok := sh.execMap[argv[0]]
	if !ok {
		return argv
	}
	out := make([]string, len(argv))
	out[0] = path
	copy(out[1:], argv[1:])
	return out
}

// runBuiltin redirects stdout (per spec §9 "piped built-ins must
// redirect their own stdout/stderr"), dispatches, and restores it.
func (sh *Shell) runBuiltin(argv []string, stdout *os.File) (int, bool, error) {
	var oldOut, oldErr *os.File
	if stdout != nil {
		oldOut, oldErr = os.Stdout, os.Stderr
		os.Stdout, os.Stderr = stdout, stdout
	}

	res := builtin.Dispatch(sh, argv)

	if stdout != nil {
		os.Stdout, os.Stderr = oldOut, oldErr
	}

	if res.Exit {
		sh.exitRequested = true
		sh.exitCode = res.Code
	}

	return res.Code, false, nil
}

// runExternal spawns argv as an external process. Foreground spawns
// wait via the process manager (handling SIGTSTP suspension);
// background spawns are launched and left running, contributing their
// launch outcome (not eventual exit) to last_status (spec §9 open
// question (b)).
func (sh *Shell) runExternal(argv []string, stdin, stdout *os.File, background bool) (int, bool, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = os.Environ()

	if stdin != nil {
		cmd.Stdin = stdin
	} else {
		cmd.Stdin = os.Stdin
	}
	if stdout != nil {
		cmd.Stdout = stdout
		cmd.Stderr = stdout
	} else {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if background {
		if _, err := sh.procs.RunBackground(cmd); err != nil {
			return 1, false, nil
		}
		return 0, false, nil
	}

	code, err := sh.procs.RunForeground(cmd)
	if err == process.ErrSuspended {
		return 0, true, nil
	}
	if err != nil {
		return 1, false, err
	}
	return code, false, nil
}
