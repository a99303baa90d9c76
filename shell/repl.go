package shell

import (
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"
	"go.uber.org/zap"
)

// RunInteractive drives the read-eval-print loop: it reads a line from
// the liner-backed input collaborator, evaluates it, appends it to
// history when appropriate (spec §4.9), and repeats until the user
// exits or requests shutdown. It executes the rc file first, in silent
// mode (spec §6 "Rc file").
func (sh *Shell) RunInteractive() int {
	if rc := rcPath(); rc != "" {
		if _, err := sh.runScript(rc, true); err != nil {
			sh.logger.Warn("rc file failed", zap.String("path", rc), zap.Error(err))
		}
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for _, h := range sh.history.Lines() {
		line.AppendHistory(h)
	}

	for {
		input, err := line.Prompt(sh.RenderPrompt())
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			fmt.Println()
			return sh.exitCode
		}

		if !sh.silent {
			sh.history.Add(input)
			line.AppendHistory(input)
		}

		if strings.TrimSpace(input) == "" {
			continue
		}

		if err := sh.EvalLine(input); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		if sh.exitRequested {
			return sh.exitCode
		}
	}
}
