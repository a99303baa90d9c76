package shell

import (
	"bytes"
	"io"
	"os"

	"github.com/l-donovan/wsh/parser"
)

// runSubCommand evaluates list with stdout and stderr both captured
// into a buffer, used for backtick expansion (spec §4.4 "Sub-command").
// Rather than multiplexing one long-lived capture pipe across every
// sub-command on a line, each capture gets its own pipe and completes
// before the caller resumes (spec §9 open question (c)).
func (sh *Shell) runSubCommand(list *parser.CommandList) (string, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}

	oldOut, oldErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = w, w

	var buf bytes.Buffer
	copyDone := make(chan struct{})
	go func() {
		io.Copy(&buf, r)
		close(copyDone)
	}()

	evalErr := sh.EvalCommandList(list)

	w.Close()
	os.Stdout, os.Stderr = oldOut, oldErr
	<-copyDone
	r.Close()

	return buf.String(), evalErr
}
