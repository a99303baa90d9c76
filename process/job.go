package process

import (
	"os/exec"

	"github.com/google/uuid"
)

// Job tracks one spawned external command from Start through its
// eventual exit, whether it runs in the foreground, background, or is
// currently suspended.
type Job struct {
	ID   uuid.UUID
	Cmd  *exec.Cmd
	done chan error
}

func newJob(cmd *exec.Cmd) *Job {
	return &Job{ID: uuid.New(), Cmd: cmd, done: make(chan error, 1)}
}

// PID returns the job's process ID.
func (j *Job) PID() int {
	if j.Cmd.Process == nil {
		return 0
	}
	return j.Cmd.Process.Pid
}
