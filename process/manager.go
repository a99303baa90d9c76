// Package process drives external command execution: foreground
// waiting with SIGTSTP/SIGCONT suspension, background jobs, and signal
// delivery to suspended jobs (spec §4.7).
package process

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// ErrSuspended is returned by RunForeground/ResumeForeground when the
// job was stopped by SIGTSTP rather than exiting. The caller (the
// evaluator) should return to the prompt without updating last_status.
var ErrSuspended = errors.New("process: job suspended")

// Manager owns the suspended-job table and the last-launched
// background PID (spec §4.7's "Suspension" and "Background commands").
type Manager struct {
	logger *zap.Logger

	mu         sync.Mutex
	suspended  []*Job
	background []*Job
	lastBgPID  int
}

// NewManager constructs a Manager. logger may be nil, in which case a
// no-op logger is used.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{logger: logger}
}

// RunForeground starts cmd and waits for it, honouring SIGTSTP
// suspension. On normal exit it returns the exit code and nil error. If
// the job is suspended it returns ErrSuspended; the job is recorded in
// the suspended table for a later ResumeForeground or Kill by slot.
func (m *Manager) RunForeground(cmd *exec.Cmd) (int, error) {
	if err := cmd.Start(); err != nil {
		spawnsTotal.WithLabelValues("error").Inc()
		return 1, err
	}
	spawnsTotal.WithLabelValues("ok").Inc()

	job := newJob(cmd)
	go func() { job.done <- cmd.Wait() }()

	return m.waitForeground(job)
}

// ResumeForeground sends SIGCONT to the most recently suspended job
// and resumes waiting on it in the foreground (spec's "fg" builtin).
func (m *Manager) ResumeForeground() (int, error) {
	m.mu.Lock()
	if len(m.suspended) == 0 {
		m.mu.Unlock()
		return 0, errors.New("process: no suspended job")
	}
	job := m.suspended[len(m.suspended)-1]
	m.suspended = m.suspended[:len(m.suspended)-1]
	m.mu.Unlock()

	if err := job.Cmd.Process.Signal(unix.SIGCONT); err != nil {
		return 1, err
	}
	return m.waitForeground(job)
}

// waitForeground blocks until job exits or is (re-)suspended by
// SIGTSTP delivered to the shell itself.
func (m *Manager) waitForeground(job *Job) (int, error) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, unix.SIGTSTP)
	defer signal.Stop(sigCh)

	select {
	case err := <-job.done:
		return exitCodeFromWaitErr(err), nil
	case <-sigCh:
		if err := job.Cmd.Process.Signal(unix.SIGSTOP); err != nil {
			m.logger.Warn("failed to suspend job", zap.Int("pid", job.PID()), zap.Error(err))
		}
		m.mu.Lock()
		m.suspended = append(m.suspended, job)
		m.mu.Unlock()
		suspensionsTotal.Inc()
		m.logger.Info("job suspended", zap.Int("pid", job.PID()))
		return 0, ErrSuspended
	}
}

// RunBackground starts cmd without waiting for it and reaps it
// asynchronously. The returned pid is recorded as the last-launched
// background PID (spec §9 open question (b): last_status reflects the
// launch outcome, not the eventual exit).
func (m *Manager) RunBackground(cmd *exec.Cmd) (pid int, err error) {
	if err := cmd.Start(); err != nil {
		spawnsTotal.WithLabelValues("error").Inc()
		return 0, err
	}
	spawnsTotal.WithLabelValues("ok").Inc()

	job := newJob(cmd)
	backgroundJobsGauge.Inc()

	m.mu.Lock()
	m.background = append(m.background, job)
	m.lastBgPID = job.PID()
	m.mu.Unlock()

	go func() {
		err := cmd.Wait()
		backgroundJobsGauge.Dec()
		m.logger.Debug("background job exited", zap.Int("pid", job.PID()), zap.Error(err))
		m.mu.Lock()
		m.removeBackground(job)
		m.mu.Unlock()
	}()

	return job.PID(), nil
}

func (m *Manager) removeBackground(target *Job) {
	for i, j := range m.background {
		if j == target {
			m.background = append(m.background[:i], m.background[i+1:]...)
			return
		}
	}
}

// LastBackgroundPID returns the PID most recently launched in the
// background, or 0 if none has launched yet.
func (m *Manager) LastBackgroundPID() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastBgPID
}

// SuspendedPID resolves a "%N" slot (1-based) to its PID.
func (m *Manager) SuspendedPID(slot int) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if slot < 1 || slot > len(m.suspended) {
		return 0, false
	}
	return m.suspended[slot-1].PID(), true
}

// Kill sends SIGTERM to target, which is either a bare numeric PID or a
// "%N" suspended-table slot index (spec §4.7's "kill" builtin).
func (m *Manager) Kill(target string) error {
	var pid int

	if strings.HasPrefix(target, "%") {
		slot, err := strconv.Atoi(target[1:])
		if err != nil {
			return fmt.Errorf("process: invalid job slot %q", target)
		}
		found, ok := m.SuspendedPID(slot)
		if !ok {
			return fmt.Errorf("process: no suspended job at slot %d", slot)
		}
		pid = found
	} else {
		n, err := strconv.Atoi(target)
		if err != nil {
			return fmt.Errorf("process: invalid pid %q", target)
		}
		pid = n
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return proc.Signal(unix.SIGTERM)
}

func exitCodeFromWaitErr(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
