package process

import (
	"os/exec"
	"testing"
	"time"
)

func TestRunForegroundExitCode(t *testing.T) {
	m := NewManager(nil)
	cmd := exec.Command("sh", "-c", "exit 3")
	code, err := m.RunForeground(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if code != 3 {
		t.Fatalf("got %d", code)
	}
}

func TestRunForegroundSuccess(t *testing.T) {
	m := NewManager(nil)
	cmd := exec.Command("sh", "-c", "exit 0")
	code, err := m.RunForeground(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if code != 0 {
		t.Fatalf("got %d", code)
	}
}

func TestRunBackgroundReturnsPID(t *testing.T) {
	m := NewManager(nil)
	cmd := exec.Command("sh", "-c", "sleep 0.1")
	pid, err := m.RunBackground(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if pid <= 0 {
		t.Fatalf("expected positive pid, got %d", pid)
	}
	if m.LastBackgroundPID() != pid {
		t.Fatalf("expected LastBackgroundPID %d, got %d", pid, m.LastBackgroundPID())
	}
	time.Sleep(200 * time.Millisecond)
}

func TestKillInvalidTarget(t *testing.T) {
	m := NewManager(nil)
	if err := m.Kill("notanumber"); err == nil {
		t.Fatal("expected error for non-numeric, non-%N target")
	}
}

func TestKillUnknownSlot(t *testing.T) {
	m := NewManager(nil)
	if err := m.Kill("%1"); err == nil {
		t.Fatal("expected error for empty suspended table")
	}
}
