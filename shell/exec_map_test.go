package shell

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuildExecutableMapFindsExecutableFiles(t *testing.T) {
	dir := t.TempDir()
	exePath := filepath.Join(dir, "mytool")
	if err := os.WriteFile(exePath, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	nonExePath := filepath.Join(dir, "notexec")
	if err := os.WriteFile(nonExePath, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PATH", dir)

	m := buildExecutableMap()
	if got, ok := m["mytool"]; !ok || got != exePath {
		t.Fatalf("got %q ok=%v", got, ok)
	}
	if _, ok := m["notexec"]; ok {
		t.Fatal("non-executable file should not be in the map")
	}
}

func TestBuildExecutableMapFirstPathEntryWins(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	pathA := filepath.Join(dirA, "tool")
	pathB := filepath.Join(dirB, "tool")
	os.WriteFile(pathA, []byte(""), 0755)
	os.WriteFile(pathB, []byte(""), 0755)

	t.Setenv("PATH", dirA+":"+dirB)

	m := buildExecutableMap()
	if m["tool"] != pathA {
		t.Fatalf("expected first PATH entry to win, got %q", m["tool"])
	}
}
