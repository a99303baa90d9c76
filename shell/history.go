package shell

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// History is an ordered, most-recent-first list of previously entered
// lines (spec §4.9). It neither reads nor writes the list during
// evaluation; the shell only touches it around a prompt read.
type History struct {
	path    string
	maxSize int64
	logger  *zap.Logger
	lines   []string
}

// NewHistory constructs a History backed by path, rotating a backup
// once the file grows past maxSize bytes (grounded on the size-based
// backup rotation in the teacher's history manager).
func NewHistory(path string, maxSize int64, logger *zap.Logger) *History {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &History{path: path, maxSize: maxSize, logger: logger}
}

// Add prepends line iff it is non-empty and differs from the current
// head (spec §4.9). Callers are responsible for not calling Add while
// silent.
func (h *History) Add(line string) {
	if line == "" {
		return
	}
	if len(h.lines) > 0 && h.lines[0] == line {
		return
	}
	h.lines = append([]string{line}, h.lines...)
}

// Lines returns the history, most-recent first.
func (h *History) Lines() []string {
	return h.lines
}

// Load reads the history file, most-recent-first line order, replacing
// any in-memory history. A missing file is not an error.
func (h *History) Load() error {
	f, err := os.Open(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	h.lines = lines
	return nil
}

// Save persists the history, rotating the existing file to a
// timestamped backup first if it has grown past maxSize.
func (h *History) Save() error {
	if info, err := os.Stat(h.path); err == nil && info.Size() >= h.maxSize {
		backup := fmt.Sprintf("%s.bak-%d", h.path, time.Now().Unix())
		if err := os.Rename(h.path, backup); err != nil {
			h.logger.Warn("failed to back up history file", zap.String("backup", backup), zap.Error(err))
		} else {
			h.logger.Info("history backup created", zap.String("backup", backup))
		}
	}

	f, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range h.lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return w.Flush()
}
