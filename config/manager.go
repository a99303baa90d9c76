// Package config centralizes configuration lookups shared across the
// shell's ambient subsystems (logging, history rotation, the prompt).
// Priority order, high to low: process environment, .env file, defaults.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Manager resolves configuration values by name, reloadable via Load.
type Manager struct {
	logger *zap.Logger
	loaded bool
}

// New creates a Manager bound to logger for diagnostics.
func New(logger *zap.Logger) *Manager {
	return &Manager{logger: logger}
}

// Load reads a .env file (if present) into the process environment. It
// never overwrites variables already set, so the environment always
// wins over the file per the priority order above.
func (m *Manager) Load() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		m.logger.Warn("could not load .env file", zap.Error(err))
	}
	m.loaded = true
}

// Reload re-reads the .env file. Like Load it never overwrites a
// variable that is already set, and the first Load has set every key
// the file held then, so only keys added to the file since take
// effect; changed values of keys loaded earlier are not picked up.
func (m *Manager) Reload() {
	m.Load()
}

// Prompt returns WSH_PROMPT or DefaultPrompt.
func (m *Manager) Prompt() string {
	if p := os.Getenv("WSH_PROMPT"); p != "" {
		return p
	}
	return DefaultPrompt
}

// MaxHistorySize parses HISTORY_MAX_SIZE (accepting suffixes KB/MB/GB)
// or returns DefaultMaxHistorySize.
func (m *Manager) MaxHistorySize() int64 {
	raw := os.Getenv("HISTORY_MAX_SIZE")
	if raw == "" {
		return DefaultMaxHistorySize
	}
	size, err := parseSize(raw)
	if err != nil || size <= 0 {
		return DefaultMaxHistorySize
	}
	return size
}

// parseSize converts a human size string like "50MB" or "100KB" to bytes.
func parseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	multiplier := int64(1)

	switch {
	case strings.HasSuffix(s, "GB"):
		multiplier = 1024 * 1024 * 1024
		s = strings.TrimSuffix(s, "GB")
	case strings.HasSuffix(s, "MB"):
		multiplier = 1024 * 1024
		s = strings.TrimSuffix(s, "MB")
	case strings.HasSuffix(s, "KB"):
		multiplier = 1024
		s = strings.TrimSuffix(s, "KB")
	case strings.HasSuffix(s, "B"):
		s = strings.TrimSuffix(s, "B")
	}

	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return n * multiplier, nil
}
