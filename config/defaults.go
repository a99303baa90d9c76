package config

// Default values for shell-wide configuration, overridden in priority
// order: process environment > .env file > these defaults.
const (
	DefaultPrompt         = "$ "
	DefaultRCFilename     = ".wshrc"
	DefaultMaxHistorySize = 50 * 1024 * 1024 // 50MB, see HISTORY_MAX_SIZE
	DefaultHistoryFile    = ".wsh_history"
)
