package shell

import (
	"os"
	"path/filepath"

	"github.com/l-donovan/wsh/config"
	"github.com/l-donovan/wsh/utils"
)

// bootstrapPath sets PATH from /etc/paths and /etc/paths.d/* when PATH
// is unset (spec §6 "PATH bootstrap").
func bootstrapPath() {
	if os.Getenv("PATH") != "" {
		return
	}
	if p := utils.BootstrapPath(); p != "" {
		os.Setenv("PATH", p)
	}
}

// rcPath returns the rc file to execute on interactive startup:
// "./.wshrc" if present, else "$HOME/.wshrc" if present, else "" (spec
// §6 "Rc file").
func rcPath() string {
	if _, err := os.Stat(config.DefaultRCFilename); err == nil {
		return config.DefaultRCFilename
	}
	home := utils.HomeDir()
	candidate := filepath.Join(home, config.DefaultRCFilename)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}
