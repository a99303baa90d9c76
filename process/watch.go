package process

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// PathWatcher watches the files that feed PATH bootstrap and the rc
// file for changes, so the shell can rebuild its executable map without
// the user running "reload" by hand. The alias map is not touched: a
// changed rc file is not re-executed. This supplements
// the original's synchronous-only reload (spec §4.8 "reload") with the
// kind of filesystem watching the example pack reaches for elsewhere.
type PathWatcher struct {
	watcher *fsnotify.Watcher
	logger  *zap.Logger
	Changed chan struct{}
}

// NewPathWatcher watches /etc/paths, every regular file directly under
// /etc/paths.d, and rcPath (if non-empty and present). Missing paths
// are skipped rather than treated as an error, since none of them are
// required to exist.
func NewPathWatcher(rcPath string, logger *zap.Logger) (*PathWatcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	pw := &PathWatcher{watcher: w, logger: logger, Changed: make(chan struct{}, 1)}

	pw.addIfExists("/etc/paths")
	pw.addDirEntriesIfExist("/etc/paths.d")
	if rcPath != "" {
		pw.addIfExists(rcPath)
	}

	go pw.run()
	return pw, nil
}

func (pw *PathWatcher) addIfExists(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := pw.watcher.Add(path); err != nil {
		pw.logger.Warn("failed to watch path", zap.String("path", path), zap.Error(err))
	}
}

func (pw *PathWatcher) addDirEntriesIfExist(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			pw.addIfExists(filepath.Join(dir, entry.Name()))
		}
	}
}

func (pw *PathWatcher) run() {
	for {
		select {
		case event, ok := <-pw.watcher.Events:
			if !ok {
				return
			}
			pw.logger.Debug("path source changed", zap.String("name", event.Name), zap.String("op", event.Op.String()))
			select {
			case pw.Changed <- struct{}{}:
			default:
			}
		case err, ok := <-pw.watcher.Errors:
			if !ok {
				return
			}
			pw.logger.Warn("path watcher error", zap.Error(err))
		}
	}
}

// Close stops the underlying watcher.
func (pw *PathWatcher) Close() error {
	return pw.watcher.Close()
}
