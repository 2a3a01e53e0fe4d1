// Package watch re-reads a file whenever it changes on disk.
package watch

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/verte-zerg/textstat/internal/debounce"
)

// FileWatcher watches a single file and hands its content to a callback.
// Bursts of write events are collapsed by a debouncer.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	debouncer *debounce.Debouncer
	filePath  string
	onChange  func(text string)
	logger    *slog.Logger
	done      chan struct{}
	mu        sync.Mutex
	running   bool
}

// NewFileWatcher creates a watcher for filePath.
func NewFileWatcher(filePath string, delay time.Duration, onChange func(text string), logger *slog.Logger) (*FileWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FileWatcher{
		watcher:   watcher,
		debouncer: debounce.New(delay),
		filePath:  filePath,
		onChange:  onChange,
		logger:    logger,
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching the file for changes.
func (fw *FileWatcher) Start() error {
	fw.mu.Lock()
	if fw.running {
		fw.mu.Unlock()
		return nil
	}
	fw.running = true
	fw.mu.Unlock()

	// Editors often replace files on save, so watch the directory.
	dir := filepath.Dir(fw.filePath)
	if err := fw.watcher.Add(dir); err != nil {
		return err
	}

	go fw.watch()
	fw.logger.Debug("file watcher started", "path", fw.filePath)
	return nil
}

func (fw *FileWatcher) watch() {
	filename := filepath.Base(fw.filePath)

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fw.logger.Debug("file changed", "file", fw.filePath, "op", event.Op.String())
				fw.debouncer.Call(fw.reload)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("file watcher error", "error", err)

		case <-fw.done:
			return
		}
	}
}

func (fw *FileWatcher) reload() {
	data, err := os.ReadFile(fw.filePath)
	if err != nil {
		fw.logger.Warn("failed to read watched file", "path", fw.filePath, "error", err)
		return
	}
	fw.onChange(string(data))
}

// Stop stops the file watcher and cancels any pending reload.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if !fw.running {
		return fw.watcher.Close()
	}

	fw.running = false
	fw.debouncer.Stop()
	close(fw.done)
	return fw.watcher.Close()
}
