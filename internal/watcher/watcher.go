// Package watcher wraps fsnotify with debouncing so a burst of editor
// writes to a note file surfaces as one batch of change events.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent represents one file change.
type ChangeEvent struct {
	Path    string
	Op      string
	ModTime time.Time
}

// FileFilter decides whether a path is interesting.
type FileFilter func(path string) bool

// FileWatcher watches paths and emits debounced event batches.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	delay   time.Duration
	filters []FileFilter
	output  chan []ChangeEvent

	mu      sync.Mutex
	pending []ChangeEvent
	timer   *time.Timer
}

// NewFileWatcher creates a watcher with the given debounce delay.
func NewFileWatcher(debounceDelay time.Duration) (*FileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &FileWatcher{
		watcher: fsw,
		delay:   debounceDelay,
		output:  make(chan []ChangeEvent, 10),
	}, nil
}

// AddFilter adds a file filter. With no filters, everything passes.
func (fw *FileWatcher) AddFilter(filter FileFilter) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.filters = append(fw.filters, filter)
}

// MarkdownFilter passes only .md files.
func MarkdownFilter(path string) bool {
	return filepath.Ext(path) == ".md"
}

// AddPath adds one path to watch.
func (fw *FileWatcher) AddPath(path string) error {
	return fw.watcher.Add(path)
}

// AddRecursive adds a directory tree to watch.
func (fw *FileWatcher) AddRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fw.watcher.Add(path)
		}
		return nil
	})
}

// Events returns the debounced batch channel.
func (fw *FileWatcher) Events() <-chan []ChangeEvent {
	return fw.output
}

// Start begins watching until ctx is cancelled.
func (fw *FileWatcher) Start(ctx context.Context) {
	go fw.loop(ctx)
}

// Stop closes the underlying watcher.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()
	return fw.watcher.Close()
}

func (fw *FileWatcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handle(event)
		case _, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// fsnotify errors are transient here; the next event retries
		}
	}
}

func (fw *FileWatcher) handle(event fsnotify.Event) {
	if !fw.passes(event.Name) {
		return
	}

	change := ChangeEvent{
		Path:    event.Name,
		Op:      event.Op.String(),
		ModTime: time.Now(),
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	fw.pending = append(fw.pending, change)
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.delay, fw.flush)
}

func (fw *FileWatcher) flush() {
	fw.mu.Lock()
	batch := fw.pending
	fw.pending = nil
	fw.mu.Unlock()

	if len(batch) == 0 {
		return
	}

	select {
	case fw.output <- batch:
	default:
		// Drop the batch if the consumer is behind; the next change
		// re-triggers a reload anyway
	}
}

func (fw *FileWatcher) passes(path string) bool {
	fw.mu.Lock()
	filters := fw.filters
	fw.mu.Unlock()

	if len(filters) == 0 {
		return true
	}
	for _, filter := range filters {
		if filter(path) {
			return true
		}
	}
	return false
}
