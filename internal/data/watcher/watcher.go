package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/go-timesheets/internal/util"
)

// FileEvent is a change to one of the watched files.
type FileEvent struct {
	Path      string
	Operation string
}

// FileWatcher reports changes to a fixed set of files. The parent directories
// are watched so that files replaced by a rename are still seen.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]struct{}
	events  chan FileEvent

	done      chan struct{}
	closeOnce sync.Once
}

func NewFileWatcher(paths []string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		files:   make(map[string]struct{}, len(paths)),
		events:  make(chan FileEvent, 100),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		fw.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	defer close(fw.events)
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			if _, watched := fw.files[filepath.Clean(event.Name)]; !watched {
				continue
			}
			select {
			case fw.events <- FileEvent{
				Path:      event.Name,
				Operation: event.Op.String(),
			}:
			case <-fw.done:
				return
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// Log error but continue running
			util.LogError("File monitoring error: " + err.Error())
		}
	}
}

func (fw *FileWatcher) Events() <-chan FileEvent {
	return fw.events
}

// Close stops watching. Events is closed once pending sends are abandoned.
func (fw *FileWatcher) Close() error {
	fw.closeOnce.Do(func() { close(fw.done) })
	return fw.watcher.Close()
}

// Run calls onChange once per burst of events, after quiet has passed with no
// further event. It returns when ctx is done or the watcher is closed.
// onChange runs on the caller's goroutine, so calls never overlap.
func (fw *FileWatcher) Run(ctx context.Context, quiet time.Duration, onChange func([]FileEvent)) {
	var pending []FileEvent
	timer := time.NewTimer(quiet)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.events:
			if !ok {
				return
			}
			util.LogDebug(fmt.Sprintf("File change detected: %s (%s)", event.Path, event.Operation))
			pending = append(pending, event)
			timer.Reset(quiet)
		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			batch := pending
			pending = nil
			onChange(batch)
		}
	}
}
