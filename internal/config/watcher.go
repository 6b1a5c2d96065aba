// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/midscene-shared/internal/logger"
)

// ReloadFunc is called after every reload attempt with the store snapshot and
// the load error, if any. On error the snapshot reflects the unchanged store.
type ReloadFunc func(snapshot map[string]string, err error)

// Watcher rebuilds a [Manager] whenever one config file is written or
// recreated. Every layer is re-applied (see [Manager.Reload]), so the watched
// file keeps its place between the environment, the other files and explicit
// values.
type Watcher struct {
	manager  *Manager
	source   string
	path     string
	onReload ReloadFunc
	log      *logger.Logger

	watcher *fsnotify.Watcher
	stopCh   chan struct{}
	stopOnce sync.Once
	doneCh   chan struct{}
	started  bool
	mu       sync.Mutex
}

// NewWatcher starts watching the directory holding path. onReload may be nil.
func NewWatcher(m *Manager, path string, onReload ReloadFunc) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: error resolving %s: %w", ErrInvalidArgument, path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating file watcher: %w", err)
	}

	// Editors often replace the file instead of writing it in place, which
	// drops a watch on the file itself.
	if err = w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("error watching %s: %w", abs, err)
	}

	return &Watcher{
		manager:  m,
		source:   path,
		path:     abs,
		onReload: onReload,
		log:      m.log.Component("watcher"),
		watcher:  w,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins delivering reloads until ctx is done or Stop is called.
// Calling it more than once has no effect.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()

	w.log.Info().Str("path", w.path).Msg("config watcher started")
	go w.run(ctx)
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error().Err(err).Msg("config watcher error")
		}
	}
}

func (w *Watcher) reload() {
	// A save usually truncates first, which fires an event on an empty file.
	if info, err := w.manager.fs.Stat(w.source); err == nil && info.Size() == 0 {
		w.log.Debug().Str("path", w.path).Msg("config file empty, reload skipped")
		return
	}

	var err error
	if w.manager.tracks(w.source) {
		err = w.manager.Reload()
	} else {
		err = w.manager.LoadFromJSON(w.source)
	}

	if err != nil {
		w.log.Error().Err(err).Str("path", w.path).Msg("config reload failed")
	} else {
		w.log.Debug().Str("path", w.path).Msg("config reloaded")
	}

	if w.onReload != nil {
		w.onReload(w.manager.Snapshot(), err)
	}
}

// Stop ends watching and waits for the delivery goroutine to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	started := w.started
	w.mu.Unlock()

	w.stopOnce.Do(func() { close(w.stopCh) })

	if started {
		<-w.doneCh
	}

	return w.watcher.Close()
}
