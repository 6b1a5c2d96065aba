// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package debuglog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/MKhiriev/midscene-shared/internal/rundir"
)

// TopicPrefix is prepended to every topic to form the memoization key.
const TopicPrefix = "midscene"

// timeLayout renders local time with milliseconds and a numeric zone offset.
const timeLayout = "2006-01-02T15:04:05.000-0700"

// Func logs one line. Calling it with no arguments does nothing.
type Func func(args ...any)

// LogDirResolver locates (and creates) a run sub directory.
// *rundir.Resolver satisfies it.
type LogDirResolver interface {
	SubDir(d rundir.SubDir) (string, error)
}

// handle is the open log file of one topic.
type handle struct {
	file   afero.File
	logger zerolog.Logger
	closed atomic.Bool
}

// Registry memoizes one [Func] and one file handle per topic. It is safe for
// concurrent use.
type Registry struct {
	dirs LogDirResolver
	fs   afero.Fs
	now  func() time.Time

	mu      sync.Mutex
	funcs   map[string]Func
	handles map[string]*handle
}

// NewRegistry returns a Registry writing under the log directory resolved by
// dirs. A nil fs means the OS filesystem.
func NewRegistry(dirs LogDirResolver, fs afero.Fs) *Registry {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &Registry{
		dirs:    dirs,
		fs:      fs,
		now:     time.Now,
		funcs:   make(map[string]Func),
		handles: make(map[string]*handle),
	}
}

// Get returns the logging function for topic, opening its file on first use.
// Repeated calls with the same topic return functions sharing one handle.
// Failure to prepare the file is returned wrapped in [ErrOpenLog].
func (r *Registry) Get(topic string) (Func, error) {
	fullTopic := TopicPrefix + ":" + topic

	r.mu.Lock()
	defer r.mu.Unlock()

	if fn, ok := r.funcs[fullTopic]; ok {
		return fn, nil
	}

	h, err := r.open(topic)
	if err != nil {
		return nil, err
	}

	fn := r.newFunc(h)
	r.handles[fullTopic] = h
	r.funcs[fullTopic] = fn

	return fn, nil
}

// LogPath returns the file a topic logs to, creating the log directory.
func (r *Registry) LogPath(topic string) (string, error) {
	dir, err := r.dirs.SubDir(rundir.Log)
	if err != nil {
		return "", fmt.Errorf("%w for topic %s: %w", ErrOpenLog, topic, err)
	}

	return filepath.Join(dir, rundir.SanitizeTopic(topic)+".log"), nil
}

// Cleanup syncs and closes every open handle and forgets all memoized
// functions. Functions obtained earlier become no-ops.
func (r *Registry) Cleanup() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for topic, h := range r.handles {
		h.closed.Store(true)
		if err := h.file.Sync(); err != nil {
			errs = append(errs, fmt.Errorf("error syncing log for %s: %w", topic, err))
		}
		if err := h.file.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing log for %s: %w", topic, err))
		}
	}

	clear(r.handles)
	clear(r.funcs)

	return errors.Join(errs...)
}

func (r *Registry) open(topic string) (*handle, error) {
	path, err := r.LogPath(topic)
	if err != nil {
		return nil, err
	}

	file, err := r.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w for topic %s: %w", ErrOpenLog, topic, err)
	}

	// The bracketed timestamp is part of the message, so a line is written
	// as "[ts] " even when the message itself is empty.
	writer := zerolog.ConsoleWriter{
		Out:        zerolog.SyncWriter(file),
		NoColor:    true,
		PartsOrder: []string{zerolog.MessageFieldName},
		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			return fmt.Sprint(i)
		},
	}

	return &handle{
		file:   file,
		logger: zerolog.New(writer),
	}, nil
}

func (r *Registry) newFunc(h *handle) Func {
	return func(args ...any) {
		if len(args) == 0 || h.closed.Load() {
			return
		}

		h.logger.Log().Msg("[" + r.now().Format(timeLayout) + "] " + formatArgs(args))
	}
}
