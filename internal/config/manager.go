// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"dario.cat/mergo"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"

	"github.com/MKhiriev/midscene-shared/internal/env"
	"github.com/MKhiriev/midscene-shared/internal/jsonobject"
	"github.com/MKhiriev/midscene-shared/internal/logger"
)

// Manager is the configuration store. Values set on it, directly or through a
// JSON load, shadow the environment until they are unset. It is safe for
// concurrent use.
type Manager struct {
	accessor *env.Accessor
	fs       afero.Fs
	log      *logger.Logger

	mu    sync.RWMutex
	store map[string]string
	// files are the loaded config files in load order; explicit holds the
	// last Set or Unset of each key not overwritten by a later load.
	files    []fileLayer
	explicit map[string]explicitValue
}

// fileLayer is the flattened content of one loaded config file.
type fileLayer struct {
	path   string
	values map[string]string
}

// explicitValue records a Set (present) or an Unset (!present).
type explicitValue struct {
	value   string
	present bool
}

// NewManager returns a Manager whose store is seeded with every basic key
// present in the environment.
//
// A nil accessor reads the process environment, a nil fs means the OS
// filesystem and a nil log discards diagnostics.
func NewManager(accessor *env.Accessor, fs afero.Fs, log *logger.Logger) *Manager {
	if accessor == nil {
		accessor = env.NewAccessor(nil)
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if log == nil {
		log = logger.Nop()
	}

	m := &Manager{
		accessor: accessor,
		fs:       fs,
		log:      log.Component("config"),
		store:    make(map[string]string),
		explicit: make(map[string]explicitValue),
	}
	m.ReloadFromEnvironment()

	return m
}

// ReloadFromEnvironment copies the basic keys currently present in the
// environment into the store, overwriting earlier values for those keys.
func (m *Manager) ReloadFromEnvironment() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range env.BasicKeys() {
		if v, ok := m.accessor.Get(key); ok {
			m.store[key] = v
		}
	}
}

// Accessor returns the environment accessor consulted on store misses.
func (m *Manager) Accessor() *env.Accessor {
	return m.accessor
}

// LoadFromJSON reads a JSON object from path, flattens it and merges it into
// the store. Files with a .jsonc extension may contain comments and trailing
// commas. The file is remembered as a layer for [Manager.Reload]; loading the
// same path again replaces that layer.
//
// A missing file yields [ErrInvalidArgument]; read and parse failures yield
// [ErrConfigLoad]. On error the store is left unchanged.
func (m *Manager) LoadFromJSON(path string) error {
	values, err := m.readFile(path)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err = mergo.Merge(&m.store, values, mergo.WithOverride); err != nil {
		return fmt.Errorf("error merging config values: %w", err)
	}
	m.setFileLayer(path, values)
	for key := range values {
		delete(m.explicit, key)
	}

	m.log.Debug().Str("path", path).Int("keys", len(values)).Msg("config file loaded")
	return nil
}

// Reload rebuilds the store from scratch: basic environment keys, then every
// loaded file re-read in load order, then explicit Set and Unset calls. Keys
// removed from a file disappear. If any file fails to load the store is left
// unchanged and the errors are joined.
func (m *Manager) Reload() error {
	m.mu.RLock()
	paths := make([]string, len(m.files))
	for i, f := range m.files {
		paths[i] = f.path
	}
	m.mu.RUnlock()

	layers := make([]fileLayer, 0, len(paths))
	var errs []error
	for _, path := range paths {
		values, err := m.readFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		layers = append(layers, fileLayer{path: path, values: values})
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Keep files loaded while the others were being read.
	for _, f := range m.files {
		if !slices.Contains(paths, f.path) {
			layers = append(layers, f)
		}
	}

	fresh := make(map[string]string)
	for _, key := range env.BasicKeys() {
		if v, ok := m.accessor.Get(key); ok {
			fresh[key] = v
		}
	}
	for _, layer := range layers {
		if err := mergo.Merge(&fresh, layer.values, mergo.WithOverride); err != nil {
			return fmt.Errorf("error merging config values: %w", err)
		}
	}
	for key, e := range m.explicit {
		if e.present {
			fresh[key] = e.value
		} else {
			delete(fresh, key)
		}
	}

	m.store = fresh
	m.files = layers

	m.log.Debug().Int("files", len(layers)).Int("keys", len(fresh)).Msg("config rebuilt")
	return nil
}

// tracks reports whether path was loaded with [Manager.LoadFromJSON].
func (m *Manager) tracks(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.ContainsFunc(m.files, func(f fileLayer) bool { return f.path == path })
}

func (m *Manager) readFile(path string) (map[string]string, error) {
	exists, err := afero.Exists(m.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: error checking %s: %w", ErrConfigLoad, path, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: config file %s does not exist", ErrInvalidArgument, path)
	}

	data, err := afero.ReadFile(m.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading %s: %w", ErrConfigLoad, path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".jsonc") {
		data = jsonc.ToJSON(data)
	}

	obj, err := jsonobject.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: error parsing %s: %w", ErrConfigLoad, path, err)
	}

	return Flatten(obj), nil
}

// setFileLayer must be called with mu held.
func (m *Manager) setFileLayer(path string, values map[string]string) {
	for i := range m.files {
		if m.files[i].path == path {
			m.files[i].values = values
			return
		}
	}
	m.files = append(m.files, fileLayer{path: path, values: values})
}

// Set stores value under key, shadowing the environment and every loaded
// file.
func (m *Manager) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[key] = value
	m.explicit[key] = explicitValue{value: value, present: true}
}

// Unset removes key from the store so the environment is visible again.
func (m *Manager) Unset(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, key)
	m.explicit[key] = explicitValue{}
}

// Get returns the stored value of key, falling back to the live environment.
func (m *Manager) Get(key string) (string, bool) {
	m.mu.RLock()
	v, ok := m.store[key]
	m.mu.RUnlock()

	if ok {
		return v, true
	}

	return m.accessor.Get(key)
}

// GetBoolean resolves key as a flag (see [env.ToBoolean]), returning def when
// the key is absent.
func (m *Manager) GetBoolean(key string, def bool) bool {
	v, ok := m.Get(key)
	if !ok {
		return def
	}
	return env.ToBoolean(v)
}

// GetInt resolves key as a base-10 integer, returning def when the key is
// absent or not a number.
func (m *Manager) GetInt(key string, def int) int {
	v, ok := m.Get(key)
	if !ok {
		return def
	}

	n, ok := env.ToInteger(v)
	if !ok {
		return def
	}
	return n
}

// Snapshot returns a copy of the store. Environment-only values are not
// included.
func (m *Manager) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.store)
}
