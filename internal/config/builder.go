// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/MKhiriev/midscene-shared/internal/env"
	"github.com/MKhiriev/midscene-shared/internal/logger"
)

// Builder assembles a [Manager] from layered sources. Later layers override
// earlier ones:
//  1. Environment, optionally extended with .env files
//  2. JSON files, in the order given
//  3. Explicit overrides
type Builder struct {
	accessor *env.Accessor
	fs       afero.Fs
	log      *logger.Logger

	envFiles  []string
	jsonPaths []string
	overrides []map[string]string
}

// NewBuilder returns an empty Builder. Nil arguments get the same defaults as
// in [NewManager]. The accessor is never modified: .env files are layered on
// a private accessor that reads through it.
func NewBuilder(accessor *env.Accessor, fs afero.Fs, log *logger.Logger) *Builder {
	if accessor == nil {
		accessor = env.NewAccessor(nil)
	}

	return &Builder{
		accessor: accessor,
		fs:       fs,
		log:      log,
	}
}

// WithEnvFiles layers .env files over the accessor, overrides included. The
// first file defining a key wins.
func (b *Builder) WithEnvFiles(files ...string) *Builder {
	b.envFiles = append(b.envFiles, files...)
	return b
}

// WithJSON queues config files for loading.
func (b *Builder) WithJSON(paths ...string) *Builder {
	b.jsonPaths = append(b.jsonPaths, paths...)
	return b
}

// WithOverrides queues explicit values applied after every file. They are
// recorded as [Manager.Set] calls, so they also win after [Manager.Reload].
func (b *Builder) WithOverrides(values map[string]string) *Builder {
	if len(values) > 0 {
		b.overrides = append(b.overrides, values)
	}
	return b
}

// Build applies every layer and returns the resulting Manager. Errors from
// all layers are joined; on any error the Manager is not returned.
func (b *Builder) Build() (*Manager, error) {
	var err error

	accessor := b.accessor
	if len(b.envFiles) > 0 {
		p, envErr := env.NewDotenvProvider(env.ProviderFunc(b.accessor.Get), b.envFiles...)
		if envErr != nil {
			err = errors.Join(err, envErr)
		} else {
			accessor = env.NewAccessor(p)
		}
	}

	m := NewManager(accessor, b.fs, b.log)

	for _, path := range b.jsonPaths {
		if loadErr := m.LoadFromJSON(path); loadErr != nil {
			err = errors.Join(err, loadErr)
		}
	}

	for _, values := range b.overrides {
		for key, value := range values {
			m.Set(key, value)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", err)
	}

	return m, nil
}
