// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// OSProvider reads the real process environment.
type OSProvider struct{}

// Lookup implements [Provider] with [os.LookupEnv].
func (OSProvider) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapProvider serves variables from a fixed map. It is mostly useful in tests.
type MapProvider map[string]string

// Lookup implements [Provider].
func (m MapProvider) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// ProviderFunc adapts a plain function to [Provider].
type ProviderFunc func(key string) (string, bool)

// Lookup implements [Provider].
func (f ProviderFunc) Lookup(key string) (string, bool) {
	return f(key)
}

// dotenvProvider serves values read from .env files and defers every other
// key to fallback.
type dotenvProvider struct {
	values   map[string]string
	fallback Provider
}

// NewDotenvProvider reads the given .env files (godotenv syntax) once and
// returns a [Provider] in which their values take precedence over fallback.
// When several files define the same key, the first file wins. A nil
// fallback means [OSProvider].
func NewDotenvProvider(fallback Provider, files ...string) (Provider, error) {
	if fallback == nil {
		fallback = OSProvider{}
	}

	values := make(map[string]string)
	for _, file := range files {
		fileValues, err := godotenv.Read(file)
		if err != nil {
			return nil, fmt.Errorf("error reading env file %s: %w", file, err)
		}
		for k, v := range fileValues {
			if _, seen := values[k]; !seen {
				values[k] = v
			}
		}
	}

	return &dotenvProvider{values: values, fallback: fallback}, nil
}

func (p *dotenvProvider) Lookup(key string) (string, bool) {
	if v, ok := p.values[key]; ok {
		return v, true
	}
	return p.fallback.Lookup(key)
}
