// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

import (
	"fmt"
	"sync"
)

// override is one entry of the override map. present == false is the
// absence marker: the key reads as unset whatever the provider says.
type override struct {
	value   string
	present bool
}

// Accessor resolves environment variables, consulting its override map
// before the underlying [Provider]. It is safe for concurrent use.
//
// Each Accessor owns its overrides, so tests can build isolated instances
// instead of resetting process-wide state.
type Accessor struct {
	mu        sync.RWMutex
	provider  Provider
	overrides map[string]override
}

// NewAccessor returns an Accessor reading through p. A nil p means the real
// process environment.
func NewAccessor(p Provider) *Accessor {
	if p == nil {
		p = OSProvider{}
	}

	return &Accessor{
		provider:  p,
		overrides: make(map[string]override),
	}
}

// Get returns the value of key and whether it is set.
func (a *Accessor) Get(key string) (string, bool) {
	a.mu.RLock()
	o, overridden := a.overrides[key]
	provider := a.provider
	a.mu.RUnlock()

	if overridden {
		return o.value, o.present
	}

	return provider.Lookup(key)
}

// BasicValue is [Accessor.Get] restricted to [BasicKeys]. Any other key is
// rejected with an error wrapping [ErrInvalidArgument].
func (a *Accessor) BasicValue(key string) (string, bool, error) {
	if !IsBasicKey(key) {
		return "", false, fmt.Errorf("%w: getBasicEnvValue with key %s is not supported", ErrInvalidArgument, key)
	}

	v, ok := a.Get(key)
	return v, ok, nil
}

// Override makes key resolve to value regardless of the provider.
func (a *Accessor) Override(key, value string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.overrides[key] = override{value: value, present: true}
}

// Hide makes key resolve as unset regardless of the provider.
func (a *Accessor) Hide(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.overrides[key] = override{}
}

// ClearOverride drops any override for key so the provider is consulted again.
func (a *Accessor) ClearOverride(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.overrides, key)
}

// ClearOverrides drops every override.
func (a *Accessor) ClearOverrides() {
	a.mu.Lock()
	defer a.mu.Unlock()
	clear(a.overrides)
}

// SetProvider swaps the underlying provider. A nil p restores [OSProvider].
func (a *Accessor) SetProvider(p Provider) {
	if p == nil {
		p = OSProvider{}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.provider = p
}

// Provider returns the current underlying provider.
func (a *Accessor) Provider() Provider {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.provider
}

// Reset restores the OS provider and clears every override.
func (a *Accessor) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.provider = OSProvider{}
	clear(a.overrides)
}

// DebugModeEnabled reports whether MIDSCENE_DEBUG_MODE is truthy.
func (a *Accessor) DebugModeEnabled() bool {
	return a.flag(MidsceneDebugMode)
}

// InDocker reports whether DOCKER_CONTAINER is truthy.
func (a *Accessor) InDocker() bool {
	return a.flag(DockerContainer)
}

// InCI reports whether CI is truthy.
func (a *Accessor) InCI() bool {
	return a.flag(CI)
}

func (a *Accessor) flag(key string) bool {
	v, ok := a.Get(key)
	return ok && ToBoolean(v)
}
