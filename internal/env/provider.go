// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

//go:generate mockgen -source=provider.go -destination=../mock/env_provider_mock.go -package=mock

// Provider is the narrow capability an [Accessor] reads variables through.
// Lookup reports whether key is set; an empty value that is set is present.
type Provider interface {
	Lookup(key string) (string, bool)
}
