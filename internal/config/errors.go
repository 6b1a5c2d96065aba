// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"

	"github.com/MKhiriev/midscene-shared/internal/env"
)

var (
	// ErrInvalidArgument indicates a caller error such as a missing config
	// file. It is the same sentinel as [env.ErrInvalidArgument].
	ErrInvalidArgument = env.ErrInvalidArgument
	// ErrConfigLoad indicates that a config file could not be read or parsed.
	// The underlying cause is wrapped alongside it.
	ErrConfigLoad = errors.New("failed to load configuration")
	// ErrInvalidSettings indicates that the resolved values do not form a
	// valid [Settings] view.
	ErrInvalidSettings = errors.New("invalid settings")
)
