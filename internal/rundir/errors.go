// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rundir

import (
	"errors"

	"github.com/MKhiriev/midscene-shared/internal/env"
)

var (
	// ErrInvalidArgument is returned for unknown sub directory names.
	ErrInvalidArgument = env.ErrInvalidArgument

	// ErrCreateDir is returned when neither the run directory nor its
	// fallback (or a sub directory) could be created.
	ErrCreateDir = errors.New("failed to create run directory")

	// ErrNotDirectory is returned when a path that must be a directory is
	// occupied by something else.
	ErrNotDirectory = errors.New("path exists and is not a directory")
)
