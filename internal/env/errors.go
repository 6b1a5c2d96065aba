// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

import "errors"

// ErrInvalidArgument is returned when a caller passes a key, name or path
// the operation does not accept. Other packages of the module wrap the same
// sentinel so callers can match it with a single [errors.Is] check.
var ErrInvalidArgument = errors.New("invalid argument")
