// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package debuglog

import "errors"

// ErrOpenLog is returned when the log directory or a topic's log file cannot
// be prepared.
var ErrOpenLog = errors.New("failed to configure logger")
