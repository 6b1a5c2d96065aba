// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package debuglog provides per-topic debug logging functions backed by one
// append-only file per topic:
//
//	<run dir>/log/<sanitized topic>.log
//
// Each call appends a single line of the form
//
//	[2006-01-02T15:04:05.000-0700] message
//
// Functions are memoized per topic by a [Registry], so every caller asking
// for the same topic shares one file handle. [Registry.Cleanup] closes the
// handles and forgets the functions.
package debuglog
