// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package env reads process environment variables through an [Accessor]
// that layers a per-instance override map over a pluggable [Provider].
//
// The package also declares the catalog of recognized keys (see [BasicKeys],
// [GlobalKeys], [AllKeys]) and the lenient conversions ([ToBoolean],
// [ToInteger]) shared by the configuration layer.
package env
