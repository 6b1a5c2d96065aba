// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves configuration values from three layers, in
// increasing precedence:
//  1. Environment variables (through an [env.Accessor])
//  2. JSON or JSONC config files loaded with [Manager.LoadFromJSON]
//  3. Explicit [Manager.Set] calls
//
// Nested JSON objects are flattened into dot-delimited keys, so
// {"a":{"b":1}} is read back as Get("a.b") == "1".
//
// The main entry points are [NewManager] and the fluent [Builder]. [Watcher]
// reloads a config file whenever it changes on disk.
package config
