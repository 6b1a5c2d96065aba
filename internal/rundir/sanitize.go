// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rundir

import "strings"

// SanitizeTopic derives a file-name-safe form of a logger topic by replacing
// ':' with '-' and lower-casing.
func SanitizeTopic(topic string) string {
	return strings.ToLower(strings.ReplaceAll(topic, ":", "-"))
}
