// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

import (
	"strconv"
	"strings"
)

// ToBoolean interprets an environment value as a flag. After trimming and
// lower-casing, "", "false", "0" and "no" are false; anything else is true.
func ToBoolean(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "false", "0", "no":
		return false
	default:
		return true
	}
}

// ToInteger parses a trimmed base-10 integer. ok is false for blank or
// malformed input.
func ToInteger(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}

	return n, true
}
