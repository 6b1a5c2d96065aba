// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBoolean(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"   ", false},
		{"false", false},
		{"FALSE", false},
		{" False ", false},
		{"0", false},
		{"no", false},
		{"No", false},
		{"NO", false},
		{"true", true},
		{"1", true},
		{"yes", true},
		{"anything", true},
		{"off", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToBoolean(tt.input))
		})
	}
}

func TestToInteger(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		ok       bool
	}{
		{"plain", "42", 42, true},
		{"trimmed", "  7 ", 7, true},
		{"negative", "-3", -3, true},
		{"explicit plus", "+5", 5, true},
		{"empty", "", 0, false},
		{"blank", "   ", 0, false},
		{"malformed", "invalid", 0, false},
		{"fraction", "1.5", 0, false},
		{"hex", "0x10", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := ToInteger(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, n)
		})
	}
}
