// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/midscene-shared/internal/jsonobject"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:     "empty object",
			input:    `{}`,
			expected: map[string]string{},
		},
		{
			name:  "scalars",
			input: `{"s": "text", "i": 42, "neg": -7, "f": 1.5, "t": true, "b": false}`,
			expected: map[string]string{
				"s": "text", "i": "42", "neg": "-7", "f": "1.5", "t": "true", "b": "false",
			},
		},
		{
			name:     "nested",
			input:    `{"a": {"b": 1, "c": {"d": "deep"}}}`,
			expected: map[string]string{"a.b": "1", "a.c.d": "deep"},
		},
		{
			name:     "null dropped",
			input:    `{"a": null, "b": {"c": null}, "d": 1}`,
			expected: map[string]string{"d": "1"},
		},
		{
			name:     "integral float keeps no fraction",
			input:    `{"a": 2.0, "b": 1e3}`,
			expected: map[string]string{"a": "2", "b": "1000"},
		},
		{
			name:     "negative zero",
			input:    `{"a": -0.0, "b": -0, "c": -0e5}`,
			expected: map[string]string{"a": "0", "b": "0", "c": "0"},
		},
		{
			name:     "negative integral float",
			input:    `{"a": -12.0}`,
			expected: map[string]string{"a": "-12"},
		},
		{
			name:     "small float",
			input:    `{"a": 0.000125}`,
			expected: map[string]string{"a": "0.000125"},
		},
		{
			name:     "int64 overflow falls back to float",
			input:    `{"a": 9223372036854775808}`,
			expected: map[string]string{"a": "9223372036854776000"},
		},
		{
			name:     "literal dotted key wins over nested path",
			input:    `{"a.b": "literal", "a": {"b": "nested"}}`,
			expected: map[string]string{"a.b": "literal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := jsonobject.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, Flatten(obj))
		})
	}
}

// TestFlatten_Deterministic verifies that repeated flattening of the same
// document yields the same map.
func TestFlatten_Deterministic(t *testing.T) {
	obj, err := jsonobject.Parse(`{"z": 1, "a": {"y": 2, "b": {"x": 3}}, "m": "v"}`)
	require.NoError(t, err)

	first := Flatten(obj)
	for range 20 {
		assert.Equal(t, first, Flatten(obj))
	}
}
