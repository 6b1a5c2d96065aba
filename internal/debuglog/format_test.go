// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package debuglog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []any
		expected string
	}{
		{"single string", []any{"hello"}, "hello"},
		{"single placeholder kept verbatim", []any{"value {0}"}, "value {0}"},
		{"single number", []any{42}, "42"},
		{"single nil", []any{nil}, "<nil>"},
		{"single error", []any{errors.New("boom")}, "boom"},
		{"joined", []any{"hello", "world"}, "hello world"},
		{"joined mixed", []any{"count", 3, true}, "count 3 true"},
		{"non-string first", []any{1, "{0}"}, "1 {0}"},
		{"template", []any{"load {0} in {1}ms", "config.json", 12}, "load config.json in 12ms"},
		{"template reordered", []any{"{1}-{0}", "a", "b"}, "b-a"},
		{"template repeated", []any{"{0}{0}", "x"}, "xx"},
		{"template missing arg", []any{"{0} {2}", "a", "b"}, "a {2}"},
		{"braces without digits", []any{"{x}", "a"}, "{x} a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatArgs(tt.args))
		})
	}
}
