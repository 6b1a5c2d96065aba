// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package debuglog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// placeholder matches positional template markers such as {0} or {12}.
var placeholder = regexp.MustCompile(`\{(\d+)\}`)

// formatArgs renders the arguments of one log call.
//
// A single argument is printed as is. With more arguments, a first argument
// that is a string containing a positional placeholder is used as a template
// for the rest; otherwise every argument is printed and joined with a space.
// Placeholders without a matching argument are left untouched.
func formatArgs(args []any) string {
	if len(args) == 1 {
		return fmt.Sprint(args[0])
	}

	if tmpl, ok := args[0].(string); ok && placeholder.MatchString(tmpl) {
		rest := args[1:]
		return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
			idx, err := strconv.Atoi(m[1 : len(m)-1])
			if err != nil || idx >= len(rest) {
				return m
			}
			return fmt.Sprint(rest[idx])
		})
	}

	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprint(arg)
	}

	return strings.Join(parts, " ")
}
