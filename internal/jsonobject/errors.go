// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jsonobject

import (
	"errors"
	"fmt"
)

// ErrSyntax is the sentinel every parse failure unwraps to.
var ErrSyntax = errors.New("invalid json object")

// SyntaxError describes where and why parsing stopped.
type SyntaxError struct {
	// Offset is the byte offset into the input at which the failure was detected.
	Offset int
	// Msg is a short human-readable description of the failure.
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Msg, e.Offset)
}

// Unwrap allows errors.Is(err, ErrSyntax).
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
