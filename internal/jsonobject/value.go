// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jsonobject

import (
	"slices"
)

// Kind names the variant held by a [Value].
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBool
	KindNull
	KindObject
)

var kindNames = [...]string{
	KindString:  "string",
	KindInteger: "integer",
	KindFloat:   "float",
	KindBool:    "bool",
	KindNull:    "null",
	KindObject:  "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Value is a parsed JSON value. The set of implementations is closed:
// [String], [Integer], [Float], [Bool], [Null] and [Object].
type Value interface {
	Kind() Kind
	sealed()
}

type (
	// String is a decoded JSON string.
	String string
	// Integer is a JSON number without fraction or exponent that fits in int64.
	Integer int64
	// Float is a JSON number with a fraction or exponent, or an integer
	// literal too large for int64.
	Float float64
	// Bool is a JSON true or false.
	Bool bool
	// Null is the explicit JSON null. It is distinct from a missing key.
	Null struct{}
	// Object maps member names to values. Member order is not preserved.
	Object map[string]Value
)

func (String) Kind() Kind  { return KindString }
func (Integer) Kind() Kind { return KindInteger }
func (Float) Kind() Kind   { return KindFloat }
func (Bool) Kind() Kind    { return KindBool }
func (Null) Kind() Kind    { return KindNull }
func (Object) Kind() Kind  { return KindObject }

func (String) sealed()  {}
func (Integer) sealed() {}
func (Float) sealed()   {}
func (Bool) sealed()    {}
func (Null) sealed()    {}
func (Object) sealed()  {}

// Keys returns the member names of o in lexical order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
